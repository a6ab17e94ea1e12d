package receipt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/specialistvlad/littlekai/internal/order"
	"github.com/stretchr/testify/require"
)

func mustOrder(t *testing.T, sauceSpiciness int, withSauce bool) order.Item {
	t.Helper()
	var item order.Item = order.NewNoodles("EggNoodles", decimal.RequireFromString("3.75"))
	item, err := order.AddIngredient(item, "Chicken", decimal.RequireFromString("3.50"))
	require.NoError(t, err)
	item, err = order.AddIngredient(item, "Peanuts", decimal.RequireFromString("2.50"))
	require.NoError(t, err)
	if withSauce {
		item, err = order.AddSauce(item, "Red Pepper Sauce", decimal.RequireFromString("1.00"), sauceSpiciness)
		require.NoError(t, err)
	}
	return item
}

func TestBanner(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	New(out, "$").Banner("Little Kai")

	require.Equal(t, "##############\n  Little Kai  \n##############\n\n", out.String())
}

func TestReport(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		item      func(t *testing.T) order.Item
		expect    []string
		notExpect []string
	}{
		{
			name: "hottest sauce is out of control",
			item: func(t *testing.T) order.Item { return mustOrder(t, 4, true) },
			expect: []string{
				"> Your order is: 10.75 $",
				"> Spiciness is: 4 out of 4 " + OutOfControl,
				"> Enjoy your noodles! :D",
			},
			notExpect: []string{"Without sauce"},
		},
		{
			name: "mild sauce",
			item: func(t *testing.T) order.Item { return mustOrder(t, 1, true) },
			expect: []string{
				"> Spiciness is: 1 out of 4\n",
			},
			notExpect: []string{OutOfControl},
		},
		{
			name: "no sauce prints no spiciness",
			item: func(t *testing.T) order.Item {
				return order.NewNoodles("WheatNoodles", decimal.RequireFromString("3.5"))
			},
			expect: []string{
				"> Your order is: 3.50 $",
				"> Without sauce",
			},
			notExpect: []string{"Spiciness", OutOfControl},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			New(out, "$").Report(tc.item(t))

			// --- Assert ---
			for _, s := range tc.expect {
				require.Contains(t, out.String(), s)
			}
			for _, s := range tc.notExpect {
				require.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestReport_Itemized(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	New(out, "EUR", WithItemize(true)).Report(mustOrder(t, 2, true))

	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "    EggNoodles       3.75 EUR", lines[0])
	require.Equal(t, "  + Chicken          3.50 EUR", lines[1])
	require.Equal(t, "  + Peanuts          2.50 EUR", lines[2])
	require.Equal(t, "  + Red Pepper Sauce 1.00 EUR", lines[3])
	require.Equal(t, "> Your order is: 10.75 EUR", lines[4])
}
