package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/specialistvlad/littlekai/internal/menu"
	"github.com/specialistvlad/littlekai/internal/order"
	"github.com/stretchr/testify/require"
)

func newPrompter(t *testing.T, input string, opts ...Option) (*Prompter, *bytes.Buffer) {
	t.Helper()
	m, err := menu.Default(context.Background())
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, m, opts...), out
}

func TestChooseNoodles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Out-of-range answers repeat the question, blank lines are skipped.
	p, out := newPrompter(t, "0\n\n4\n2\n")

	// --- Act ---
	choice, err := p.ChooseNoodles()

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 2, choice)
	require.Equal(t, 3, strings.Count(out.String(), "> Choose your noodles!"))
	require.Contains(t, out.String(), "1> EggNoodles:     3.75 $")
	require.Contains(t, out.String(), "2> UdonNoodles:    4.00 $")
	require.Contains(t, out.String(), "3> WheatNoodles:   3.50 $")
}

func TestChooseIngredient(t *testing.T) {
	t.Parallel()

	p, out := newPrompter(t, "7\n0\n")
	cart := order.NewNoodles("EggNoodles", p.menu.Noodles[0].Price)

	choice, err := p.ChooseIngredient(cart)

	require.NoError(t, err)
	require.Equal(t, 0, choice)
	require.Equal(t, 1, strings.Count(out.String(), "> Your cart is: 3.75 $"))
	require.Equal(t, 2, strings.Count(out.String(), "> Choose your ingredient!"))
	require.Contains(t, out.String(), "4> Tuna:      2.75 $")
	require.Contains(t, out.String(), "0> No more ingredients")
}

func TestChooseSauce(t *testing.T) {
	t.Parallel()

	p, out := newPrompter(t, "2\n")

	choice, err := p.ChooseSauce()

	require.NoError(t, err)
	require.Equal(t, 2, choice)
	require.Contains(t, out.String(), "2> Red Pepper Sauce:  4 out of 4 spiciness, 1.00 $")
	require.Contains(t, out.String(), "0> No sauce")
}

func TestReadInt_Errors(t *testing.T) {
	t.Parallel()

	t.Run("not a number", func(t *testing.T) {
		t.Parallel()
		p, _ := newPrompter(t, "chicken\n")
		_, err := p.ChooseNoodles()
		require.ErrorIs(t, err, ErrInvalidInput)
		require.ErrorContains(t, err, `"chicken"`)
	})

	t.Run("input ends", func(t *testing.T) {
		t.Parallel()
		p, _ := newPrompter(t, "1\n")
		_, err := p.ChooseNoodles()
		require.NoError(t, err)
		_, err = p.ChooseSauce()
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestWithEcho(t *testing.T) {
	t.Parallel()

	p, out := newPrompter(t, "  3  \n", WithEcho(true))

	choice, err := p.ChooseNoodles()

	require.NoError(t, err)
	require.Equal(t, 3, choice)
	require.Contains(t, out.String(), "> 3\n")
}

func TestIsInteractive(t *testing.T) {
	t.Parallel()

	require.False(t, IsInteractive(strings.NewReader("1\n")))
}
