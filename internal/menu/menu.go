package menu

import (
	_ "embed"

	"github.com/shopspring/decimal"
)

//go:embed default.hcl
var defaultMenu []byte

// MaxSpiciness is the top of the spiciness scale; sauces rate from 0 to it.
const MaxSpiciness = 4

const (
	defaultShopName = "Little Kai"
	defaultCurrency = "$"
)

// Kind names one of the three sections of the menu.
type Kind string

const (
	KindNoodles    Kind = "noodles"
	KindIngredient Kind = "ingredient"
	KindSauce      Kind = "sauce"
)

// Shop holds the presentation settings of the counter.
type Shop struct {
	Name     string
	Currency string
}

// Entry is a single orderable line of the menu.
type Entry struct {
	Kind  Kind
	Key   string
	Label string
	Price decimal.Decimal

	// Spiciness is only meaningful for sauces.
	Spiciness int
	// Fallback marks the noodles served when the customer's choice is not
	// on the menu. Only noodles may carry it.
	Fallback  bool
}

// Menu is the validated catalog.
type Menu struct {
	Shop        Shop
	Noodles     []Entry
	Ingredients []Entry
	Sauces      []Entry
}

// NoodlesAt returns the noodles for a 1-based menu choice.
func (m *Menu) NoodlesAt(choice int) (Entry, bool) {
	return at(m.Noodles, choice)
}

// IngredientAt returns the ingredient for a 1-based menu choice.
func (m *Menu) IngredientAt(choice int) (Entry, bool) {
	return at(m.Ingredients, choice)
}

// SauceAt returns the sauce for a 1-based menu choice.
func (m *Menu) SauceAt(choice int) (Entry, bool) {
	return at(m.Sauces, choice)
}

// FallbackNoodles returns the entry marked as fallback, or the last noodles
// on the menu when none is marked. A validated menu always has noodles.
func (m *Menu) FallbackNoodles() Entry {
	for _, e := range m.Noodles {
		if e.Fallback {
			return e
		}
	}
	return m.Noodles[len(m.Noodles)-1]
}

func at(entries []Entry, choice int) (Entry, bool) {
	if choice < 1 || choice > len(entries) {
		return Entry{}, false
	}
	return entries[choice-1], true
}
