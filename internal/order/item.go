package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/specialistvlad/littlekai/internal/menu"
)

var (
	// ErrSauceApplied is returned when a layer would be put on top of a sauce.
	ErrSauceApplied = errors.New("order already has a sauce")
	// ErrNoBase is returned when a wrapper is given nothing to wrap.
	ErrNoBase = errors.New("order has no noodles to wrap")
	// ErrSpiciness is returned for a sauce outside the spiciness scale.
	ErrSpiciness = fmt.Errorf("spiciness must be between 0 and %d", menu.MaxSpiciness)
)

// Item is an orderable composition. The only implementations are *Noodles,
// *Ingredient and *Sauce.
type Item interface {
	// Cost is the price of this layer plus everything it wraps.
	Cost() decimal.Decimal
	sealed()
}

// Noodles is the innermost layer of every order.
type Noodles struct {
	Name  string
	Price decimal.Decimal
}

// Ingredient adds its price to the item it wraps.
type Ingredient struct {
	Name  string
	Price decimal.Decimal
	Inner Item
}

// Sauce adds its price and a spiciness level. It is always the outermost
// layer.
type Sauce struct {
	Name      string
	Price     decimal.Decimal
	Spiciness int
	Inner     Item
}

func (*Noodles) sealed()    {}
func (*Ingredient) sealed() {}
func (*Sauce) sealed()      {}

func (n *Noodles) Cost() decimal.Decimal { return n.Price }

func (i *Ingredient) Cost() decimal.Decimal { return i.Price.Add(i.Inner.Cost()) }

func (s *Sauce) Cost() decimal.Decimal { return s.Price.Add(s.Inner.Cost()) }

// NewNoodles starts an order.
func NewNoodles(name string, price decimal.Decimal) *Noodles {
	return &Noodles{Name: name, Price: price}
}

// AddIngredient wraps inner with an ingredient layer.
func AddIngredient(inner Item, name string, price decimal.Decimal) (*Ingredient, error) {
	if err := checkWrappable(inner); err != nil {
		return nil, err
	}
	return &Ingredient{Name: name, Price: price, Inner: inner}, nil
}

// AddSauce wraps inner with the sauce layer.
func AddSauce(inner Item, name string, price decimal.Decimal, spiciness int) (*Sauce, error) {
	if err := checkWrappable(inner); err != nil {
		return nil, err
	}
	if spiciness < 0 || spiciness > menu.MaxSpiciness {
		return nil, fmt.Errorf("%w: %s has %d", ErrSpiciness, name, spiciness)
	}
	return &Sauce{Name: name, Price: price, Spiciness: spiciness, Inner: inner}, nil
}

// checkWrappable rejects a nil inner item and anything already sauced. The
// sauce is always outermost, so looking at the top layer is enough.
func checkWrappable(inner Item) error {
	switch it := inner.(type) {
	case nil:
		return ErrNoBase
	case *Noodles:
		if it == nil {
			return ErrNoBase
		}
	case *Ingredient:
		if it == nil {
			return ErrNoBase
		}
	case *Sauce:
		return ErrSauceApplied
	}
	return nil
}

// Spiciness reports the spiciness of the order. It is defined only when the
// outermost layer is a sauce.
func Spiciness(item Item) (int, bool) {
	if s, ok := item.(*Sauce); ok && s != nil {
		return s.Spiciness, true
	}
	return 0, false
}

// LayerKind tells what a Layer is.
type LayerKind string

const (
	LayerNoodles    LayerKind = "noodles"
	LayerIngredient LayerKind = "ingredient"
	LayerSauce      LayerKind = "sauce"
)

// Layer is one step of the chain, as listed on an itemised receipt.
type Layer struct {
	Kind      LayerKind
	Name      string
	Price     decimal.Decimal
	Spiciness int
}

// Layers flattens the chain, base first.
func Layers(item Item) []Layer {
	var layers []Layer
	for item != nil {
		switch it := item.(type) {
		case *Noodles:
			layers = append(layers, Layer{Kind: LayerNoodles, Name: it.Name, Price: it.Price})
			item = nil
		case *Ingredient:
			layers = append(layers, Layer{Kind: LayerIngredient, Name: it.Name, Price: it.Price})
			item = it.Inner
		case *Sauce:
			layers = append(layers, Layer{Kind: LayerSauce, Name: it.Name, Price: it.Price, Spiciness: it.Spiciness})
			item = it.Inner
		}
	}

	for i, j := 0, len(layers)-1; i < j; i, j = i+1, j-1 {
		layers[i], layers[j] = layers[j], layers[i]
	}
	return layers
}

// Describe names the layers in order, e.g. "EggNoodles + Chicken".
func Describe(item Item) string {
	layers := Layers(item)
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.Name
	}
	return strings.Join(names, " + ")
}
