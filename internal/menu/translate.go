package menu

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateEntry converts a `noodles` or `ingredient` block into an Entry.
func translateEntry(kind Kind, blk *entryBlock) (Entry, error) {
	price, err := decodePrice(blk.Price)
	if err != nil {
		return Entry{}, fmt.Errorf("%s %q: %w", kind, blk.Key, err)
	}
	return Entry{
		Kind:     kind,
		Key:      blk.Key,
		Label:    labelOrKey(blk.Label, blk.Key),
		Price:    price,
		Fallback: blk.Fallback,
	}, nil
}

// translateSauce converts a `sauce` block into an Entry.
func translateSauce(blk *sauceBlock) (Entry, error) {
	price, err := decodePrice(blk.Price)
	if err != nil {
		return Entry{}, fmt.Errorf("%s %q: %w", KindSauce, blk.Key, err)
	}
	spiciness, err := decodeSpiciness(blk.Spiciness)
	if err != nil {
		return Entry{}, fmt.Errorf("%s %q: %w", KindSauce, blk.Key, err)
	}
	return Entry{
		Kind:      KindSauce,
		Key:       blk.Key,
		Label:     labelOrKey(blk.Label, blk.Key),
		Price:     price,
		Spiciness: spiciness,
	}, nil
}

// decodePrice evaluates a price expression into an exact decimal. Numbers
// and numeric strings ("3.75") are both accepted.
func decodePrice(expr hcl.Expression) (decimal.Decimal, error) {
	val, err := evaluate(expr)
	if err != nil {
		return decimal.Zero, err
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: price must be a number: %w", expr.Range(), err)
	}

	d, err := decimal.NewFromString(num.AsBigFloat().Text('f', -1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: unreadable price: %w", expr.Range(), err)
	}
	return d, nil
}

// decodeSpiciness evaluates a spiciness expression into a whole number.
func decodeSpiciness(expr hcl.Expression) (int, error) {
	val, err := evaluate(expr)
	if err != nil {
		return 0, err
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("%s: spiciness must be a number: %w", expr.Range(), err)
	}

	var n int
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return 0, fmt.Errorf("%s: spiciness must be a whole number: %w", expr.Range(), err)
	}
	return n, nil
}

// evaluate resolves a literal expression. Menus have no variables or
// functions, so expressions are evaluated without an EvalContext.
func evaluate(expr hcl.Expression) (cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if val.IsNull() || !val.IsKnown() {
		return cty.NilVal, fmt.Errorf("%s: value must not be null", expr.Range())
	}
	return val, nil
}

func labelOrKey(label, key string) string {
	if label != "" {
		return label
	}
	return key
}
