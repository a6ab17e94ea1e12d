package menu

import (
	"errors"
	"fmt"
)

var (
	ErrNoNoodles         = errors.New("menu must offer at least one noodles entry")
	ErrDuplicateEntry    = errors.New("duplicate menu entry")
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrSpicinessRange    = fmt.Errorf("spiciness must be between 0 and %d", MaxSpiciness)
	ErrMultipleFallback  = errors.New("only one noodles entry may be the fallback")
	ErrMisplacedFallback = errors.New("only noodles may be marked as fallback")
)

// validate checks the invariants the order builder relies on. Every
// violation is reported, not only the first.
func validate(m *Menu) error {
	var errs []error

	if len(m.Noodles) == 0 {
		errs = append(errs, ErrNoNoodles)
	}

	fallbacks := 0
	for _, e := range m.Noodles {
		errs = append(errs, checkPrice(e)...)
		if e.Fallback {
			fallbacks++
		}
	}
	if fallbacks > 1 {
		errs = append(errs, ErrMultipleFallback)
	}

	for _, e := range m.Ingredients {
		errs = append(errs, checkPrice(e)...)
		if e.Fallback {
			errs = append(errs, fmt.Errorf("%w: %s %q", ErrMisplacedFallback, e.Kind, e.Key))
		}
	}

	for _, e := range m.Sauces {
		errs = append(errs, checkPrice(e)...)
		if e.Spiciness < 0 || e.Spiciness > MaxSpiciness {
			errs = append(errs, fmt.Errorf("%w: %s %q has %d", ErrSpicinessRange, e.Kind, e.Key, e.Spiciness))
		}
	}

	return errors.Join(errs...)
}

func checkPrice(e Entry) []error {
	if e.Price.IsNegative() {
		return []error{fmt.Errorf("%w: %s %q costs %s", ErrNegativePrice, e.Kind, e.Key, e.Price)}
	}
	return nil
}
