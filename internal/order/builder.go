package order

import (
	"context"
	"fmt"

	"github.com/specialistvlad/littlekai/internal/ctxlog"
	"github.com/specialistvlad/littlekai/internal/menu"
)

// PromptFunc asks for the next ingredient. It receives the order so far and
// returns a menu choice; 0 means no more ingredients.
type PromptFunc func(current Item) (int, error)

// SelectBase starts an order from a noodles choice. A choice that is not on
// the menu gets the menu's fallback noodles.
func SelectBase(ctx context.Context, m *menu.Menu, choice int) Item {
	logger := ctxlog.FromContext(ctx)

	entry, ok := m.NoodlesAt(choice)
	if !ok {
		entry = m.FallbackNoodles()
		logger.Debug("Noodles choice not on the menu, serving the fallback.", "choice", choice, "noodles", entry.Label)
	}

	logger.Debug("Base selected.", "noodles", entry.Label, "price", entry.Price)
	return NewNoodles(entry.Label, entry.Price)
}

// AddIngredients keeps asking prompt for ingredients and wraps the order with
// each one. It stops at 0 or at any choice that is not on the menu.
func AddIngredients(ctx context.Context, m *menu.Menu, item Item, prompt PromptFunc) (Item, error) {
	logger := ctxlog.FromContext(ctx)
	current := item

	for {
		choice, err := prompt(current)
		if err != nil {
			return nil, fmt.Errorf("failed to choose ingredient: %w", err)
		}

		entry, ok := m.IngredientAt(choice)
		if !ok {
			logger.Debug("Ingredients finished.", "choice", choice, "order", Describe(current))
			return current, nil
		}

		next, err := AddIngredient(current, entry.Label, entry.Price)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", entry.Label, err)
		}
		logger.Debug("Ingredient added.", "ingredient", entry.Label, "cost", next.Cost())
		current = next
	}
}

// ApplySauce finishes the order with a sauce choice. 0, a choice that is not
// on the menu, or an order that already has a sauce leave the item unchanged.
func ApplySauce(ctx context.Context, m *menu.Menu, item Item, choice int) Item {
	logger := ctxlog.FromContext(ctx)

	entry, ok := m.SauceAt(choice)
	if !ok {
		logger.Debug("No sauce.", "choice", choice)
		return item
	}

	sauced, err := AddSauce(item, entry.Label, entry.Price, entry.Spiciness)
	if err != nil {
		logger.Warn("Sauce not applied.", "sauce", entry.Label, "error", err)
		return item
	}

	logger.Debug("Sauce applied.", "sauce", entry.Label, "spiciness", entry.Spiciness)
	return sauced
}
