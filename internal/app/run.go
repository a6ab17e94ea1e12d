package app

import (
	"context"

	"github.com/specialistvlad/littlekai/internal/ctxlog"
	"github.com/specialistvlad/littlekai/internal/order"
)

// Run greets the customer, takes one order and prints its summary.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.printer.Banner(a.menu.Shop.Name)

	item, err := a.TakeOrder(ctx)
	if err != nil {
		return err
	}

	a.printer.Report(item)
	a.logger.Info("Order served.", "order", order.Describe(item), "cost", item.Cost().StringFixed(2))

	a.logger.Debug("App.Run method finished.")
	return nil
}

// TakeOrder runs the dialogue: noodles, then ingredients, then sauce.
func (a *App) TakeOrder(ctx context.Context) (order.Item, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	choice, err := a.prompter.ChooseNoodles()
	if err != nil {
		return nil, err
	}
	item := order.SelectBase(ctxlog.With(ctx, "stage", "noodles"), a.menu, choice)

	item, err = order.AddIngredients(ctxlog.With(ctx, "stage", "ingredients"), a.menu, item, a.prompter.ChooseIngredient)
	if err != nil {
		return nil, err
	}

	choice, err = a.prompter.ChooseSauce()
	if err != nil {
		return nil, err
	}
	return order.ApplySauce(ctxlog.With(ctx, "stage", "sauce"), a.menu, item, choice), nil
}
