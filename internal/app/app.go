package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/littlekai/internal/ctxlog"
	"github.com/specialistvlad/littlekai/internal/menu"
	"github.com/specialistvlad/littlekai/internal/prompt"
	"github.com/specialistvlad/littlekai/internal/receipt"
)

// MenuLoader loads the catalog the counter serves from. With no paths it
// returns the built-in menu.
type MenuLoader interface {
	Load(ctx context.Context, paths ...string) (*menu.Menu, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger   *slog.Logger
	config   *Config
	menu     *menu.Menu
	prompter *prompt.Prompter
	printer  *receipt.Printer
}

// NewApp is the constructor for the main application. It builds an isolated
// logger writing to logW, loads the menu and wires the prompter and receipt
// printer to in and outW.
func NewApp(ctx context.Context, in io.Reader, outW, logW io.Writer, cfg *Config, loader MenuLoader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	m, err := loader.Load(ctx, cfg.MenuPaths()...)
	if err != nil {
		// A menu that cannot be loaded is a fatal startup error.
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	logger.Debug("Menu loaded.", "shop", m.Shop.Name, "path", cfg.MenuPath)

	return &App{
		logger:   logger,
		config:   cfg,
		menu:     m,
		prompter: prompt.New(in, outW, m, prompt.WithEcho(cfg.EchoInput)),
		printer:  receipt.New(outW, m.Shop.Currency, receipt.WithItemize(cfg.Itemize)),
	}, nil
}

// Menu returns the loaded menu. This is primarily for testing.
func (a *App) Menu() *menu.Menu {
	return a.menu
}
