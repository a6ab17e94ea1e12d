package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/littlekai/internal/ctxlog"
	"github.com/specialistvlad/littlekai/internal/fsutil"
)

// ErrNoMenuFiles is returned when the given paths contain no .hcl file.
var ErrNoMenuFiles = errors.New("no .hcl menu files found")

// Loader reads menu catalogs from HCL files.
type Loader struct{}

// NewLoader creates a new HCL menu loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and merges every .hcl file found under paths. With no paths it
// returns the embedded default menu.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Menu, error) {
	logger := ctxlog.FromContext(ctx)
	if len(paths) == 0 {
		logger.Debug("No menu path given, using the built-in menu.")
		return Default(ctx)
	}
	logger.Debug("HCL menu loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find menu files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoMenuFiles, paths)
	}
	logger.Debug("Discovered menu files.", "count", len(files))

	parser := hclparse.NewParser()
	b := newBuilder()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := b.addFile(ctx, hclFile, file); err != nil {
			return nil, err
		}
	}

	return b.build(ctx)
}

// Parse reads a single menu document held in memory.
func Parse(ctx context.Context, filename string, src []byte) (*Menu, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	b := newBuilder()
	if err := b.addFile(ctx, hclFile, filename); err != nil {
		return nil, err
	}
	return b.build(ctx)
}

// Default returns the menu embedded in the binary.
func Default(ctx context.Context) (*Menu, error) {
	return Parse(ctx, "default.hcl", defaultMenu)
}

// builder accumulates entries from one or more files before validation.
type builder struct {
	menu Menu
	keys map[Kind]map[string]struct{}
	errs []error
}

func newBuilder() *builder {
	return &builder{
		keys: map[Kind]map[string]struct{}{
			KindNoodles:    {},
			KindIngredient: {},
			KindSauce:      {},
		},
	}
}

// addFile decodes one parsed file and appends its blocks to the menu.
func (b *builder) addFile(ctx context.Context, f *hcl.File, filename string) error {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	if root.Shop != nil {
		if root.Shop.Name != "" {
			b.menu.Shop.Name = root.Shop.Name
		}
		if root.Shop.Currency != "" {
			b.menu.Shop.Currency = root.Shop.Currency
		}
	}
	for _, blk := range root.Noodles {
		b.add(translateEntry(KindNoodles, blk))
	}
	for _, blk := range root.Ingredients {
		b.add(translateEntry(KindIngredient, blk))
	}
	for _, blk := range root.Sauces {
		b.add(translateSauce(blk))
	}

	logger.Debug("Menu file decoded.", "file", filename,
		"noodles", len(root.Noodles), "ingredients", len(root.Ingredients), "sauces", len(root.Sauces))
	return nil
}

func (b *builder) add(e Entry, err error) {
	if err != nil {
		b.errs = append(b.errs, err)
		return
	}
	if _, dup := b.keys[e.Kind][e.Key]; dup {
		b.errs = append(b.errs, fmt.Errorf("%w: %s %q", ErrDuplicateEntry, e.Kind, e.Key))
		return
	}
	b.keys[e.Kind][e.Key] = struct{}{}

	switch e.Kind {
	case KindNoodles:
		b.menu.Noodles = append(b.menu.Noodles, e)
	case KindIngredient:
		b.menu.Ingredients = append(b.menu.Ingredients, e)
	case KindSauce:
		b.menu.Sauces = append(b.menu.Sauces, e)
	}
}

// build applies shop defaults and validates the accumulated menu.
func (b *builder) build(ctx context.Context) (*Menu, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("invalid menu: %w", errors.Join(b.errs...))
	}

	m := b.menu
	if m.Shop.Name == "" {
		m.Shop.Name = defaultShopName
	}
	if m.Shop.Currency == "" {
		m.Shop.Currency = defaultCurrency
	}
	if err := validate(&m); err != nil {
		return nil, fmt.Errorf("invalid menu: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("Menu loaded.", "shop", m.Shop.Name,
		"noodles", len(m.Noodles), "ingredients", len(m.Ingredients), "sauces", len(m.Sauces))
	return &m, nil
}
