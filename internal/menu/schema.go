package menu

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a menu file may contain. There is
// no remain body: unknown blocks and attributes are rejected by gohcl.
type fileRoot struct {
	Shop        *shopBlock    `hcl:"shop,block"`
	Noodles     []*entryBlock `hcl:"noodles,block"`
	Ingredients []*entryBlock `hcl:"ingredient,block"`
	Sauces      []*sauceBlock `hcl:"sauce,block"`
}

// shopBlock is the optional `shop` block.
type shopBlock struct {
	Name     string `hcl:"name,optional"`
	Currency string `hcl:"currency,optional"`
}

// entryBlock is a `noodles` or `ingredient` block. The price is kept as an
// expression so it can be read as an exact decimal rather than a float.
type entryBlock struct {
	Key      string         `hcl:"key,label"`
	Label    string         `hcl:"label,optional"`
	Price    hcl.Expression `hcl:"price"`
	Fallback bool           `hcl:"fallback,optional"`
}

// sauceBlock is a `sauce` block.
type sauceBlock struct {
	Key       string         `hcl:"key,label"`
	Label     string         `hcl:"label,optional"`
	Price     hcl.Expression `hcl:"price"`
	Spiciness hcl.Expression `hcl:"spiciness"`
}
