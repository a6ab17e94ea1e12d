// Package receipt prints the counter's banner and the final order summary.
package receipt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/specialistvlad/littlekai/internal/menu"
	"github.com/specialistvlad/littlekai/internal/order"
)

// OutOfControl is appended to the spiciness line of the hottest orders.
const OutOfControl = "OUT OF CONTROOL !_!"

// Printer writes the banner and the order summary. Styles are rendered for
// the writer it was created with, so a non-terminal writer gets plain text.
type Printer struct {
	out      io.Writer
	currency string
	itemize  bool

	bold  lipgloss.Style
	alarm lipgloss.Style
	dim   lipgloss.Style
}

// Option configures a Printer.
type Option func(*Printer)

// WithItemize lists every layer of the order before the total.
func WithItemize(itemize bool) Option {
	return func(p *Printer) {
		p.itemize = itemize
	}
}

// New creates a Printer on out using the given currency symbol.
func New(out io.Writer, currency string, opts ...Option) *Printer {
	r := lipgloss.NewRenderer(out)
	p := &Printer{
		out:      out,
		currency: currency,
		bold:     r.NewStyle().Bold(true),
		alarm:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555")),
		dim:      r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Banner prints the shop name framed by hashes.
func (p *Printer) Banner(shopName string) {
	title := "  " + shopName + "  "
	rule := strings.Repeat("#", len(title))
	fmt.Fprintln(p.out, p.bold.Render(rule))
	fmt.Fprintln(p.out, p.bold.Render(title))
	fmt.Fprintln(p.out, p.bold.Render(rule))
	fmt.Fprintln(p.out)
}

// Report prints the total cost and, when the order ends in a sauce, its
// spiciness.
func (p *Printer) Report(item order.Item) {
	if p.itemize {
		p.printLayers(item)
	}

	fmt.Fprintf(p.out, "> Your order is: %s\n", p.bold.Render(p.money(item.Cost())))

	if level, ok := order.Spiciness(item); ok {
		line := fmt.Sprintf("> Spiciness is: %d out of %d", level, menu.MaxSpiciness)
		if level == menu.MaxSpiciness {
			line += " " + p.alarm.Render(OutOfControl)
		}
		fmt.Fprintln(p.out, line)
	} else {
		fmt.Fprintln(p.out, "> Without sauce")
	}

	fmt.Fprintln(p.out, "> Enjoy your noodles! :D")
}

func (p *Printer) printLayers(item order.Item) {
	layers := order.Layers(item)
	width := 0
	for _, l := range layers {
		width = max(width, len(l.Name))
	}
	for _, l := range layers {
		prefix := "+ "
		if l.Kind == order.LayerNoodles {
			prefix = "  "
		}
		fmt.Fprintf(p.out, "  %s%-*s %s\n", prefix, width, l.Name, p.dim.Render(p.money(l.Price)))
	}
}

func (p *Printer) money(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + p.currency
}
