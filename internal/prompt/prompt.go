// Package prompt runs the counter's side of the conversation: it prints the
// numbered menus and reads one whole number per answer.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/littlekai/internal/menu"
	"github.com/specialistvlad/littlekai/internal/order"
	"golang.org/x/term"
)

// ErrInvalidInput is returned when an answer is not a whole number.
var ErrInvalidInput = errors.New("answer must be a whole number")

// Prompter asks the menu questions on out and reads answers from in.
type Prompter struct {
	in   *bufio.Scanner
	out  io.Writer
	menu *menu.Menu
	echo bool
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithEcho makes the prompter print every answer it reads. It keeps the
// transcript readable when answers are piped in rather than typed.
func WithEcho(echo bool) Option {
	return func(p *Prompter) {
		p.echo = echo
	}
}

// New creates a Prompter for the given menu.
func New(in io.Reader, out io.Writer, m *menu.Menu, opts ...Option) *Prompter {
	p := &Prompter{
		in:   bufio.NewScanner(in),
		out:  out,
		menu: m,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsInteractive reports whether r is a terminal. Only an *os.File can be one.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ChooseNoodles asks until a noodles number from the menu is given.
func (p *Prompter) ChooseNoodles() (int, error) {
	for {
		fmt.Fprint(p.out, "> Choose your noodles!\n\n")
		p.printEntries(p.menu.Noodles, priceColumn(p.menu.Shop.Currency))

		choice, err := p.readInt()
		if err != nil {
			return 0, err
		}
		if _, ok := p.menu.NoodlesAt(choice); ok {
			fmt.Fprintln(p.out)
			return choice, nil
		}
	}
}

// ChooseIngredient shows the cart so far and asks until 0 or an ingredient
// number is given. Its signature matches order.PromptFunc.
func (p *Prompter) ChooseIngredient(current order.Item) (int, error) {
	fmt.Fprintf(p.out, "> Your cart is: %s %s\n", current.Cost().StringFixed(2), p.menu.Shop.Currency)
	for {
		fmt.Fprint(p.out, "> Choose your ingredient!\n\n")
		p.printEntries(p.menu.Ingredients, priceColumn(p.menu.Shop.Currency))
		fmt.Fprint(p.out, "\n0> No more ingredients\n")

		choice, err := p.readInt()
		if err != nil {
			return 0, err
		}
		if _, ok := p.menu.IngredientAt(choice); ok || choice == 0 {
			fmt.Fprintln(p.out)
			return choice, nil
		}
	}
}

// ChooseSauce asks until 0 or a sauce number is given.
func (p *Prompter) ChooseSauce() (int, error) {
	currency := p.menu.Shop.Currency
	for {
		fmt.Fprint(p.out, "> Choose your sauce!\n\n")
		p.printEntries(p.menu.Sauces, func(e menu.Entry) string {
			return fmt.Sprintf("%d out of %d spiciness, %s %s", e.Spiciness, menu.MaxSpiciness, e.Price.StringFixed(2), currency)
		})
		fmt.Fprint(p.out, "\n0> No sauce\n")

		choice, err := p.readInt()
		if err != nil {
			return 0, err
		}
		if _, ok := p.menu.SauceAt(choice); ok || choice == 0 {
			fmt.Fprintln(p.out)
			return choice, nil
		}
	}
}

// printEntries lists entries as "n> Label:  detail" with the details aligned.
func (p *Prompter) printEntries(entries []menu.Entry, detail func(menu.Entry) string) {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Label))
	}
	for i, e := range entries {
		fmt.Fprintf(p.out, "%d> %-*s %s\n", i+1, width+1, e.Label+":", detail(e))
	}
}

func priceColumn(currency string) func(menu.Entry) string {
	return func(e menu.Entry) string {
		return fmt.Sprintf("%6s %s", e.Price.StringFixed(2), currency)
	}
}

// readInt prints the input marker and reads the next non-blank line.
func (p *Prompter) readInt() (int, error) {
	fmt.Fprint(p.out, "> ")
	for p.in.Scan() {
		text := strings.TrimSpace(p.in.Text())
		if text == "" {
			continue
		}
		if p.echo {
			fmt.Fprintln(p.out, text)
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidInput, text)
		}
		return n, nil
	}
	if err := p.in.Err(); err != nil {
		return 0, fmt.Errorf("failed to read answer: %w", err)
	}
	return 0, io.ErrUnexpectedEOF
}
