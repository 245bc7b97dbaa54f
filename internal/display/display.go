// Package display renders cards, evaluated hands and showdown results for the
// terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhand/poker"
)

// Options controls how cards are drawn.
type Options struct {
	Color   bool // colour red suits and headings
	Symbols bool // draw suits as ♥♣♦♠ instead of H C D S
}

// Printer writes styled output to a single writer.
type Printer struct {
	w       io.Writer
	symbols bool

	header   lipgloss.Style
	red      lipgloss.Style
	black    lipgloss.Style
	category lipgloss.Style
	winner   lipgloss.Style
	dim      lipgloss.Style
}

// New creates a printer for w. Colour is dropped when disabled or when w is
// not a terminal.
func New(w io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(w)
	if !opts.Color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:        w,
		symbols:  opts.Symbols,
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		red:      r.NewStyle().Foreground(lipgloss.Color("9")),
		black:    r.NewStyle().Foreground(lipgloss.Color("15")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		winner:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		dim:      r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Card renders one card.
func (p *Printer) Card(c poker.Card) string {
	text := c.String()
	if p.symbols {
		text = c.Symbol()
	}
	if c.Suit.IsRed() {
		return p.red.Render(text)
	}
	return p.black.Render(text)
}

// Cards renders cards separated by spaces.
func (p *Printer) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Card(c)
	}
	return strings.Join(parts, " ")
}

// Hand renders a hand as its category followed by its cards.
func (p *Printer) Hand(h poker.Hand) string {
	return fmt.Sprintf("%s %s", p.category.Render(h.Category().String()), p.Cards(h.Cards()))
}

// Evaluation writes the full breakdown of a hand.
func (p *Printer) Evaluation(h poker.Hand) {
	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", p.header.Render("cards"), p.Cards(h.Cards()))
	fmt.Fprintf(w, "%s\t%s\n", p.header.Render("category"), p.category.Render(h.Category().String()))
	fmt.Fprintf(w, "%s\t%s\n", p.header.Render("rank"), h.CategoryRank().Name())
	fmt.Fprintf(w, "%s\t%s\n", p.header.Render("kicker"), formatRanks(h.Kicker()))
	fmt.Fprintf(w, "%s\t%s\n", p.header.Render("score"), p.dim.Render(fmt.Sprintf("%d", h.Score())))
	w.Flush()
}

// Showdown writes one row per player and announces the winners.
func (p *Printer) Showdown(names []string, hands []poker.Hand, winners []int) {
	won := make(map[int]bool, len(winners))
	for _, i := range winners {
		won[i] = true
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", p.header.Render("player"), p.header.Render("hand"), p.header.Render("result"))
	for i, h := range hands {
		result := p.dim.Render("-")
		if won[i] {
			result = p.winner.Render("win")
			if len(winners) > 1 {
				result = p.winner.Render("tie")
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", names[i], p.Hand(h), result)
	}
	w.Flush()

	fmt.Fprintln(p.w)
	switch len(winners) {
	case 0:
		fmt.Fprintln(p.w, "No hands to compare")
	case 1:
		fmt.Fprintf(p.w, "The winner of this showdown is %s\n", p.winner.Render(names[winners[0]]))
	default:
		tied := make([]string, len(winners))
		for i, idx := range winners {
			tied[i] = names[idx]
		}
		fmt.Fprintf(p.w, "We have a %d-way tie between %s\n", len(winners), p.winner.Render(strings.Join(tied, ", ")))
	}
}

// Frequencies writes a table of how often each category was made, strongest
// first. total is the number of hands counted.
func (p *Printer) Frequencies(counts map[poker.Category]int, total int) {
	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", p.header.Render("category"), p.header.Render("hands"), p.header.Render("share"))
	for i := len(poker.Categories) - 1; i >= 0; i-- {
		c := poker.Categories[i]
		share := 0.0
		if total > 0 {
			share = float64(counts[c]) / float64(total) * 100
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", p.category.Render(c.String()), counts[c], p.dim.Render(fmt.Sprintf("%.3f%%", share)))
	}
	w.Flush()
}

func formatRanks(ranks []poker.Rank) string {
	if len(ranks) == 0 {
		return "-"
	}
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}
