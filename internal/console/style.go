package console

import (
	"io"

	"wizard-game/internal/shared"

	"github.com/charmbracelet/lipgloss"
)

var suitColors = map[shared.Suit]lipgloss.Color{
	shared.Clubs:    lipgloss.Color("#44AAFF"),
	shared.Diamonds: lipgloss.Color("#FFD700"),
	shared.Hearts:   lipgloss.Color("#FF6B6B"),
	shared.Spades:   lipgloss.Color("#50FA7B"),
}

var (
	clrSpecial = lipgloss.Color("#BD93F9")
	clrTitle   = lipgloss.Color("#58a6ff")
	clrSubtle  = lipgloss.Color("#8b949e")
	clrGold    = lipgloss.Color("#e3b341")
)

// palette renders through a writer-specific renderer so color is only
// emitted when out is a terminal.
type palette struct {
	r *lipgloss.Renderer
}

func newPalette(out io.Writer) palette {
	return palette{r: lipgloss.NewRenderer(out)}
}

func (p palette) card(c shared.Card) string {
	color, ok := suitColors[c.Suit]
	if c.Rank.IsSpecial() {
		color, ok = clrSpecial, true
	}
	if !ok {
		return c.String()
	}
	return p.r.NewStyle().Foreground(color).Bold(c.Rank.IsSpecial()).Render(c.String())
}

func (p palette) suit(s shared.Suit) string {
	color, ok := suitColors[s]
	if !ok {
		return s.Symbol()
	}
	return p.r.NewStyle().Foreground(color).Render(s.Symbol())
}

func (p palette) title(s string) string {
	return p.r.NewStyle().Foreground(clrTitle).Bold(true).Render(s)
}

func (p palette) subtle(s string) string {
	return p.r.NewStyle().Foreground(clrSubtle).Render(s)
}

func (p palette) gold(s string) string {
	return p.r.NewStyle().Foreground(clrGold).Bold(true).Render(s)
}
