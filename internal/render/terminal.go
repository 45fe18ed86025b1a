// Package render formats horoscopes for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/cosmicweather/internal/horoscope"
	"github.com/lox/cosmicweather/internal/zodiac"
)

const cardWidth = 64

var (
	title   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	subtle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	body    = lipgloss.NewStyle().Width(cardWidth - 4)
	border  = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("99")).
		Padding(0, 1).
		Width(cardWidth)
)

// Terminal renders h as a bordered, coloured card.
func Terminal(h horoscope.Horoscope) string {
	sections := []string{
		title.Render(pairLine(h.Sign1, h.Sign2)),
		subtle.Render(weatherLine(h)),
		"",
	}
	for _, s := range cardSections(h) {
		sections = append(sections, heading.Render(s.label), body.Render(s.text), "")
	}
	return border.Render(strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, sections...), "\n"))
}

// Plain renders h without styling, for pipes and logs.
func Plain(h horoscope.Horoscope) string {
	var b strings.Builder
	fmt.Fprintln(&b, pairLine(h.Sign1, h.Sign2))
	fmt.Fprintln(&b, weatherLine(h))
	for _, s := range cardSections(h) {
		fmt.Fprintf(&b, "\n%s\n  %s\n", s.label, s.text)
	}
	return b.String()
}

// Signs renders the zodiac catalog as a table.
func Signs() string {
	var b strings.Builder
	for _, s := range zodiac.All() {
		fmt.Fprintf(&b, "%s  %-12s %-16s %s\n", s.Symbol(), s.Name(), s.DateRange(), s.Element())
	}
	return b.String()
}

type section struct {
	label string
	text  string
}

func cardSections(h horoscope.Horoscope) []section {
	return []section{
		{"Relationship Climate", h.RelationshipClimate},
		{"Compatibility", h.Compatibility},
		{"Communication", h.Communication},
		{"Suggested Activity", h.SuggestedActivity},
	}
}

func pairLine(s1, s2 zodiac.Sign) string {
	return fmt.Sprintf("%s %s  +  %s %s", s1.Symbol(), s1.Name(), s2.Symbol(), s2.Name())
}

func weatherLine(h horoscope.Horoscope) string {
	w := h.Weather
	return fmt.Sprintf("%s %s, %d°C (%s)", w.Emoji, w.Condition, w.Temperature, w.Mood)
}
