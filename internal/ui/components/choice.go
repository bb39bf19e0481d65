package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adivina/internal/ui/theme"
)

// YesNo is a two-option selector. Arrows move the selection, enter picks
// it, and the s/y and n keys pick directly.
type YesNo struct {
	Yes      bool // selected option
	Chosen   bool
	answered bool
}

// NewYesNo creates a selector with "Sí" selected.
func NewYesNo() YesNo {
	return YesNo{Yes: true}
}

// Update handles keyboard selection.
func (c YesNo) Update(msg tea.Msg) YesNo {
	if c.answered {
		return c
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}

	switch strings.ToLower(kmsg.String()) {
	case "left", "h":
		c.Yes = true
	case "right", "l":
		c.Yes = false
	case "tab":
		c.Yes = !c.Yes
	case "s", "y":
		c.Yes, c.Chosen, c.answered = true, true, true
	case "n":
		c.Yes, c.Chosen, c.answered = false, false, true
	case "enter":
		c.Chosen, c.answered = c.Yes, true
	}
	return c
}

// Answered reports whether an option was picked. Chosen is valid once it
// returns true.
func (c YesNo) Answered() bool {
	return c.answered
}

// View renders both options side by side.
func (c YesNo) View() string {
	yes := option("Sí", c.Yes)
	no := option("No", !c.Yes)
	return lipgloss.JoinHorizontal(lipgloss.Center, yes, "   ", no)
}

func option(label string, selected bool) string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())
	if selected {
		return style.
			BorderForeground(theme.Primary).
			Foreground(theme.Primary).
			Bold(true).
			Render("▸ " + label)
	}
	return style.
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Render("  " + label)
}
