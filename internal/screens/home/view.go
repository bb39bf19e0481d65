package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/adivina/internal/session"
	"github.com/abhisek/adivina/internal/ui/components"
	"github.com/abhisek/adivina/internal/ui/theme"
)

const titleFull = ` █████╗ ██████╗ ██╗██╗   ██╗██╗███╗   ██╗ █████╗
██╔══██╗██╔══██╗██║██║   ██║██║████╗  ██║██╔══██╗
███████║██║  ██║██║██║   ██║██║██╔██╗ ██║███████║
██╔══██║██║  ██║██║╚██╗ ██╔╝██║██║╚██╗██║██╔══██║
██║  ██║██████╔╝██║ ╚████╔╝ ██║██║ ╚████║██║  ██║
╚═╝  ╚═╝╚═════╝ ╚═╝  ╚═══╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝`

const titleCompact = "A · D · I · V · I · N · A"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6 // frame border + padding
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(style.Render(art))
}

// renderStatsBar shows what the knowledge base knows and how well it plays.
func renderStatsBar(ov *sess.Overview, cw int) string {
	subjectStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	questionStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if ov == nil {
		stats = dim.Render("…")
	} else {
		rate := dim.Render("SIN PARTIDAS")
		if ov.History.Guessed+ov.History.Learned > 0 {
			rate = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render(fmt.Sprintf("%.0f%% ACIERTOS", ov.History.GuessRate()*100))
		}
		stats = fmt.Sprintf("%s  %s  %s",
			subjectStyle.Render(fmt.Sprintf("● %d PERSONAJES", ov.Tree.Subjects)),
			questionStyle.Render(fmt.Sprintf("? %d PREGUNTAS", ov.Tree.Questions)),
			rate,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu draws each item as a fixed-width button, or as plain lines
// when the terminal is too small for bordered buttons.
func renderMenu(m components.Menu, cw int, compact bool) string {
	if compact {
		return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(m.View())
	}

	selected := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normal := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		if i == m.Selected {
			buttons = append(buttons, selected.Render("▸ "+item.Label))
		} else {
			buttons = append(buttons, normal.Render(item.Label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderFrame wraps content in a double border centered in the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
