package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: red on dark greys
var (
	Primary   = lipgloss.Color("#E10600") // Red
	Secondary = lipgloss.Color("#00A19B") // Teal
	Accent    = lipgloss.Color("#FFB800") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#111318") // Near Black
	BgCard    = lipgloss.Color("#1E2128") // Charcoal
	Border    = lipgloss.Color("#3A3F4B") // Grey
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Tree rendering
var (
	Question = lipgloss.NewStyle().
			Foreground(Secondary)

	Subject = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Unexplored = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	Branch = lipgloss.NewStyle().
		Foreground(Border)
)
