package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adivina/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeCapturer is an optional interface for screens that handle Esc
// themselves instead of letting the app pop them.
type EscapeCapturer interface {
	CapturesEscape() bool
}

// Closer is an optional interface for screens that must release work in
// progress when they leave the stack or the program quits.
type Closer interface {
	Close()
}

// Resumer is an optional interface for screens that refresh when a screen
// pushed over them is popped.
type Resumer interface {
	Resume() tea.Cmd
}
