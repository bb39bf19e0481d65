package welcome

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adivina/internal/router"
	"github.com/abhisek/adivina/internal/screen"
	"github.com/abhisek/adivina/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond  // the ball starts to shimmer
	phase2End    = 1500 * time.Millisecond // banner shows, tagline starts typing
	totalDur     = 4500 * time.Millisecond
	runesPerTick = 2
)

const tagline = "Piensa en un personaje. Yo lo adivinaré."

// ballArt has two slots inside the glass, five and three cells wide.
const ballArt = `     ╭───────╮
   ╭─┤ %s ├─╮
  │   ╲ %s ╱   │
  │    ╲───╱    │
   ╰─────────╯
    ╱▔▔▔▔▔▔▔╲
   ▕▁▁▁▁▁▁▁▁▁▏`

var ballFrames = [][2]string{
	{" ? ? ", " ? "},
	{"¿ ? ¿", " ¿ "},
	{" ✦ ✧ ", "✧ ✦"},
	{"· ✦ ·", " ✧ "},
}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home
// screen. Any key skips it.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	ticks        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen replaced by the screen next builds.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nextTick()
}

func nextTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.ticks++
		return w, nextTick()
	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderBall()}

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "", w.renderTagline())
		if w.typed() >= utf8.RuneCountInString(tagline) {
			hint := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("pulsa cualquier tecla para empezar")
			sections = append(sections, "", hint)
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

func (w *WelcomeScreen) renderBall() string {
	frame := ballFrames[0]
	if w.elapsed >= phase1End {
		frame = ballFrames[w.ticks%len(ballFrames)]
	}
	glass := lipgloss.NewStyle().Foreground(theme.Secondary)
	glow := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var b strings.Builder
	slot := 0
	for i, line := range strings.Split(ballArt, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		for j, piece := range strings.Split(line, "%s") {
			if j > 0 {
				b.WriteString(glow.Render(frame[slot]))
				slot++
			}
			b.WriteString(glass.Render(piece))
		}
	}
	return b.String()
}

// typed is how many runes of the tagline are visible.
func (w *WelcomeScreen) typed() int {
	if w.elapsed < phase2End {
		return 0
	}
	return int((w.elapsed-phase2End)/tickInterval+1) * runesPerTick
}

func (w *WelcomeScreen) renderTagline() string {
	runes := []rune(tagline)
	n := min(w.typed(), len(runes))
	text := string(runes[:n])
	if n < len(runes) {
		text += "▌"
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(text)
}
