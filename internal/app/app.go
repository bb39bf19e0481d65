package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/adivina/internal/router"
	"github.com/abhisek/adivina/internal/screen"
	"github.com/abhisek/adivina/internal/screens/home"
	"github.com/abhisek/adivina/internal/screens/welcome"
	sess "github.com/abhisek/adivina/internal/session"
	"github.com/abhisek/adivina/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Service *sess.Service
	Logger  *zap.SugaredLogger

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	svc    *sess.Service
	log    *zap.SugaredLogger
	width  int
	height int
}

// newAppModel creates an AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	var first screen.Screen = home.New(opts.Service)
	if !opts.SkipWelcome {
		first = welcome.New(func() screen.Screen { return home.New(opts.Service) })
	}
	return AppModel{
		router: router.New(first),
		svc:    opts.Service,
		log:    opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.closeActive()
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.EscapeCapturer); ok && c.CapturesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg:
		m.log.Debugw("push screen", "title", msg.Screen.Title())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// closeActive lets the active screen record unfinished work.
func (m AppModel) closeActive() {
	if c, ok := m.router.Active().(screen.Closer); ok {
		c.Close()
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.badges(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// badges summarise the knowledge base in the header.
func (m AppModel) badges() []string {
	st := m.svc.Stats()
	return []string{
		fmt.Sprintf("? %d %s", st.Questions, plural(st.Questions, "pregunta", "preguntas")),
		fmt.Sprintf("● %d %s", st.Subjects, plural(st.Subjects, "personaje", "personajes")),
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
