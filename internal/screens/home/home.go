package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adivina/internal/router"
	"github.com/abhisek/adivina/internal/screen"
	"github.com/abhisek/adivina/internal/screens/game"
	statsscreen "github.com/abhisek/adivina/internal/screens/stats"
	treescreen "github.com/abhisek/adivina/internal/screens/tree"
	sess "github.com/abhisek/adivina/internal/session"
	"github.com/abhisek/adivina/internal/ui/components"
)

type overviewLoadedMsg struct {
	Overview *sess.Overview
	Err      error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	svc      *sess.Service
	menu     components.Menu
	overview *sess.Overview
}

var (
	_ screen.Screen  = (*HomeScreen)(nil)
	_ screen.Resumer = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(svc *sess.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "JUGAR", Hotkey: "p", Action: push(func() screen.Screen { return game.New(svc) })},
		{Label: "ÁRBOL", Hotkey: "a", Action: push(func() screen.Screen { return treescreen.New(svc) })},
		{Label: "ESTADÍSTICAS", Hotkey: "e", Action: push(func() screen.Screen { return statsscreen.New(svc) })},
		{Label: "SALIR", Hotkey: "q", Action: func() tea.Cmd { return tea.Quit }},
	}
	return &HomeScreen{
		svc:  svc,
		menu: components.NewMenu(items),
	}
}

func push(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: build()}
		}
	}
}

// Init loads the overview shown in the stats bar.
func (h *HomeScreen) Init() tea.Cmd {
	svc := h.svc
	return func() tea.Msg {
		ov, err := svc.Overview(context.Background(), 0)
		return overviewLoadedMsg{Overview: ov, Err: err}
	}
}

// Resume refreshes the stats bar after a game, tree or stats screen closes.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.Init()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(overviewLoadedMsg); ok {
		if msg.Err == nil {
			h.overview = msg.Overview
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 22 || width < 70
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.overview, cw))
	sections = append(sections, renderMenu(h.menu, cw, compact))

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
