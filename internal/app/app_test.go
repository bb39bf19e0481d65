package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/router"
	"github.com/abhisek/adivina/internal/screens/game"
	"github.com/abhisek/adivina/internal/screens/home"
	sess "github.com/abhisek/adivina/internal/session"
)

func newModel(t *testing.T) AppModel {
	t.Helper()
	svc := sess.NewService(sess.Options{
		Knowledge: knowledge.NewFileStore(filepath.Join(t.TempDir(), "knowledge.json")),
	})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	m := newAppModel(Options{Service: svc, SkipWelcome: true})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(AppModel)
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestView_HeaderShowsBrandAndTitle(t *testing.T) {
	m := newModel(t)
	content := m.render()
	if !strings.Contains(content, "Adivina") || !strings.Contains(content, "Inicio") {
		t.Error("header is missing the brand or the screen title")
	}
	if !strings.Contains(content, "? 1 pregunta") || !strings.Contains(content, "● 0 personajes") {
		t.Error("header badges do not describe the seed tree")
	}
}

func TestView_TooSmall(t *testing.T) {
	m := newModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "demasiado pequeña") {
		t.Error("expected the minimum size message")
	}
}

func TestEscDuringPlayIsCaptured(t *testing.T) {
	m := newModel(t)

	g := game.New(m.svc)
	m, _ = update(m, router.PushScreenMsg{Screen: g})
	m, _ = update(m, g.Init()())

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("Esc popped a running game")
		}
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
	if !strings.Contains(m.render(), "¿Abandonar la partida?") {
		t.Error("expected the game's quit confirmation")
	}
}

func TestEscPopsOtherScreens(t *testing.T) {
	m := newModel(t)
	m, _ = update(m, router.PushScreenMsg{Screen: home.New(m.svc)})

	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newModel(t)
	g := game.New(m.svc)
	m, _ = update(m, router.PushScreenMsg{Screen: g})
	m, _ = update(m, g.Init()())

	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
