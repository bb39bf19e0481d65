package stats

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/screen"
	sess "github.com/abhisek/adivina/internal/session"
	"github.com/abhisek/adivina/internal/store"
)

func newService(t *testing.T) *sess.Service {
	t.Helper()
	dir := t.TempDir()
	db, err := store.Open(filepath.Join(dir, "adivina.db"), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	svc := sess.NewService(sess.Options{
		Knowledge: knowledge.NewFileStore(filepath.Join(dir, "knowledge.json")),
		Sessions:  db.SessionRepo(),
		Snapshots: db.SnapshotRepo(),
	})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return svc
}

// learn plays one game that teaches subject below the seed's yes branch.
func learn(t *testing.T, svc *sess.Service, subject string) {
	t.Helper()
	p, err := svc.NewPlay()
	if err != nil {
		t.Fatal(err)
	}
	p.Engine.Start()
	p.Engine.Answer(true)
	ev, err := p.Engine.Learn(subject, "¿Es campeón del mundo?", true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Finish(context.Background(), p, ev); err != nil {
		t.Fatal(err)
	}
}

func load(t *testing.T, s *StatsScreen) {
	t.Helper()
	var scr screen.Screen = s
	scr.Update(s.Init()())
	if !s.loaded {
		t.Fatal("overview not loaded")
	}
}

func TestStatsScreen_Empty(t *testing.T) {
	s := New(newService(t))
	if !strings.Contains(s.View(80, 24), "Cargando") {
		t.Error("expected loading state before Init")
	}
	load(t, s)
	if !strings.Contains(s.View(80, 24), "Aún no hay partidas") {
		t.Error("expected the empty history message")
	}
}

func TestStatsScreen_ListsRecentPlays(t *testing.T) {
	svc := newService(t)
	learn(t, svc, "Max Verstappen")

	s := New(svc)
	load(t, s)

	view := s.View(100, 30)
	if !strings.Contains(view, "aprendida") {
		t.Error("expected the learned play in the list")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "Aprendí a Max Verstappen") {
		t.Error("expected details after Enter")
	}
}

func TestStatsScreen_Navigation(t *testing.T) {
	svc := newService(t)
	learn(t, svc, "Max Verstappen")
	s := New(svc)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0 with a single play", s.selected)
	}
}
