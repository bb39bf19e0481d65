package tree

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/router"
	sess "github.com/abhisek/adivina/internal/session"
)

func newService(t *testing.T) *sess.Service {
	t.Helper()
	kb := knowledge.NewFileStore(filepath.Join(t.TempDir(), "knowledge.json"))
	root := knowledge.NewInterior(knowledge.DefaultQuestion,
		knowledge.NewInterior("¿Es neerlandés?", knowledge.NewLeaf("Max Verstappen"), knowledge.Empty()),
		knowledge.NewLeaf("Fernando Alonso"),
	)
	if err := kb.Save(context.Background(), root); err != nil {
		t.Fatal(err)
	}
	svc := sess.NewService(sess.Options{Knowledge: kb})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestTreeScreen_ShowsEverySubject(t *testing.T) {
	s := New(newService(t))
	view := s.View(100, 30)

	for _, want := range []string{"Max Verstappen", "Fernando Alonso", "¿Es neerlandés?", "2 personajes"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestTreeScreen_QuitKeyPops(t *testing.T) {
	s := New(newService(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
