package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adivina/internal/router"
	"github.com/abhisek/adivina/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Inicio" }

func newWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func tick(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestTaglineTypesOutAfterBanner(t *testing.T) {
	w, _ := newWelcome()

	if strings.Contains(w.View(80, 24), "Piensa") {
		t.Error("tagline visible before the animation")
	}

	tick(w, 5)
	if w.elapsed != phase1End {
		t.Errorf("elapsed = %v, want %v", w.elapsed, phase1End)
	}

	tick(w, 10)
	view := w.View(80, 24)
	if !strings.Contains(view, "█████╗") {
		t.Error("banner missing after the second phase")
	}
	if strings.Contains(view, "Yo lo adivinaré") || strings.Contains(view, "pulsa cualquier tecla") {
		t.Error("tagline complete too early")
	}

	tick(w, 20)
	view = w.View(80, 24)
	if !strings.Contains(view, "Yo lo adivinaré") {
		t.Error("tagline not fully typed")
	}
	if !strings.Contains(view, "pulsa cualquier tecla") {
		t.Error("hint missing once the tagline is typed")
	}
}

func TestBallShimmers(t *testing.T) {
	w, _ := newWelcome()
	tick(w, 5)
	first := w.renderBall()
	tick(w, 1)
	if w.renderBall() == first {
		t.Error("ball did not change between frames")
	}
}

func TestElapsedIsCapped(t *testing.T) {
	w, calls := newWelcome()
	tick(w, 60)

	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want %v", w.elapsed, totalDur)
	}
	if *calls != 0 {
		t.Errorf("home built %d times without a key press", *calls)
	}
}

func TestAnyKeySkipsToHome(t *testing.T) {
	w, calls := newWelcome()
	tick(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok || msg.Screen == nil {
		t.Fatalf("got %#v, want ReplaceScreenMsg with a screen", msg)
	}

	if _, cmd = w.Update(tea.KeyPressMsg{Code: 'x'}); cmd != nil {
		t.Error("second key press must not transition again")
	}
	if *calls != 1 {
		t.Errorf("home built %d times, want 1", *calls)
	}
}

func TestBannerCompactOnNarrowTerminals(t *testing.T) {
	if !strings.Contains(RenderBanner(40), bannerCompact) {
		t.Error("expected the compact banner below 54 columns")
	}
}
