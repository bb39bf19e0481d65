package game

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/router"
	"github.com/abhisek/adivina/internal/screen"
	sess "github.com/abhisek/adivina/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newService(t *testing.T, root *knowledge.Node) (*sess.Service, *knowledge.FileStore) {
	t.Helper()
	kb := knowledge.NewFileStore(filepath.Join(t.TempDir(), "knowledge.json"))
	if root != nil {
		if err := kb.Save(context.Background(), root); err != nil {
			t.Fatalf("seed knowledge: %v", err)
		}
	}
	svc := sess.NewService(sess.Options{Knowledge: kb})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc, kb
}

// started returns a screen whose first event has been applied.
func started(t *testing.T, svc *sess.Service) *GameScreen {
	t.Helper()
	s := New(svc)
	s.Update(s.Init()())
	if s.play == nil {
		t.Fatalf("play not started: %s", s.errMsg)
	}
	return s
}

func press(s *GameScreen, msg tea.Msg) tea.Cmd {
	_, cmd := s.Update(msg)
	return cmd
}

func TestGameScreen_Title(t *testing.T) {
	svc, _ := newService(t, nil)
	if got := New(svc).Title(); got != "Partida" {
		t.Errorf("Title = %q, want %q", got, "Partida")
	}
}

func TestGameScreen_LearnsFromSeed(t *testing.T) {
	svc, kb := newService(t, nil)
	s := started(t, svc)

	if s.phase != phaseQuestion || s.question != knowledge.DefaultQuestion {
		t.Fatalf("phase=%d question=%q, want the seed question", s.phase, s.question)
	}

	press(s, keyPress('n'))
	if s.phase != phaseLearnName {
		t.Fatalf("phase = %d after answering into an empty branch, want learn name", s.phase)
	}
	if !strings.Contains(s.View(80, 24), "¡Me rindo!") {
		t.Error("expected the give-up message")
	}

	s.nameInput.Model.SetValue("Max Verstappen")
	press(s, specialKey(tea.KeyEnter))
	if s.phase != phaseLearnQuestion {
		t.Fatalf("phase = %d, want learn question", s.phase)
	}

	s.qInput.Model.SetValue("¿Es neerlandés?")
	press(s, specialKey(tea.KeyEnter))
	if s.phase != phaseLearnAnswer {
		t.Fatalf("phase = %d, want learn answer", s.phase)
	}

	cmd := press(s, keyPress('s'))
	if s.phase != phaseSaving || cmd == nil {
		t.Fatalf("phase = %d, cmd = %v; want saving with a finish command", s.phase, cmd)
	}
	press(s, cmd())
	if s.phase != phaseEnded {
		t.Fatalf("phase = %d, want ended", s.phase)
	}
	if s.errMsg != "" {
		t.Fatalf("unexpected error: %s", s.errMsg)
	}
	if !strings.Contains(s.View(80, 24), "he aprendido algo nuevo") {
		t.Error("expected the learned message")
	}

	root, err := kb.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if root.No.Question != "¿Es neerlandés?" || root.No.Yes.Name != "Max Verstappen" {
		t.Errorf("unexpected tree after learning: %+v", root.No)
	}
}

func TestGameScreen_WrongGuessNamesIt(t *testing.T) {
	root := knowledge.NewInterior(knowledge.DefaultQuestion,
		knowledge.NewLeaf("Lando Norris"),
		knowledge.Empty(),
	)
	svc, _ := newService(t, root)
	s := started(t, svc)

	press(s, keyPress('s'))
	if s.phase != phaseGuess || s.guess != "Lando Norris" {
		t.Fatalf("phase=%d guess=%q, want a guess of Lando Norris", s.phase, s.guess)
	}

	press(s, keyPress('n'))
	if s.phase != phaseLearnName {
		t.Fatalf("phase = %d, want learn name", s.phase)
	}
	if !strings.Contains(s.View(80, 24), "No era Lando Norris") {
		t.Error("expected the rejected guess in the view")
	}
}

func TestGameScreen_CorrectGuess(t *testing.T) {
	root := knowledge.NewInterior(knowledge.DefaultQuestion,
		knowledge.NewLeaf("Lando Norris"),
		knowledge.Empty(),
	)
	svc, _ := newService(t, root)
	s := started(t, svc)

	press(s, keyPress('s'))
	// Arrow to No and back, then confirm the selection with Enter.
	press(s, specialKey(tea.KeyRight))
	press(s, specialKey(tea.KeyLeft))
	cmd := press(s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a finish command")
	}
	press(s, cmd())

	if !strings.Contains(s.View(80, 24), "¡Lo adiviné!") {
		t.Error("expected the guessed message")
	}
	if !svc.Root().Equal(root) {
		t.Error("a correct guess must not change the tree")
	}
}

func TestGameScreen_EmptyNameRejected(t *testing.T) {
	svc, _ := newService(t, nil)
	s := started(t, svc)
	press(s, keyPress('s'))

	press(s, specialKey(tea.KeyEnter))
	if s.phase != phaseLearnName {
		t.Fatalf("phase = %d, want to stay on learn name", s.phase)
	}
	if s.nameInput.Err() == "" {
		t.Error("expected a rejection message")
	}
}

func TestGameScreen_QuitConfirm(t *testing.T) {
	svc, _ := newService(t, nil)
	s := started(t, svc)

	if !s.CapturesEscape() {
		t.Fatal("a running play must capture Esc")
	}

	press(s, specialKey(tea.KeyEscape))
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation")
	}
	press(s, keyPress('n'))
	if s.quitConfirm {
		t.Fatal("expected quit confirmation to be dismissed")
	}

	press(s, specialKey(tea.KeyEscape))
	cmd := press(s, keyPress('s'))
	if cmd == nil {
		t.Fatal("expected an abandon command")
	}
	cmd = press(s, cmd())
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected the screen to pop after abandoning")
	}
	if !s.play.Ended() {
		t.Error("expected the play to be recorded as ended")
	}
}

func TestGameScreen_PlayAgain(t *testing.T) {
	root := knowledge.NewInterior(knowledge.DefaultQuestion,
		knowledge.NewLeaf("Lando Norris"),
		knowledge.Empty(),
	)
	svc, _ := newService(t, root)
	s := started(t, svc)
	press(s, keyPress('s'))
	press(s, press(s, keyPress('s'))())

	msg := press(s, keyPress('s'))()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want ReplaceScreenMsg", msg)
	}
	if _, ok := replace.Screen.(*GameScreen); !ok {
		t.Errorf("replacement is %T, want *GameScreen", replace.Screen)
	}
	if s.CapturesEscape() {
		t.Error("an ended play must not capture Esc")
	}
}

func TestGameScreen_MalformedNodeFails(t *testing.T) {
	svc := sess.NewService(sess.Options{Knowledge: &fixedStore{root: knowledge.NewInterior("q",
		&knowledge.Node{Question: "x", Name: "y", Yes: knowledge.Empty(), No: knowledge.Empty()},
		knowledge.Empty(),
	)}})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	s := started(t, svc)

	cmd := press(s, keyPress('s'))
	if s.phase != phaseEnded || s.errMsg == "" {
		t.Fatalf("phase=%d err=%q, want ended with an error", s.phase, s.errMsg)
	}
	if cmd != nil {
		cmd()
	}
	if !s.play.Ended() {
		t.Error("expected the failed play to be recorded")
	}
}

func TestGameScreen_CloseAbandons(t *testing.T) {
	svc, _ := newService(t, nil)
	s := started(t, svc)
	s.Close()
	if !s.play.Ended() {
		t.Error("Close must abandon a running play")
	}
	if s.CapturesEscape() {
		t.Error("a closed play must not capture Esc")
	}
	s.Close()
}

func TestGameScreen_KeyHints(t *testing.T) {
	svc, _ := newService(t, nil)
	var scr screen.Screen = started(t, svc)
	if hp, ok := scr.(screen.KeyHintProvider); !ok || len(hp.KeyHints()) == 0 {
		t.Error("expected key hints while asking")
	}
}

type fixedStore struct{ root *knowledge.Node }

func (f *fixedStore) Load(context.Context) (*knowledge.Node, error) { return f.root.Clone(), nil }
func (f *fixedStore) Save(context.Context, *knowledge.Node) error   { return nil }
