package game

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adivina/internal/engine"
	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/router"
	"github.com/abhisek/adivina/internal/screen"
	sess "github.com/abhisek/adivina/internal/session"
	"github.com/abhisek/adivina/internal/store"
	"github.com/abhisek/adivina/internal/ui/components"
	"github.com/abhisek/adivina/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseGuess
	phaseLearnName
	phaseLearnQuestion
	phaseLearnAnswer
	phaseSaving
	phaseEnded
)

// maxInput bounds subject names and questions typed in the TUI.
const maxInput = 120

// GameScreen plays one game of twenty questions.
type GameScreen struct {
	svc  *sess.Service
	play *sess.Play

	phase       phase
	quitConfirm bool
	abandoned   bool

	question   string // current question text
	guess      string // current guess
	wrongGuess string // rejected guess being replaced, if any
	choice     components.YesNo
	nameInput  components.TextInput
	qInput     components.TextInput
	name       string // subject being taught
	newQ       string // distinguishing question being taught

	end    engine.Event
	record *store.SessionRecord
	errMsg string
}

var (
	_ screen.Screen          = (*GameScreen)(nil)
	_ screen.KeyHintProvider = (*GameScreen)(nil)
	_ screen.EscapeCapturer  = (*GameScreen)(nil)
	_ screen.Closer          = (*GameScreen)(nil)
	_ engine.Handler         = (*GameScreen)(nil)
)

// New creates a GameScreen playing on svc's tree.
func New(svc *sess.Service) *GameScreen {
	return &GameScreen{svc: svc}
}

func (s *GameScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		p, err := svc.NewPlay()
		if err != nil {
			return playStartedMsg{Err: err}
		}
		ev, err := p.Engine.Start()
		return playStartedMsg{Play: p, Event: ev, Err: err}
	}
}

func (s *GameScreen) Title() string {
	return "Partida"
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "S", Description: "Abandonar"},
			{Key: "N", Description: "Seguir jugando"},
		}
	}
	switch s.phase {
	case phaseQuestion, phaseGuess, phaseLearnAnswer:
		return []layout.KeyHint{
			{Key: "S/N", Description: "Responder"},
			{Key: "←→", Description: "Elegir"},
			{Key: "Enter", Description: "Confirmar"},
			{Key: "Esc", Description: "Salir"},
		}
	case phaseLearnName, phaseLearnQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Aceptar"},
			{Key: "Esc", Description: "Salir"},
		}
	case phaseEnded:
		return []layout.KeyHint{
			{Key: "S", Description: "Otra partida"},
			{Key: "N", Description: "Menú"},
		}
	}
	return nil
}

// CapturesEscape keeps the app from popping the screen while a play is
// running; Esc asks for confirmation instead.
func (s *GameScreen) CapturesEscape() bool {
	return s.running()
}

// running reports whether the play still waits for the player.
func (s *GameScreen) running() bool {
	return s.play != nil && s.phase < phaseSaving && !s.abandoned
}

// Close records a running play as abandoned. It runs when the screen
// leaves the stack and on Ctrl+C, so it must be safe to call twice.
func (s *GameScreen) Close() {
	if s.running() {
		s.abandoned = true
		_ = s.svc.Abandon(context.Background(), s.play)
	}
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case playStartedMsg:
		if msg.Play == nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.play = msg.Play
		return s, s.apply(msg.Event, msg.Err)

	case playFinishedMsg:
		s.phase = phaseEnded
		s.record = msg.Record
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case playAbandonedMsg:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward cursor blinks and the like to the focused input.
	return s, s.updateInput(msg)
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error without a play, any key goes back.
	if s.play == nil {
		if s.errMsg != "" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "s", "S", "y", "Y":
			s.quitConfirm = false
			return s, s.abandon()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" && s.CapturesEscape() {
		s.quitConfirm = true
		return s, nil
	}

	switch s.phase {
	case phaseQuestion:
		if s.choice = s.choice.Update(msg); s.choice.Answered() {
			return s, s.apply(s.play.Engine.Answer(s.choice.Chosen))
		}

	case phaseGuess:
		if s.choice = s.choice.Update(msg); s.choice.Answered() {
			return s, s.apply(s.play.Engine.Confirm(s.choice.Chosen))
		}

	case phaseLearnName:
		if key != "enter" {
			break
		}
		if s.nameInput.Value() == "" {
			s.nameInput.Reject("El nombre no puede estar vacío")
			return s, nil
		}
		s.name = s.nameInput.Value()
		s.phase = phaseLearnQuestion
		s.qInput = components.NewTextInput(
			"Escribe una pregunta que distinga a "+s.name+" de otros:",
			"¿Ha ganado un campeonato?", maxInput)
		return s, s.qInput.Init()

	case phaseLearnQuestion:
		if key != "enter" {
			break
		}
		if s.qInput.Value() == "" {
			s.qInput.Reject("La pregunta no puede estar vacía")
			return s, nil
		}
		s.newQ = s.qInput.Value()
		s.phase = phaseLearnAnswer
		s.choice = components.NewYesNo()
		return s, nil

	case phaseLearnAnswer:
		if s.choice = s.choice.Update(msg); s.choice.Answered() {
			return s, s.apply(s.play.Engine.Learn(s.name, s.newQ, s.choice.Chosen))
		}

	case phaseEnded:
		switch key {
		case "s", "S", "y", "Y", "enter":
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: New(s.svc)} }
		case "n", "N", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	return s, s.updateInput(msg)
}

func (s *GameScreen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.phase {
	case phaseLearnName:
		s.nameInput, cmd = s.nameInput.Update(msg)
	case phaseLearnQuestion:
		s.qInput, cmd = s.qInput.Update(msg)
	}
	return cmd
}

// apply feeds the outcome of an engine call back into the screen.
func (s *GameScreen) apply(ev engine.Event, err error) tea.Cmd {
	if err != nil {
		var ie *engine.InputError
		if !errors.As(err, &ie) {
			s.errMsg = err.Error()
			s.phase = phaseEnded
			return s.fail(err)
		}
		s.rejected(ie)
		return nil
	}

	engine.Dispatch(ev, s)
	if s.phase == phaseSaving {
		return s.finish()
	}
	return nil
}

// rejected moves back to the learn field the engine refused.
func (s *GameScreen) rejected(ie *engine.InputError) {
	if ie.Field == "question" {
		s.phase = phaseLearnQuestion
		s.qInput.Reject("La pregunta no puede estar vacía")
		return
	}
	s.phase = phaseLearnName
	s.nameInput.Reject("El nombre no puede estar vacío")
}

func (s *GameScreen) OnQuestion(text string) {
	s.phase = phaseQuestion
	s.question = text
	s.choice = components.NewYesNo()
}

func (s *GameScreen) OnGuess(name string) {
	s.phase = phaseGuess
	s.guess = name
	s.choice = components.NewYesNo()
}

func (s *GameScreen) OnLearnRequest(wrongGuess, _ string) {
	s.phase = phaseLearnName
	s.wrongGuess = wrongGuess
	s.nameInput = components.NewTextInput("¿Quién era tu personaje?", "Nombre y apellido", maxInput)
}

func (s *GameScreen) OnSessionEnd(_ *knowledge.Node, ev engine.Event) {
	s.phase = phaseSaving
	s.end = ev
}

func (s *GameScreen) finish() tea.Cmd {
	svc, p, ev := s.svc, s.play, s.end
	return func() tea.Msg {
		rec, err := svc.Finish(context.Background(), p, ev)
		return playFinishedMsg{Record: rec, Err: err}
	}
}

func (s *GameScreen) abandon() tea.Cmd {
	s.abandoned = true
	svc, p := s.svc, s.play
	return func() tea.Msg {
		return playAbandonedMsg{Err: svc.Abandon(context.Background(), p)}
	}
}

func (s *GameScreen) fail(cause error) tea.Cmd {
	svc, p := s.svc, s.play
	return func() tea.Msg {
		_ = svc.Fail(context.Background(), p, cause)
		return nil
	}
}
