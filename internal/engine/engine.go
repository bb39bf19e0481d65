package engine

import (
	"github.com/google/uuid"

	"github.com/abhisek/adivina/internal/knowledge"
)

// Engine runs one play session. It works on its own copy of the tree and
// reports a replacement root when it learns something. An Engine must not
// be reused once it reaches StateDone.
type Engine struct {
	id   string
	snap Snapshot
}

// New creates a session over a copy of root.
func New(root *knowledge.Node) *Engine {
	return &Engine{
		id:   uuid.New().String(),
		snap: Begin(root.Clone()),
	}
}

// ID returns the session identifier.
func (e *Engine) ID() string { return e.id }

// State returns the current session state.
func (e *Engine) State() State { return e.snap.State }

// Cursor returns the traversal position.
func (e *Engine) Cursor() Cursor { return e.snap.Cursor }

// Steps returns the number of answers given so far.
func (e *Engine) Steps() int { return e.snap.Steps }

// Snapshot returns the complete session state.
func (e *Engine) Snapshot() Snapshot { return e.snap }

// Start emits the first event, normally the root question.
func (e *Engine) Start() (Event, error) {
	return e.step(Input{Kind: InputStart})
}

// Answer feeds a yes/no answer to the current question.
func (e *Engine) Answer(yes bool) (Event, error) {
	return e.step(Input{Kind: InputAnswer, Yes: yes})
}

// Confirm tells the engine whether its guess was right.
func (e *Engine) Confirm(correct bool) (Event, error) {
	return e.step(Input{Kind: InputConfirm, Yes: correct})
}

// Learn teaches the engine a new subject. answerIsYes is the subject's
// answer to question.
func (e *Engine) Learn(name, question string, answerIsYes bool) (Event, error) {
	return e.step(Input{Kind: InputLearn, Name: name, Question: question, Yes: answerIsYes})
}

func (e *Engine) step(in Input) (Event, error) {
	next, ev, err := Step(e.snap, in)
	e.snap = next
	return ev, err
}

// Handler receives engine events. It mirrors the callbacks a shell
// implements: each method tells the shell which call the engine expects
// next.
type Handler interface {
	// OnQuestion asks for Answer.
	OnQuestion(text string)

	// OnGuess asks for Confirm.
	OnGuess(name string)

	// OnLearnRequest asks for Learn. wrongGuess is set after a rejected
	// guess, reason after rejected input.
	OnLearnRequest(wrongGuess, reason string)

	// OnSessionEnd reports the end of the session. root is nil when the
	// tree did not change; otherwise the shell must save it.
	OnSessionEnd(root *knowledge.Node, ev Event)
}

// Dispatch routes ev to the matching Handler method.
func Dispatch(ev Event, h Handler) {
	switch ev.Kind {
	case EventQuestion:
		h.OnQuestion(ev.Text)
	case EventGuess:
		h.OnGuess(ev.Name)
	case EventLearnRequest:
		h.OnLearnRequest(ev.Name, ev.Reason)
	case EventSessionEnd:
		h.OnSessionEnd(ev.Root, ev)
	}
}
