package engine

import (
	"strings"

	"github.com/abhisek/adivina/internal/knowledge"
)

// State is the phase of a play session.
type State int

const (
	StateAsking          State = iota // Waiting for a yes/no answer
	StateConfirmingGuess              // Waiting for the player to confirm a guess
	StateLearning                     // Waiting for a new subject and question
	StateDone                         // Terminal
)

func (s State) String() string {
	switch s {
	case StateAsking:
		return "asking"
	case StateConfirmingGuess:
		return "confirming_guess"
	case StateLearning:
		return "learning"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Branch is the edge taken from a parent to its child.
type Branch int

const (
	BranchNone Branch = iota
	BranchYes
	BranchNo
)

func (b Branch) String() string {
	switch b {
	case BranchYes:
		return "yes"
	case BranchNo:
		return "no"
	default:
		return "none"
	}
}

// branchOf maps an answer to the branch it selects.
func branchOf(yes bool) Branch {
	if yes {
		return BranchYes
	}
	return BranchNo
}

// Cursor is the traversal position. Trail records every branch taken from
// the root, so the edge from Parent to Current can be located in a copy of
// the tree.
type Cursor struct {
	Current *knowledge.Node
	Parent  *knowledge.Node
	Branch  Branch
	Trail   []Branch
}

// Path renders the cursor position, e.g. "root.no.yes".
func (c Cursor) Path() string {
	return trailPath(c.Trail)
}

func trailPath(trail []Branch) string {
	var b strings.Builder
	b.WriteString("root")
	for _, br := range trail {
		b.WriteByte('.')
		b.WriteString(br.String())
	}
	return b.String()
}

// descend returns the cursor one step down the given branch. The receiver
// is not modified.
func (c Cursor) descend(br Branch) Cursor {
	trail := make([]Branch, len(c.Trail), len(c.Trail)+1)
	copy(trail, c.Trail)
	return Cursor{
		Current: c.Current.Child(br == BranchYes),
		Parent:  c.Current,
		Branch:  br,
		Trail:   append(trail, br),
	}
}

// Snapshot is the complete session state between two steps.
type Snapshot struct {
	State   State
	Root    *knowledge.Node
	Cursor  Cursor
	Steps   int  // Answers given so far
	Started bool // The first event has been emitted
	Guess   string
}

// InputKind identifies the command fed into Step.
type InputKind int

const (
	InputStart InputKind = iota
	InputAnswer
	InputConfirm
	InputLearn
)

func (k InputKind) String() string {
	switch k {
	case InputStart:
		return "start"
	case InputAnswer:
		return "answer"
	case InputConfirm:
		return "confirm"
	case InputLearn:
		return "learn"
	default:
		return "unknown"
	}
}

// Input is a command from the shell. Yes carries the answer for
// InputAnswer, the confirmation for InputConfirm, and the new subject's
// answer to Question for InputLearn.
type Input struct {
	Kind     InputKind
	Yes      bool
	Name     string
	Question string
}

// EventKind identifies what the engine needs next.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuestion
	EventGuess
	EventLearnRequest
	EventSessionEnd
)

func (k EventKind) String() string {
	switch k {
	case EventQuestion:
		return "question"
	case EventGuess:
		return "guess"
	case EventLearnRequest:
		return "learn_request"
	case EventSessionEnd:
		return "session_end"
	default:
		return "none"
	}
}

// Outcome describes how a session ended.
type Outcome int

const (
	OutcomeNone    Outcome = iota
	OutcomeGuessed         // The guess was confirmed
	OutcomeLearned         // A new subject was added to the tree
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGuessed:
		return "guessed"
	case OutcomeLearned:
		return "learned"
	default:
		return "none"
	}
}

// Patch describes the single edge replaced by learning.
type Patch struct {
	// Path locates the replaced node, e.g. "root.no".
	Path string

	// Replaced is the kind of node that was overwritten (leaf or empty).
	Replaced knowledge.Kind

	// Discarded is the name of a wrong guess dropped by the replacement.
	Discarded string

	// Subject and Question are what was learned.
	Subject  string
	Question string
}

// Event is emitted after every step.
type Event struct {
	Kind EventKind

	// Text is the question for EventQuestion.
	Text string

	// Name is the proposed subject for EventGuess.
	Name string

	// Reason explains a repeated EventLearnRequest after rejected input.
	Reason string

	// Root is the replacement tree for EventSessionEnd, nil if nothing
	// was learned.
	Root *knowledge.Node

	// Patch describes the mutation, nil if nothing was learned.
	Patch *Patch

	Outcome Outcome
	Steps   int
}
