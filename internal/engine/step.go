package engine

import (
	"fmt"
	"strings"

	"github.com/abhisek/adivina/internal/knowledge"
)

// Begin returns the initial snapshot of a session over root. Nothing is
// emitted until an InputStart is stepped.
func Begin(root *knowledge.Node) Snapshot {
	return Snapshot{
		State:  StateAsking,
		Root:   root,
		Cursor: Cursor{Current: root},
	}
}

// Step is the session transition function. It never modifies s or the tree
// it references; learning produces a new root in the returned snapshot.
//
// On a rejected learn input the returned snapshot is s, the event is a
// repeated EventLearnRequest carrying the reason, and the error is an
// *InputError. On any other error the event is zero.
func Step(s Snapshot, in Input) (Snapshot, Event, error) {
	if s.State == StateDone {
		return s, Event{}, ErrSessionDone
	}
	if !s.Started && in.Kind != InputStart {
		return s, Event{}, fmt.Errorf("%w: %s before start", ErrUnexpectedInput, in.Kind)
	}

	switch in.Kind {
	case InputStart:
		if s.Started {
			return s, Event{}, fmt.Errorf("%w: session already started", ErrUnexpectedInput)
		}
		s.Started = true
		return arrive(s)

	case InputAnswer:
		if s.State != StateAsking {
			return s, Event{}, unexpected(in, s.State)
		}
		s.Cursor = s.Cursor.descend(branchOf(in.Yes))
		s.Steps++
		return arrive(s)

	case InputConfirm:
		if s.State != StateConfirmingGuess {
			return s, Event{}, unexpected(in, s.State)
		}
		if in.Yes {
			s.State = StateDone
			return s, Event{Kind: EventSessionEnd, Outcome: OutcomeGuessed, Steps: s.Steps}, nil
		}
		s.State = StateLearning
		return s, Event{Kind: EventLearnRequest, Name: s.Guess, Steps: s.Steps}, nil

	case InputLearn:
		if s.State != StateLearning {
			return s, Event{}, unexpected(in, s.State)
		}
		return learn(s, in)
	}

	return s, Event{}, fmt.Errorf("%w: unknown input kind %d", ErrUnexpectedInput, in.Kind)
}

func unexpected(in Input, st State) error {
	return fmt.Errorf("%w: %s while %s", ErrUnexpectedInput, in.Kind, st)
}

// arrive emits the event for the node under the cursor.
func arrive(s Snapshot) (Snapshot, Event, error) {
	cur := s.Cursor.Current
	switch cur.Kind() {
	case knowledge.KindInterior:
		s.State = StateAsking
		return s, Event{Kind: EventQuestion, Text: cur.Question, Steps: s.Steps}, nil

	case knowledge.KindLeaf:
		s.State = StateConfirmingGuess
		s.Guess = cur.Name
		return s, Event{Kind: EventGuess, Name: cur.Name, Steps: s.Steps}, nil

	case knowledge.KindEmpty:
		// An unexplored branch is handled exactly like a failed guess.
		s.State = StateLearning
		return s, Event{Kind: EventLearnRequest, Steps: s.Steps}, nil
	}

	s.State = StateDone
	return s, Event{}, cur.Check(s.Cursor.Path())
}

// learn replaces the node under the cursor with a new question whose
// answer side holds the new subject. A wrong guess at the cursor is
// dropped, not kept as the other branch.
func learn(s Snapshot, in Input) (Snapshot, Event, error) {
	name := strings.TrimSpace(in.Name)
	question := strings.TrimSpace(in.Question)

	if name == "" {
		return s, rerequest(s, "the subject name must not be empty"),
			&InputError{Field: "name", Reason: "must not be empty"}
	}
	if question == "" {
		return s, rerequest(s, "the distinguishing question must not be empty"),
			&InputError{Field: "question", Reason: "must not be empty"}
	}

	node := knowledge.NewInterior(question, knowledge.Empty(), knowledge.Empty())
	node.SetChild(in.Yes, knowledge.NewLeaf(name))

	patch := &Patch{
		Path:     s.Cursor.Path(),
		Replaced: s.Cursor.Current.Kind(),
		Subject:  name,
		Question: question,
	}
	if s.Cursor.Current.IsLeaf() {
		patch.Discarded = s.Cursor.Current.Name
	}

	var (
		root   *knowledge.Node
		parent *knowledge.Node
		trail  = s.Cursor.Trail
	)
	if len(trail) == 0 {
		// Degenerate tree: the cursor never left the root.
		root = node
	} else {
		root = s.Root.Clone()
		parent = walk(root, trail[:len(trail)-1])
		parent.SetChild(trail[len(trail)-1] == BranchYes, node)
	}

	s.State = StateDone
	s.Root = root
	s.Cursor = Cursor{
		Current: node,
		Parent:  parent,
		Branch:  s.Cursor.Branch,
		Trail:   trail,
	}

	return s, Event{
		Kind:    EventSessionEnd,
		Root:    root,
		Patch:   patch,
		Outcome: OutcomeLearned,
		Steps:   s.Steps,
	}, nil
}

func rerequest(s Snapshot, reason string) Event {
	return Event{Kind: EventLearnRequest, Name: s.Guess, Reason: reason, Steps: s.Steps}
}

// walk follows trail from root.
func walk(root *knowledge.Node, trail []Branch) *knowledge.Node {
	n := root
	for _, br := range trail {
		n = n.Child(br == BranchYes)
	}
	return n
}
