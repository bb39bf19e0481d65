package game

import (
	"github.com/abhisek/adivina/internal/engine"
	sess "github.com/abhisek/adivina/internal/session"
	"github.com/abhisek/adivina/internal/store"
)

// playStartedMsg is sent once the play exists and the engine emitted its
// first event.
type playStartedMsg struct {
	Play  *sess.Play
	Event engine.Event
	Err   error
}

// playFinishedMsg is sent after a finished play was persisted.
type playFinishedMsg struct {
	Record *store.SessionRecord
	Err    error
}

// playAbandonedMsg is sent after an abandoned or failed play was recorded.
type playAbandonedMsg struct {
	Err error
}
