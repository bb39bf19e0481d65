package store

import (
	"context"
	"time"

	"github.com/abhisek/adivina/internal/knowledge"
)

// Session outcomes recorded in the history.
const (
	OutcomeGuessed   = "guessed"   // The guess was confirmed
	OutcomeLearned   = "learned"   // A new subject was added
	OutcomeAbandoned = "abandoned" // The player left mid-session
	OutcomeFailed    = "failed"    // The session hit a malformed tree
)

// SessionRecord captures one finished play session.
type SessionRecord struct {
	ID        string
	Sequence  int64
	StartedAt time.Time
	EndedAt   time.Time
	Outcome   string
	Steps     int    // Questions answered
	Guess     string // Last guess proposed, if any
	Subject   string // Learned subject
	Question  string // Learned distinguishing question
	Discarded string // Wrong guess dropped by learning
	Path      string // Tree position that was replaced
}

// Duration returns how long the session lasted.
func (r SessionRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Summary aggregates the play history.
type Summary struct {
	Total      int
	Guessed    int
	Learned    int
	Abandoned  int
	Failed     int
	AvgSteps   float64
	LastPlayed time.Time // Zero if nothing was played
}

// GuessRate returns the share of completed sessions won by a confirmed guess.
func (s Summary) GuessRate() float64 {
	completed := s.Guessed + s.Learned
	if completed == 0 {
		return 0
	}
	return float64(s.Guessed) / float64(completed)
}

// SessionRepo stores play session records.
type SessionRepo interface {
	// Record appends a finished session. Sequence is assigned by the repo.
	Record(ctx context.Context, rec *SessionRecord) error

	// Recent returns up to limit sessions, newest first.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)

	// Summary aggregates all recorded sessions.
	Summary(ctx context.Context) (Summary, error)
}

// Snapshot is a copy of the knowledge tree taken after it changed.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Tree      *knowledge.Node
}

// SnapshotRepo manages knowledge tree snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. Sequence is assigned by the repo.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Count returns the number of stored snapshots.
	Count(ctx context.Context) (int, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
