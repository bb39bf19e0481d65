package session

import (
	"context"
	"fmt"

	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/store"
)

// Overview holds the data displayed by the stats screen and command.
type Overview struct {
	Tree      knowledge.Stats
	History   store.Summary
	Recent    []store.SessionRecord
	Snapshots int
}

// Stats summarises the canonical tree without copying it.
func (s *Service) Stats() knowledge.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root.Stats()
}

// Overview gathers tree and history statistics. History fields stay zero
// when history is disabled.
func (s *Service) Overview(ctx context.Context, recent int) (*Overview, error) {
	ov := &Overview{Tree: s.Stats()}

	if s.sessions != nil {
		sum, err := s.sessions.Summary(ctx)
		if err != nil {
			return nil, fmt.Errorf("summarize history: %w", err)
		}
		ov.History = sum

		if recent > 0 {
			ov.Recent, err = s.sessions.Recent(ctx, recent)
			if err != nil {
				return nil, fmt.Errorf("recent sessions: %w", err)
			}
		}
	}

	if s.snapshots != nil {
		n, err := s.snapshots.Count(ctx)
		if err != nil {
			return nil, err
		}
		ov.Snapshots = n
	}

	return ov, nil
}
