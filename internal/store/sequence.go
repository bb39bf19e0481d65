package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequence hands out the ordering number shared by play records and tree
// snapshots, so a snapshot can be placed before or after any play.
// The row lives in global_sequence, created by migrate.
type sequence struct {
	mu sync.Mutex
	db *sql.DB
}

// Next returns the current value and advances the counter.
func (s *sequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}

// restart rewinds the counter to 1 as part of tx.
func (s *sequence) restart(ctx context.Context, tx *sql.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := tx.ExecContext(ctx, `UPDATE global_sequence SET next_val = 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("restart sequence: %w", err)
	}
	return nil
}
