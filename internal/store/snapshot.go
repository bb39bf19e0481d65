package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/adivina/internal/knowledge"
)

// snapshotRepo implements SnapshotRepo with raw SQL. Trees are stored in
// the same JSON encoding as the knowledge file.
type snapshotRepo struct {
	db  *sql.DB
	seq *sequence
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := knowledge.Marshal(snap.Tree)
	if err != nil {
		return fmt.Errorf("marshal snapshot tree: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshots (sequence, timestamp, session_id, tree) VALUES (?, ?, ?, ?)`,
		seqNum, snap.Timestamp.UnixNano(), snap.SessionID, data,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("snapshot id: %w", err)
	}

	snap.ID = int(id)
	snap.Sequence = seqNum
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	var (
		snap Snapshot
		ts   int64
		data []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, sequence, timestamp, session_id, tree FROM snapshots ORDER BY sequence DESC LIMIT 1`,
	).Scan(&snap.ID, &snap.Sequence, &ts, &snap.SessionID, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	tree, err := knowledge.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", snap.ID, err)
	}
	snap.Tree = tree
	snap.Timestamp = time.Unix(0, ts).UTC()
	return &snap, nil
}

func (r *snapshotRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count snapshots: %w", err)
	}
	return n, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the sequence threshold: the Nth most recent snapshot.
	var threshold int64
	err := r.db.QueryRowContext(ctx,
		`SELECT sequence FROM snapshots ORDER BY sequence DESC LIMIT 1 OFFSET ?`, keep,
	).Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep snapshots exist
	}
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE sequence <= ?`, threshold); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
