package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// sessionRepo implements SessionRepo with raw SQL.
type sessionRepo struct {
	db  *sql.DB
	seq *sequence
}

func (r *sessionRepo) Record(ctx context.Context, rec *SessionRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO sessions
		(id, sequence, started_at, ended_at, outcome, steps, guess, subject, question, discarded, path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, seqNum,
		rec.StartedAt.UnixNano(), rec.EndedAt.UnixNano(),
		rec.Outcome, rec.Steps,
		rec.Guess, rec.Subject, rec.Question, rec.Discarded, rec.Path,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	rec.Sequence = seqNum
	return nil
}

func (r *sessionRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := r.db.QueryContext(ctx, `SELECT
		id, sequence, started_at, ended_at, outcome, steps, guess, subject, question, discarded, path
		FROM sessions ORDER BY sequence DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec            SessionRecord
			started, ended int64
		)
		if err := rows.Scan(
			&rec.ID, &rec.Sequence, &started, &ended, &rec.Outcome, &rec.Steps,
			&rec.Guess, &rec.Subject, &rec.Question, &rec.Discarded, &rec.Path,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.StartedAt = time.Unix(0, started).UTC()
		rec.EndedAt = time.Unix(0, ended).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (r *sessionRepo) Summary(ctx context.Context) (Summary, error) {
	var (
		s        Summary
		lastNano int64
	)
	err := r.db.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		COALESCE(AVG(steps), 0),
		COALESCE(MAX(ended_at), 0)
		FROM sessions`,
		OutcomeGuessed, OutcomeLearned, OutcomeAbandoned, OutcomeFailed,
	).Scan(&s.Total, &s.Guessed, &s.Learned, &s.Abandoned, &s.Failed, &s.AvgSteps, &lastNano)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize sessions: %w", err)
	}
	if lastNano != 0 {
		s.LastPlayed = time.Unix(0, lastNano).UTC()
	}
	return s, nil
}
