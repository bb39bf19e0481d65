package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/adivina/internal/engine"
	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/store"
)

// Options configures a Service.
type Options struct {
	// Knowledge persists the decision tree. Required.
	Knowledge knowledge.Store

	// Sessions records play history (nil disables history).
	Sessions store.SessionRepo

	// Snapshots stores a copy of the tree after every change (nil disables).
	Snapshots store.SnapshotRepo

	// SnapshotKeep bounds the stored snapshots. Default: 20.
	SnapshotKeep int

	Logger *zap.SugaredLogger

	// Now overrides the clock in tests.
	Now func() time.Time
}

// Service owns the canonical tree for the lifetime of the program and
// turns finished plays into persistence: saving the tree, recording
// history, snapshotting.
type Service struct {
	knowledge knowledge.Store
	sessions  store.SessionRepo
	snapshots store.SnapshotRepo
	keep      int
	log       *zap.SugaredLogger
	now       func() time.Time

	mu   sync.Mutex
	root *knowledge.Node
}

// NewService creates a Service. Call Load before starting a play.
func NewService(opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SnapshotKeep <= 0 {
		opts.SnapshotKeep = 20
	}
	return &Service{
		knowledge: opts.Knowledge,
		sessions:  opts.Sessions,
		snapshots: opts.Snapshots,
		keep:      opts.SnapshotKeep,
		log:       opts.Logger,
		now:       opts.Now,
	}
}

// Load reads the knowledge base. A corrupt knowledge base is returned as
// is; it is never replaced by the seed tree.
func (s *Service) Load(ctx context.Context) error {
	root, err := s.knowledge.Load(ctx)
	if err != nil {
		return fmt.Errorf("load knowledge: %w", err)
	}
	s.setRoot(root)
	return nil
}

// Root returns a copy of the canonical tree.
func (s *Service) Root() *knowledge.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root.Clone()
}

func (s *Service) setRoot(root *knowledge.Node) {
	s.mu.Lock()
	s.root = root
	s.mu.Unlock()
}

// Play is one game in progress.
type Play struct {
	Engine    *engine.Engine
	StartedAt time.Time
	ended     bool
}

// Ended reports whether the play was finished, abandoned or failed.
func (p *Play) Ended() bool { return p.ended }

// NewPlay starts a game on the current tree. The returned play has not
// emitted anything yet; call Engine.Start.
func (s *Service) NewPlay() (*Play, error) {
	root := s.Root()
	if root == nil {
		return nil, errors.New("knowledge base not loaded")
	}
	p := &Play{
		Engine:    engine.New(root),
		StartedAt: s.now(),
	}
	s.log.Debugw("play started", "session", p.Engine.ID())
	return p, nil
}

// Finish handles the EventSessionEnd of a play: a learned tree is saved
// and snapshotted, and the session is recorded. A save failure is
// returned and the session is recorded as failed; the tree in memory is
// only replaced when the save succeeds.
func (s *Service) Finish(ctx context.Context, p *Play, ev engine.Event) (*store.SessionRecord, error) {
	if p.ended {
		return nil, fmt.Errorf("session %s already ended", p.Engine.ID())
	}
	if ev.Kind != engine.EventSessionEnd {
		return nil, fmt.Errorf("finish with %s event: %w", ev.Kind, engine.ErrUnexpectedInput)
	}
	p.ended = true

	rec := s.record(p, outcomeOf(ev.Outcome))
	var errs []error

	if ev.Root != nil {
		if err := s.knowledge.Save(ctx, ev.Root); err != nil {
			rec.Outcome = store.OutcomeFailed
			errs = append(errs, fmt.Errorf("save knowledge: %w", err))
			s.log.Errorw("knowledge not saved", "session", rec.ID, "error", err)
		} else {
			s.setRoot(ev.Root.Clone())
			errs = append(errs, s.snapshot(ctx, p, ev.Root))
		}
	}
	if ev.Patch != nil {
		rec.Subject = ev.Patch.Subject
		rec.Question = ev.Patch.Question
		rec.Discarded = ev.Patch.Discarded
		rec.Path = ev.Patch.Path
		if ev.Patch.Discarded != "" {
			s.log.Infow("wrong guess replaced",
				"session", rec.ID,
				"discarded", ev.Patch.Discarded,
				"subject", ev.Patch.Subject,
			)
		}
	}

	errs = append(errs, s.save(ctx, rec))
	s.log.Infow("play finished",
		"session", rec.ID,
		"outcome", rec.Outcome,
		"steps", rec.Steps,
		"path", rec.Path,
	)
	return rec, errors.Join(errs...)
}

// Abandon records a play the player left before it ended. Plays that
// were already ended are ignored.
func (s *Service) Abandon(ctx context.Context, p *Play) error {
	if p == nil || p.ended {
		return nil
	}
	p.ended = true
	rec := s.record(p, store.OutcomeAbandoned)
	s.log.Infow("play abandoned", "session", rec.ID, "steps", rec.Steps, "state", p.Engine.State())
	return s.save(ctx, rec)
}

// Fail records a play that stopped on an error, such as a malformed node.
func (s *Service) Fail(ctx context.Context, p *Play, cause error) error {
	if p == nil || p.ended {
		return nil
	}
	p.ended = true
	rec := s.record(p, store.OutcomeFailed)
	var mte *knowledge.MalformedTreeError
	if errors.As(cause, &mte) {
		rec.Path = mte.Path
	}
	s.log.Errorw("play failed", "session", rec.ID, "error", cause)
	return s.save(ctx, rec)
}

// Restore replaces the knowledge base with the latest snapshot.
func (s *Service) Restore(ctx context.Context) (*store.Snapshot, error) {
	if s.snapshots == nil {
		return nil, errors.New("snapshots are disabled")
	}
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}
	if snap == nil {
		return nil, errors.New("no snapshot to restore")
	}
	if err := s.knowledge.Save(ctx, snap.Tree); err != nil {
		return nil, fmt.Errorf("save knowledge: %w", err)
	}
	s.setRoot(snap.Tree.Clone())
	s.log.Infow("knowledge restored", "snapshot", snap.ID, "sequence", snap.Sequence)
	return snap, nil
}

func (s *Service) record(p *Play, outcome string) *store.SessionRecord {
	snap := p.Engine.Snapshot()
	return &store.SessionRecord{
		ID:        p.Engine.ID(),
		StartedAt: p.StartedAt,
		EndedAt:   s.now(),
		Outcome:   outcome,
		Steps:     snap.Steps,
		Guess:     snap.Guess,
	}
}

func (s *Service) save(ctx context.Context, rec *store.SessionRecord) error {
	if s.sessions == nil {
		return nil
	}
	if err := s.sessions.Record(ctx, rec); err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

func (s *Service) snapshot(ctx context.Context, p *Play, root *knowledge.Node) error {
	if s.snapshots == nil {
		return nil
	}
	err := s.snapshots.Save(ctx, &store.Snapshot{
		Timestamp: s.now(),
		SessionID: p.Engine.ID(),
		Tree:      root,
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := s.snapshots.Prune(ctx, s.keep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func outcomeOf(o engine.Outcome) string {
	switch o {
	case engine.OutcomeGuessed:
		return store.OutcomeGuessed
	case engine.OutcomeLearned:
		return store.OutcomeLearned
	default:
		return store.OutcomeFailed
	}
}
