package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/abhisek/adivina/internal/config"
	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/logging"
	"github.com/abhisek/adivina/internal/session"
	"github.com/abhisek/adivina/internal/store"
)

// env is the wiring shared by every command.
type env struct {
	cfg config.Config
	log *zap.SugaredLogger
	kb  *knowledge.FileStore
	db  *store.Store
	svc *session.Service
}

// openEnv resolves the configuration, opens both stores and, when load is
// set, reads the knowledge base.
func openEnv(ctx context.Context, load bool) (*env, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		log = zap.NewNop().Sugar()
	}

	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := store.Open(cfg.DBPath, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	e := &env{
		cfg: cfg,
		log: log,
		kb:  knowledge.NewFileStore(cfg.KnowledgePath, knowledge.WithLogger(log)),
		db:  db,
	}
	e.svc = session.NewService(session.Options{
		Knowledge:    e.kb,
		Sessions:     db.SessionRepo(),
		Snapshots:    db.SnapshotRepo(),
		SnapshotKeep: cfg.SnapshotKeep,
		Logger:       log,
	})

	log.Debugw("configuration resolved",
		"knowledge", cfg.KnowledgePath,
		"db", cfg.DBPath,
		"config_file", cfg.ConfigFile,
	)

	if load {
		if err := e.svc.Load(ctx); err != nil {
			e.Close()
			hintCorrupt(err)
			return nil, err
		}
	}
	return e, nil
}

// Close releases the database and flushes logs.
func (e *env) Close() {
	if err := e.db.Close(); err != nil {
		e.log.Warnw("close store", "error", err)
	}
	_ = e.log.Sync()
}

func hintCorrupt(err error) {
	var cse *knowledge.CorruptStateError
	if !errors.As(err, &cse) {
		return
	}
	fmt.Fprintf(os.Stderr, "La base de conocimiento %s está dañada y no se ha modificado.\n", cse.Path)
	fmt.Fprintln(os.Stderr, "Ejecuta `adivina restore` para recuperar la última copia o `adivina reset` para empezar de cero.")
}
