package knowledge

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store loads and saves the decision tree.
type Store interface {
	// Load returns the persisted tree, or the seed tree on first run.
	Load(ctx context.Context) (*Node, error)

	// Save overwrites the persisted tree with root.
	Save(ctx context.Context, root *Node) error
}

// FileStore persists the tree as a JSON file. It keeps no tree in
// memory; every Load reads the file.
//
// Save is not atomic: a crash mid-write can leave a truncated file, which
// the next Load reports as a *CorruptStateError.
type FileStore struct {
	path string
	log  *zap.SugaredLogger
}

var _ Store = (*FileStore)(nil)

// Option configures a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger used by the store.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *FileStore) {
		s.log = log
	}
}

// NewFileStore creates a store backed by the file at path. The file does
// not need to exist.
func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{
		path: path,
		log:  zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the tree from disk. A missing file yields a fresh seed tree.
func (s *FileStore) Load(ctx context.Context) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Infow("knowledge base not found, starting from seed", "path", s.path)
		return Seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	root, err := Unmarshal(data)
	if err != nil {
		var cse *CorruptStateError
		if errors.As(err, &cse) {
			cse.Path = s.path
		}
		s.log.Errorw("knowledge base is corrupt", "path", s.path, "error", err)
		return nil, err
	}

	st := root.Stats()
	s.log.Infow("knowledge base loaded",
		"path", s.path,
		"questions", st.Questions,
		"subjects", st.Subjects,
	)
	return root, nil
}

// Save serializes root and overwrites the backing file.
func (s *FileStore) Save(ctx context.Context, root *Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Marshal(root)
	if err != nil {
		return fmt.Errorf("marshal knowledge base: %w", err)
	}
	if err := ensureDir(s.path); err != nil {
		return fmt.Errorf("create knowledge dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write knowledge base: %w", err)
	}

	s.log.Debugw("knowledge base saved", "path", s.path, "bytes", len(data))
	return nil
}

// Reset deletes the backing file. The next Load returns the seed tree.
func (s *FileStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove knowledge base: %w", err)
	}
	s.log.Infow("knowledge base reset", "path", s.path)
	return nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
