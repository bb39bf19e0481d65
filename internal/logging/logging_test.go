package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	log, err := New("", true)
	require.NoError(t, err)
	log.Infow("dropped")
}

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "adivina.log")

	log, err := New(path, false)
	require.NoError(t, err)
	log.Debugw("hidden at info level")
	log.Infow("session ended", "outcome", "learned", "steps", 3)
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "session ended", entry["msg"])
	assert.Equal(t, "learned", entry["outcome"])
	assert.Equal(t, float64(3), entry["steps"])
}

func TestNewDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adivina.log")

	log, err := New(path, true)
	require.NoError(t, err)
	log.Debugw("visible")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}
