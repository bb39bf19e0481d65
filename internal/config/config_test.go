package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	for _, k := range []string{"KNOWLEDGE", "DB", "LOG_FILE", "DEBUG", "SNAPSHOT_KEEP"} {
		t.Setenv(EnvPrefix+"_"+k, "")
	}
	return root
}

func TestLoadDefaults(t *testing.T) {
	root := isolate(t)

	cfg, err := Load(New())
	require.NoError(t, err)

	dataDir := filepath.Join(root, "data", "adivina")
	assert.Equal(t, filepath.Join(dataDir, "knowledge.json"), cfg.KnowledgePath)
	assert.Equal(t, filepath.Join(dataDir, "adivina.db"), cfg.DBPath)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultSnapshotKeep, cfg.SnapshotKeep)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadFromEnv(t *testing.T) {
	root := isolate(t)
	t.Setenv("ADIVINA_KNOWLEDGE", "/tmp/k.json")
	t.Setenv("ADIVINA_DEBUG", "true")
	t.Setenv("ADIVINA_SNAPSHOT_KEEP", "3")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/k.json", cfg.KnowledgePath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, filepath.Join(root, "data", "adivina", "adivina.log"), cfg.LogFile)
	assert.Equal(t, 3, cfg.SnapshotKeep)
}

func TestLoadFromConfigFile(t *testing.T) {
	root := isolate(t)
	dir := filepath.Join(root, "config", "adivina")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("knowledge: /srv/adivina/knowledge.json\nsnapshot-keep: 5\n"), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "/srv/adivina/knowledge.json", cfg.KnowledgePath)
	assert.Equal(t, 5, cfg.SnapshotKeep)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigFile)
}

func TestOverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("ADIVINA_DB", "/from/env.db")

	v := New()
	v.Set(KeyDB, "/from/flag.db")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.db", cfg.DBPath)
}

func TestInvalidSnapshotKeep(t *testing.T) {
	isolate(t)
	t.Setenv("ADIVINA_SNAPSHOT_KEEP", "0")

	_, err := Load(New())
	assert.ErrorContains(t, err, KeySnapshotKeep)
}
