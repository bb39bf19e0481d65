package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. ADIVINA_KNOWLEDGE.
const EnvPrefix = "ADIVINA"

// Keys shared by flags, environment variables and the config file.
const (
	KeyKnowledge    = "knowledge"
	KeyDB           = "db"
	KeyLogFile      = "log-file"
	KeyDebug        = "debug"
	KeySnapshotKeep = "snapshot-keep"
)

// DefaultSnapshotKeep is how many tree snapshots the history keeps.
const DefaultSnapshotKeep = 20

// Config holds the resolved runtime configuration.
type Config struct {
	// KnowledgePath is the JSON knowledge base file.
	KnowledgePath string

	// DBPath is the SQLite play history database.
	DBPath string

	// LogFile receives structured logs. Empty disables logging.
	LogFile string

	Debug bool

	// SnapshotKeep bounds the number of stored tree snapshots.
	SnapshotKeep int

	// ConfigFile is the config file that was read, if any.
	ConfigFile string
}

// New returns a viper instance reading ADIVINA_* environment variables and
// an optional config.yaml in the adivina config directory.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := ConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetDefault(KeySnapshotKeep, DefaultSnapshotKeep)
	return v
}

// Load resolves the configuration. Priority: flags bound to v, then
// environment variables, then the config file, then XDG defaults.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	} else {
		cfg.ConfigFile = v.ConfigFileUsed()
	}

	dataDir, err := DataDir()
	if err != nil {
		return cfg, err
	}

	cfg.KnowledgePath = v.GetString(KeyKnowledge)
	if cfg.KnowledgePath == "" {
		cfg.KnowledgePath = filepath.Join(dataDir, "knowledge.json")
	}
	cfg.DBPath = v.GetString(KeyDB)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dataDir, "adivina.db")
	}
	cfg.LogFile = v.GetString(KeyLogFile)
	cfg.Debug = v.GetBool(KeyDebug)
	if cfg.Debug && cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(dataDir, "adivina.log")
	}
	cfg.SnapshotKeep = v.GetInt(KeySnapshotKeep)
	if cfg.SnapshotKeep < 1 {
		return cfg, fmt.Errorf("%s must be at least 1, got %d", KeySnapshotKeep, cfg.SnapshotKeep)
	}

	return cfg, nil
}

// DataDir resolves the data directory:
// 1. $XDG_DATA_HOME/adivina
// 2. ~/.local/share/adivina
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "adivina"), nil
}

// ConfigDir resolves the config directory:
// 1. $XDG_CONFIG_HOME/adivina
// 2. ~/.config/adivina
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "adivina"), nil
}
