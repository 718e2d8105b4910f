package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName         = "govjobs"
	ConfigFileName  = "config.json"
	DatasetFileName = "jobs.json"
	StoreFileName   = "store.json"
)

// Config holds data locations and refresh settings.
// Empty paths resolve relative to the config dir; an empty api_url means the
// public endpoint.
type Config struct {
	DatasetPath    string `json:"dataset_path"`
	StoreURL       string `json:"store_url"`
	APIURL         string `json:"api_url"`
	Proxy          string `json:"proxy"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	CacheTTLHours  int    `json:"cache_ttl_hours"`
	ExportDir      string `json:"export_dir"`
}

func DefaultConfig() Config {
	return Config{
		DatasetPath:    envString("GOVJOBS_DATASET", ""),
		StoreURL:       envString("GOVJOBS_STORE_URL", ""),
		APIURL:         envString("GOVJOBS_API_URL", ""),
		Proxy:          envString("GOVJOBS_PROXY", ""),
		TimeoutSeconds: envInt("GOVJOBS_TIMEOUT", 30),
		CacheTTLHours:  envInt("GOVJOBS_CACHE_TTL_HOURS", 24),
		ExportDir:      envString("GOVJOBS_EXPORT_DIR", ""),
	}
}

func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("GOVJOBS_CONFIG_DIR")); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// DatasetFile is the local dataset path, defaulting to jobs.json in dir.
func (c Config) DatasetFile(dir string) string {
	if path := strings.TrimSpace(c.DatasetPath); path != "" {
		return path
	}
	return filepath.Join(dir, DatasetFileName)
}

// StoreLocation is either a redis URL or a file path, defaulting to
// store.json in dir.
func (c Config) StoreLocation(dir string) string {
	if loc := strings.TrimSpace(c.StoreURL); loc != "" {
		return loc
	}
	return filepath.Join(dir, StoreFileName)
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.CacheTTLHours) * time.Hour
}

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads a json5 config over the defaults. A missing or empty file
// yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// InitDir writes a default config.json into dir if it doesn't already exist.
func InitDir(dir string) ([]string, error) {
	var created []string
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
