package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	str2duration "github.com/xhit/go-str2duration/v2"
)

// Config captures the settings gantry needs to reach an OctoPrint
// server.
type Config struct {
	BaseURL      string
	APIKey       string
	PollInterval time.Duration
	LogDir       string
}

const (
	defaultConfigPath   = "~/.config/gantry/config.toml"
	defaultLogDir       = "~/.local/share/gantry/logs"
	defaultBaseURL      = "http://octopi.local"
	defaultPollInterval = 2 * time.Second
)

// Environment variables that override the config file. The API key in
// particular tends to live in the environment rather than on disk.
const (
	envBaseURL = "OCTOPRINT_BASE_URL"
	envAPIKey  = "OCTOPRINT_API_KEY"
)

// Load locates and parses the gantry config, falling back to defaults
// when missing. A .env file in the working directory is honored before
// environment overrides are applied.
func Load(path string) (Config, error) {
	_ = godotenv.Load(".env")

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:      defaultBaseURL,
		PollInterval: defaultPollInterval,
		LogDir:       mustExpand(defaultLogDir),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL      string `toml:"base_url"`
		APIKey       string `toml:"api_key"`
		PollInterval string `toml:"poll_interval"`
		LogDir       string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	cfg.APIKey = strings.TrimSpace(raw.APIKey)

	if v := strings.TrimSpace(raw.PollInterval); v != "" {
		interval, err := str2duration.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse poll_interval %q: %w", raw.PollInterval, err)
		}
		if interval <= 0 {
			return Config{}, fmt.Errorf("poll_interval must be positive, got %q", raw.PollInterval)
		}
		cfg.PollInterval = interval
	}

	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envAPIKey)); v != "" {
		cfg.APIKey = v
	}
}

// LogPath returns the path of the gantry log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/gantry.log")
	}
	return filepath.Join(c.LogDir, "gantry.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
