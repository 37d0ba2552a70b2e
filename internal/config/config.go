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
)

// Config captures the settings WildWave needs to reach the detection service.
type Config struct {
	Endpoint         string
	LogDir           string
	LogLevel         string
	RequestTimeout   time.Duration // zero disables the timeout
	MaxResponseBytes int64
}

const (
	defaultConfigPath       = "~/.config/wildwave/config.toml"
	defaultLogDir           = "~/.local/state/wildwave"
	defaultEndpoint         = "http://localhost:8000/detect-birds/"
	defaultLogLevel         = "info"
	defaultMaxResponseBytes = 4 << 20

	// EnvEndpoint overrides the configured endpoint when set.
	EnvEndpoint = "WILDWAVE_ENDPOINT"
	// EnvLogLevel overrides the configured log level when set.
	EnvLogLevel = "WILDWAVE_LOG_LEVEL"
)

// DefaultPath returns the unexpanded default config location.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Endpoint:         defaultEndpoint,
		LogDir:           mustExpand(defaultLogDir),
		LogLevel:         defaultLogLevel,
		MaxResponseBytes: defaultMaxResponseBytes,
	}
}

// Load locates and parses the wildwave config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint         string `toml:"endpoint"`
		LogDir           string `toml:"log_dir"`
		LogLevel         string `toml:"log_level"`
		RequestTimeout   string `toml:"request_timeout"`
		MaxResponseBytes int64  `toml:"max_response_bytes"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if endpoint := strings.TrimSpace(raw.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if logDir := strings.TrimSpace(raw.LogDir); logDir != "" {
		cfg.LogDir = mustExpand(logDir)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout must not be negative")
		}
		cfg.RequestTimeout = d
	}
	if raw.MaxResponseBytes > 0 {
		cfg.MaxResponseBytes = raw.MaxResponseBytes
	}

	return cfg, nil
}

// LoadDotEnv reads KEY=value pairs from path into the process environment.
// Variables already set are left alone and a missing file is not an error.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// WithEnv returns a copy of c with environment overrides applied.
func (c Config) WithEnv() Config {
	if endpoint := strings.TrimSpace(os.Getenv(EnvEndpoint)); endpoint != "" {
		c.Endpoint = endpoint
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.LogLevel = strings.ToLower(level)
	}
	return c
}

// LogPath returns the path to the wildwave log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/wildwave.log")
	}
	return filepath.Join(c.LogDir, "wildwave.log")
}

// ResolvePath expands path, or the default location when path is blank.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
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
