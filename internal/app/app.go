package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/five82/wildwave/internal/config"
	"github.com/five82/wildwave/internal/detector"
	"github.com/five82/wildwave/internal/logging"
	"github.com/five82/wildwave/internal/prefs"
	"github.com/five82/wildwave/internal/ui"
)

// Options configure the WildWave application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/wildwave/prefs.toml
	EnvFile    string // empty uses .env in the working directory
	Endpoint   string // overrides config and environment when set
	LogLevel   string // overrides config and environment when set
	Version    string
}

// Environment holds the dependencies shared by the TUI and the CLI.
type Environment struct {
	Config   config.Config
	Logger   *slog.Logger
	Detector *detector.Client

	logCloser io.Closer
}

// Setup loads configuration and builds the logger and detection client.
// Precedence is flags, then environment (including .env), then the config
// file, then defaults.
func Setup(opts Options) (*Environment, error) {
	if err := config.LoadDotEnv(opts.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.WithEnv()
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.LogLevel = level
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, Path: cfg.LogPath()})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	clientOpts := []detector.Option{
		detector.WithTimeout(cfg.RequestTimeout),
		detector.WithMaxResponseBytes(cfg.MaxResponseBytes),
		detector.WithLogger(logging.Component(logger, "detector")),
	}
	if v := strings.TrimSpace(opts.Version); v != "" {
		clientOpts = append(clientOpts, detector.WithUserAgent("wildwave/"+v))
	}
	client, err := detector.NewClient(cfg.Endpoint, clientOpts...)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init detector client: %w", err)
	}

	logger.Info("wildwave starting",
		"version", opts.Version,
		"endpoint", client.Endpoint(),
		"request_timeout", cfg.RequestTimeout,
	)

	return &Environment{
		Config:    cfg,
		Logger:    logger,
		Detector:  client,
		logCloser: closer,
	}, nil
}

// Close releases the log file.
func (e *Environment) Close() error {
	if e == nil || e.logCloser == nil {
		return nil
	}
	return e.logCloser.Close()
}

// Run boots the WildWave TUI until the user quits or the context is
// cancelled. initialFile, when set, is selected on start.
func Run(ctx context.Context, opts Options, initialFile string) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	err = ui.Run(ui.Options{
		Context:     ctx,
		Detector:    env.Detector,
		Logger:      env.Logger,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   prefsPath,
		Prefs:       userPrefs,
		LogPath:     env.Config.LogPath(),
		InitialFile: initialFile,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		env.Logger.Error("tui exited with error", "error", err)
		return fmt.Errorf("run tui: %w", err)
	}
	env.Logger.Info("wildwave stopped")
	return nil
}
