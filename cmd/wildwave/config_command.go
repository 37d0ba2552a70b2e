package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/wildwave/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect WildWave configuration",
	}
	cmd.AddCommand(newConfigPathCommand(ctx))
	cmd.AddCommand(newConfigInitCommand(ctx))
	cmd.AddCommand(newConfigShowCommand(ctx))
	return cmd
}

func newConfigPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ResolvePath(ctx.flags.config)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = ctx.flags.config
			}
			resolved, err := config.ResolvePath(target)
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}

			if !overwrite {
				if _, err := os.Stat(resolved); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", resolved)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}
			if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := config.CreateSample(resolved); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", resolved)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

type configJSON struct {
	Endpoint         string `json:"endpoint"`
	LogFile          string `json:"log_file"`
	LogLevel         string `json:"log_level"`
	RequestTimeout   string `json:"request_timeout"`
	MaxResponseBytes int64  `json:"max_response_bytes"`
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := ctx.ensureEnvironment()
			if err != nil {
				return err
			}
			defer ctx.close()

			cfg := env.Config
			timeout := "none"
			if cfg.RequestTimeout > 0 {
				timeout = cfg.RequestTimeout.String()
			}
			view := configJSON{
				Endpoint:         env.Detector.Endpoint(),
				LogFile:          cfg.LogPath(),
				LogLevel:         cfg.LogLevel,
				RequestTimeout:   timeout,
				MaxResponseBytes: cfg.MaxResponseBytes,
			}
			if jsonOut {
				return writeJSON(cmd, view)
			}

			rows := [][]string{
				{"endpoint", view.Endpoint},
				{"log_file", view.LogFile},
				{"log_level", view.LogLevel},
				{"request_timeout", view.RequestTimeout},
				{"max_response_bytes", strconv.FormatInt(view.MaxResponseBytes, 10) + " (" + formatBytes(view.MaxResponseBytes) + ")"},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Key", "Value"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the configuration as JSON")
	return cmd
}
