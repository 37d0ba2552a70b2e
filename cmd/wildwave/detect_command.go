package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/wildwave/internal/audio"
	"github.com/five82/wildwave/internal/detector"
	"github.com/five82/wildwave/internal/logging"
	"github.com/five82/wildwave/internal/state"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "detect <file>",
		Short: "Upload one recording and print the detected species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.ensureEnvironment()
			if err != nil {
				return err
			}
			defer ctx.close()

			logger := logging.Component(env.Logger, "cli")
			session, err := detectFile(cmd.Context(), env.Detector, args[0])
			if err != nil {
				return err
			}
			if msg := session.ErrorMessage(); msg != "" {
				logger.Warn("detect failed", "file", args[0], "error", session.Cause())
				return errors.New(msg)
			}

			file := session.File()
			result := session.Result()
			logger.Info("detect finished", "file", file.Name, "birds", len(result.Birds))

			if jsonOut {
				return writeJSON(cmd, newDetectionJSON(file, result))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, fileSummary(file))
			if len(result.Birds) == 0 {
				fmt.Fprintln(out, "No species detected.")
				return nil
			}
			fmt.Fprintln(out, renderResultTable(result, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")
	return cmd
}

// detectFile runs one select-submit-reply cycle through the session state
// machine, so the CLI reports exactly what the TUI would show.
func detectFile(ctx context.Context, d detector.Detector, path string) (state.Session, error) {
	var session state.Session

	file, err := audio.Load(path)
	if err != nil {
		session, _ = session.Apply(state.Rejected{Err: err})
		return session, nil
	}
	session, _ = session.Apply(state.Selected{File: file})

	session, eff := session.Apply(state.Submitted{})
	if eff.Kind != state.EffectStartUpload {
		return session, fmt.Errorf("upload not started for %s", file.Name)
	}

	result, err := d.Detect(ctx, eff.File)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return session, err
		}
		session, _ = session.Apply(state.Failed{Token: eff.Token, Err: err})
		return session, nil
	}
	session, _ = session.Apply(state.Succeeded{Token: eff.Token, Result: result})
	return session, nil
}

// detectionJSON is the --json output shape.
type detectionJSON struct {
	File      string     `json:"file"`
	MIMEType  string     `json:"mime_type"`
	SizeBytes int64      `json:"size_bytes"`
	Birds     []birdJSON `json:"birds"`
}

type birdJSON struct {
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Tier       string  `json:"tier"`
}

func newDetectionJSON(file audio.SelectedFile, result detector.Result) detectionJSON {
	out := detectionJSON{
		File:      file.Name,
		MIMEType:  file.MIMEType,
		SizeBytes: file.Size,
		Birds:     make([]birdJSON, 0, len(result.Birds)),
	}
	for i, b := range result.Birds {
		out.Birds = append(out.Birds, birdJSON{
			Rank:       i + 1,
			Name:       b.Name,
			Confidence: b.Confidence,
			Tier:       b.Tier().String(),
		})
	}
	return out
}

func fileSummary(file audio.SelectedFile) string {
	parts := []string{file.Name, file.MIMEType, formatBytes(file.Size)}
	if info := file.Info; !info.IsZero() {
		if info.Duration > 0 {
			parts = append(parts, info.Duration.Round(100*time.Millisecond).String())
		}
		if info.SampleRate > 0 {
			parts = append(parts, fmt.Sprintf("%d Hz", info.SampleRate))
		}
	}
	return strings.Join(parts, "  ")
}
