package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wildwave/internal/audio"
	"github.com/five82/wildwave/internal/detector"
	"github.com/five82/wildwave/internal/logtail"
)

// Messages

// fileLoadedMsg reports the outcome of inspecting a picked or dropped path.
// seq orders loads so a slow probe cannot overwrite a newer choice.
type fileLoadedMsg struct {
	seq  uint64
	path string
	file audio.SelectedFile
	err  error
}

// detectDoneMsg carries the response for the upload issued with token.
type detectDoneMsg struct {
	token  uint64
	result detector.Result
	err    error
}

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func loadFileCmd(seq uint64, path string) tea.Cmd {
	return func() tea.Msg {
		file, err := audio.Load(path)
		return fileLoadedMsg{seq: seq, path: path, file: file, err: err}
	}
}

func detectCmd(ctx context.Context, d detector.Detector, token uint64, file audio.SelectedFile) tea.Cmd {
	return func() tea.Msg {
		if d == nil {
			return detectDoneMsg{token: token, err: fmt.Errorf("%w: no detector configured", detector.ErrTransferFailure)}
		}
		result, err := d.Detect(ctx, file)
		return detectDoneMsg{token: token, result: result, err: err}
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Read(path, logTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}
