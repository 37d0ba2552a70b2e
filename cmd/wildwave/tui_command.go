package main

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/wildwave/internal/app"
)

var errNoTerminal = errors.New("the interactive UI needs a terminal; use `wildwave detect <file>` in scripts")

func newTUICommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file]",
		Short: "Start the interactive UI, optionally with a file selected",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, ctx, args)
		},
	}
}

func runTUI(cmd *cobra.Command, ctx *commandContext, args []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNoTerminal
	}
	var initial string
	if len(args) > 0 {
		initial = args[0]
	}
	return app.Run(cmd.Context(), ctx.appOptions(), initial)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
