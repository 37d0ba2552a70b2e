package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "wildwave [file]",
		Short:         "Identify bird species in audio recordings",
		Long:          "WildWave uploads an audio recording to a species-detection service and shows the matches as confidence gauges.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, ctx, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.prefs, "prefs", "", "Preferences file path")
	pf.StringVar(&flags.endpoint, "endpoint", "", "Detection endpoint URL (overrides config and WILDWAVE_ENDPOINT)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.envFile, "env-file", "", "Environment file to load (default .env)")

	rootCmd.AddCommand(newTUICommand(ctx))
	rootCmd.AddCommand(newDetectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
