// Package app is the composition root for WildWave.
//
// Setup resolves configuration (flags, then WILDWAVE_* environment variables
// and an optional .env file, then ~/.config/wildwave/config.toml, then
// defaults), opens the log file and builds the detection client. Both the
// TUI and the one-shot detect command start from it.
//
// Run adds user preferences and hands everything to ui.Run, blocking until
// the user quits or the context is cancelled.
package app
