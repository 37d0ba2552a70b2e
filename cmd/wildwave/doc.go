// Package main hosts the WildWave entrypoint and command graph.
//
// Running wildwave with no subcommand opens the interactive UI. The detect
// subcommand runs the same select, upload and render cycle without a
// terminal UI and prints a table or JSON, which keeps the tool scriptable.
// The config subcommands locate, scaffold and print the effective settings.
package main
