// Package config loads WildWave's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/wildwave/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Environment overrides are applied separately with Config.WithEnv, after an
// optional .env file has been read with LoadDotEnv. Command-line flags are
// applied last by the caller.
//
// # Default Values
//
//   - Config file: ~/.config/wildwave/config.toml
//   - Endpoint: http://localhost:8000/detect-birds/
//   - Log directory: ~/.local/state/wildwave
//   - Request timeout: none
//   - Response size cap: 4 MiB
//
// # TOML Format
//
//	endpoint = "http://localhost:8000/detect-birds/"
//	log_dir = "~/.local/state/wildwave"
//	log_level = "info"
//	request_timeout = "60s"
//	max_response_bytes = 4194304
//
// All fields are optional. Tilde expansion is performed for log_dir.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and unparseable durations. A missing
// config file is not an error.
package config
