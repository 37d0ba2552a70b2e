package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const sampleConfig = `# WildWave configuration

# Detection service that receives the multipart upload.
endpoint = "http://localhost:8000/detect-birds/"

# Where wildwave.log is written.
log_dir = "~/.local/state/wildwave"

# debug, info, warn or error.
log_level = "info"

# Per-request limit such as "30s". Leave empty to wait indefinitely.
# request_timeout = "30s"

# Largest response body accepted from the service.
max_response_bytes = 4194304
`

// CreateSample writes a commented sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
