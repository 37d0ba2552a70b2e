package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigPathPrintsResolvedFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(out) != env.configPath {
		t.Fatalf("config path = %q, want %q", strings.TrimSpace(out), env.configPath)
	}
}

func TestConfigShowJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "--endpoint", "localhost:9000/detect-birds/", "config", "show", "--json")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	var got configJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got.Endpoint != "http://localhost:9000/detect-birds/" {
		t.Fatalf("endpoint = %q", got.Endpoint)
	}
	if got.LogFile != filepath.Join(env.logDir, "wildwave.log") {
		t.Fatalf("log file = %q", got.LogFile)
	}
	if got.LogLevel != "debug" || got.RequestTimeout != "none" {
		t.Fatalf("unexpected config view: %+v", got)
	}
}

func TestConfigShowTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "endpoint")
	requireContains(t, out, "http://localhost:8000/detect-birds/")
	requireContains(t, out, "4.0 MiB")
}

func TestConfigInitWritesSampleOnce(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "fresh", "config.toml")

	out, _, err := runCLI(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, env, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when the file already exists")
	}
	if _, _, err := runCLI(t, env, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestRootWithoutTerminalFails(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, env); err != errNoTerminal {
		t.Fatalf("err = %v, want errNoTerminal", err)
	}
}
