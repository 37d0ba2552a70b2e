package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_SpansChunks(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "big.log")

	var content strings.Builder
	total := 3000
	for i := 0; i < total; i++ {
		fmt.Fprintf(&content, "time=now level=INFO msg=\"entry %04d\"\r\n", i)
	}
	// No trailing newline on the final line.
	content.WriteString("last line")
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Read(logPath, 3)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []string{
		`time=now level=INFO msg="entry 2998"`,
		`time=now level=INFO msg="entry 2999"`,
		"last line",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %q, want %q", got, want)
	}

	got, err = Read(logPath, 2500)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 2500 {
		t.Fatalf("Read() returned %d lines, want 2500", len(got))
	}
	if got[0] != fmt.Sprintf(`time=now level=INFO msg="entry %04d"`, total-2499) {
		t.Fatalf("first line = %q, want entry %d", got[0], total-2499)
	}
}

func TestRead_MissingAndEmptyFiles(t *testing.T) {
	dir := t.TempDir()

	got, err := Read(filepath.Join(dir, "missing.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}

	empty := filepath.Join(dir, "empty.log")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err = Read(empty, 10)
	if err != nil || len(got) != 0 {
		t.Fatalf("Read(empty) = %v, %v; want no lines", got, err)
	}
}

func TestLevel(t *testing.T) {
	cases := map[string]string{
		`time=2026-01-02T10:00:00Z level=WARN msg="upload failed"`: "WARN",
		`time=2026-01-02T10:00:00Z level=info msg=x`:               "INFO",
		`level=ERROR`: "ERROR",
		"plain text":  "",
	}
	for line, want := range cases {
		if got := Level(line); got != want {
			t.Fatalf("Level(%q) = %q, want %q", line, got, want)
		}
	}
}
