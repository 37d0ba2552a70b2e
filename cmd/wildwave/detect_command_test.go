package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

const twoBirds = `{"birds":[{"name":"Robin","confidence":92},{"name":"Wren","confidence":54.2}]}`

func TestDetectPrintsTable(t *testing.T) {
	env := setupCLITestEnv(t)
	srv := newDetectServer(t, http.StatusOK, twoBirds)
	path := writeFile(t, env.baseDir, "dawn.mp3", []byte("ID3 not really audio"))

	out, _, err := runCLI(t, env, "--endpoint", srv.URL+"/detect-birds/", "detect", path)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	requireContains(t, out, "dawn.mp3")
	requireContains(t, out, "audio/mpeg")
	requireContains(t, out, "Robin")
	requireContains(t, out, "92.0%")
	requireContains(t, out, "54.2%")
	if strings.Index(out, "Robin") > strings.Index(out, "Wren") {
		t.Fatalf("expected server order to be kept:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI color when writing to a buffer:\n%s", out)
	}
}

func TestDetectJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	srv := newDetectServer(t, http.StatusOK, twoBirds)
	path := writeFile(t, env.baseDir, "dawn.mp3", []byte("ID3 not really audio"))

	out, _, err := runCLI(t, env, "--endpoint", srv.URL+"/detect-birds/", "detect", "--json", path)
	if err != nil {
		t.Fatalf("detect --json: %v", err)
	}

	var got detectionJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got.File != "dawn.mp3" || got.MIMEType != "audio/mpeg" {
		t.Fatalf("file = %q (%q), want dawn.mp3 (audio/mpeg)", got.File, got.MIMEType)
	}
	if len(got.Birds) != 2 {
		t.Fatalf("birds = %d, want 2", len(got.Birds))
	}
	if got.Birds[0].Rank != 1 || got.Birds[0].Name != "Robin" || got.Birds[0].Tier != "A" {
		t.Fatalf("first bird = %+v", got.Birds[0])
	}
	if got.Birds[1].Rank != 2 || got.Birds[1].Tier != "C" {
		t.Fatalf("second bird = %+v", got.Birds[1])
	}
}

func TestDetectEmptyResult(t *testing.T) {
	env := setupCLITestEnv(t)
	srv := newDetectServer(t, http.StatusOK, `{"birds":[]}`)
	path := writeFile(t, env.baseDir, "quiet.wav", []byte("RIFF"))

	out, _, err := runCLI(t, env, "--endpoint", srv.URL, "detect", path)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	requireContains(t, out, "No species detected.")
}

func TestDetectRejectsNonAudio(t *testing.T) {
	env := setupCLITestEnv(t)
	srv := newDetectServer(t, http.StatusOK, twoBirds)
	path := writeFile(t, env.baseDir, "notes.txt", []byte("hello"))

	_, _, err := runCLI(t, env, "--endpoint", srv.URL, "detect", path)
	if err == nil {
		t.Fatal("expected error for a text file")
	}
	if err.Error() != "Please upload a valid audio file." {
		t.Fatalf("error = %q", err.Error())
	}
}

func TestDetectReportsTransferFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	srv := newDetectServer(t, http.StatusInternalServerError, `{"detail":"boom"}`)
	path := writeFile(t, env.baseDir, "dawn.mp3", []byte("ID3"))

	_, _, err := runCLI(t, env, "--endpoint", srv.URL, "detect", path)
	if err == nil {
		t.Fatal("expected error for a 500 response")
	}
	if err.Error() != "Analysis failed. Please check your connection." {
		t.Fatalf("error = %q", err.Error())
	}
}

func TestDetectRequiresFileArgument(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, env, "detect"); err == nil {
		t.Fatal("expected error without a file argument")
	}
}
