package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeWAV writes a minimal 16-bit PCM WAV file holding samples frames.
func writeWAV(t *testing.T, path string, sampleRate, channels, samples int) {
	t.Helper()

	const bitDepth = 16
	blockAlign := channels * bitDepth / 8
	dataSize := samples * blockAlign

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitDepth))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDetectMIME(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		file string
		data []byte
		want string
	}{
		{"wav extension", "song.wav", nil, "audio/wav"},
		{"upper case extension", "SONG.MP3", nil, "audio/mpeg"},
		{"flac", "dawn.flac", nil, "audio/flac"},
		{"text sniffed", "notes", []byte("just some notes\n"), "text/plain"},
		{"wav sniffed without extension", "recording", nil, "audio/wave"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if tc.name == "wav sniffed without extension" {
				writeWAV(t, path, 8000, 1, 10)
			} else if err := os.WriteFile(path, tc.data, 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if got := DetectMIME(path); got != tc.want {
				t.Fatalf("DetectMIME(%q) = %q, want %q", tc.file, got, tc.want)
			}
		})
	}
}

func TestIsAudioMIME(t *testing.T) {
	for _, mt := range []string{"audio/wav", "Audio/MPEG", " audio/ogg "} {
		if !IsAudioMIME(mt) {
			t.Fatalf("IsAudioMIME(%q) = false, want true", mt)
		}
	}
	for _, mt := range []string{"", "text/plain", "video/mp4", "application/ogg", "audiox/wav"} {
		if IsAudioMIME(mt) {
			t.Fatalf("IsAudioMIME(%q) = true, want false", mt)
		}
	}
}

func TestLoad_AcceptsAudioAndProbesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robin.wav")
	writeWAV(t, path, 48000, 2, 4800)

	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if file.Name != "robin.wav" || file.MIMEType != "audio/wav" {
		t.Fatalf("file = %+v, want robin.wav audio/wav", file)
	}
	if file.Size <= 44 {
		t.Fatalf("Size = %d, want header plus data", file.Size)
	}
	if file.Info.Format != "WAV" || file.Info.SampleRate != 48000 || file.Info.Channels != 2 || file.Info.BitDepth != 16 {
		t.Fatalf("Info = %+v, want WAV 48000Hz stereo 16-bit", file.Info)
	}
}

func TestLoad_RejectsNonAudio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for _, candidate := range []string{path, filepath.Join(dir, "missing.wav"), dir, "  "} {
		_, err := Load(candidate)
		if !errors.Is(err, ErrInvalidFileType) {
			t.Fatalf("Load(%q) error = %v, want ErrInvalidFileType", candidate, err)
		}
	}
}

func TestLoad_ToleratesUnreadableHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.flac")
	if err := os.WriteFile(path, []byte("not a flac stream"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Probe(path, "audio/flac"); err == nil {
		t.Fatalf("Probe returned nil error for garbage FLAC")
	}
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !file.Info.IsZero() {
		t.Fatalf("Info = %+v, want zero when header is unreadable", file.Info)
	}
}

func TestProbe_UnknownFormatIsEmpty(t *testing.T) {
	info, err := Probe("/does/not/matter.mp3", "audio/mpeg")
	if err != nil || !info.IsZero() {
		t.Fatalf("Probe(mp3) = %+v, %v; want zero info and nil error", info, err)
	}
}

func TestSamplesDuration(t *testing.T) {
	cases := []struct {
		name    string
		samples uint64
		rate    int
		want    time.Duration
	}{
		{"one second", 48000, 48000, time.Second},
		{"fraction", 72000, 48000, 1500 * time.Millisecond},
		{"no rate", 48000, 0, 0},
		{"sixty hours at 48kHz", 60 * 3600 * 48000, 48000, 60 * time.Hour},
		{"beyond range", math.MaxUint64, 1, time.Duration(math.MaxInt64)},
	}
	for _, tc := range cases {
		if got := samplesDuration(tc.samples, tc.rate); got != tc.want {
			t.Fatalf("%s: samplesDuration(%d, %d) = %v, want %v", tc.name, tc.samples, tc.rate, got, tc.want)
		}
	}
}

func TestExtensionsSortedAndKnown(t *testing.T) {
	exts := Extensions()
	if len(exts) != len(audioTypes) {
		t.Fatalf("Extensions() returned %d entries, want %d", len(exts), len(audioTypes))
	}
	for i := 1; i < len(exts); i++ {
		if exts[i-1] >= exts[i] {
			t.Fatalf("Extensions() not sorted: %v", exts)
		}
	}
}
