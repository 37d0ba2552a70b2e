package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/tphakala/flac"
)

// Info carries header metadata read from the file, when the format is known.
type Info struct {
	Format     string
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// IsZero reports whether nothing was probed.
func (i Info) IsZero() bool {
	return i == Info{}
}

// Probe reads header metadata for WAV and FLAC files. Other formats return
// an empty Info and no error; the server decodes them.
func Probe(path, mimeType string) (Info, error) {
	switch formatFor(path, mimeType) {
	case "wav":
		return probeWAV(path)
	case "flac":
		return probeFLAC(path)
	default:
		return Info{}, nil
	}
}

func formatFor(path, mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "audio/wav", "audio/wave", "audio/x-wav", "audio/vnd.wave":
		return "wav"
	case "audio/flac", "audio/x-flac":
		return "flac"
	}
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".wav"):
		return "wav"
	case strings.HasSuffix(lower, ".flac"):
		return "flac"
	}
	return ""
}

func probeWAV(path string) (Info, error) {
	file, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open wav: %w", err)
	}
	defer func() { _ = file.Close() }()

	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return Info{}, errors.New("invalid WAV file format")
	}

	info := Info{
		Format:     "WAV",
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
	}
	if d, err := decoder.Duration(); err == nil {
		info.Duration = d
	}
	return info, nil
}

func probeFLAC(path string) (Info, error) {
	file, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open flac: %w", err)
	}
	defer func() { _ = file.Close() }()

	decoder, err := flac.NewDecoder(file)
	if err != nil {
		return Info{}, fmt.Errorf("read flac header: %w", err)
	}

	info := Info{
		Format:     "FLAC",
		SampleRate: decoder.SampleRate,
		Channels:   decoder.NChannels,
		BitDepth:   decoder.BitsPerSample,
	}
	info.Duration = samplesDuration(uint64(decoder.TotalSamples), info.SampleRate)
	return info, nil
}

// samplesDuration converts a sample count to a duration without overflowing
// for long recordings.
func samplesDuration(samples uint64, rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	r := uint64(rate)
	whole := samples / r
	if whole > uint64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	rem := samples % r
	return time.Duration(whole)*time.Second + time.Duration(rem*uint64(time.Second)/r)
}
