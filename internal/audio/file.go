package audio

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrInvalidFileType reports a candidate that is not an audio file.
var ErrInvalidFileType = errors.New("invalid file type")

// SelectedFile is the audio file the user chose for analysis.
type SelectedFile struct {
	Path     string
	Name     string
	MIMEType string
	Size     int64
	Info     Info
}

// IsZero reports whether no file is held.
func (f SelectedFile) IsZero() bool {
	return f.Path == ""
}

// audioTypes maps extensions to the MIME types browsers and desktop
// environments report for them.
var audioTypes = map[string]string{
	".aac":  "audio/aac",
	".aif":  "audio/aiff",
	".aiff": "audio/aiff",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".mp3":  "audio/mpeg",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".wav":  "audio/wav",
	".weba": "audio/webm",
	".webm": "audio/webm",
	".wma":  "audio/x-ms-wma",
}

// Extensions returns the known audio extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(audioTypes))
	for ext := range audioTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IsAudioMIME reports whether mimeType names an audio type.
func IsAudioMIME(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "audio/")
}

// DetectMIME resolves the MIME type for path the way a desktop would report
// it: extension first, then the system table, then content sniffing.
func DetectMIME(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := audioTypes[ext]; ok {
		return t
	}
	if ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			if media, _, err := mime.ParseMediaType(t); err == nil {
				return media
			}
			return t
		}
	}
	return sniff(path)
}

func sniff(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = file.Close() }()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return ""
	}
	if n == 0 {
		return ""
	}
	detected := http.DetectContentType(head[:n])
	if media, _, err := mime.ParseMediaType(detected); err == nil {
		return media
	}
	return detected
}

// Inspect stats path and describes it as a candidate selection.
func Inspect(path string) (SelectedFile, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return SelectedFile{}, fmt.Errorf("%w: empty path", ErrInvalidFileType)
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return SelectedFile{}, fmt.Errorf("%w: resolve path: %w", ErrInvalidFileType, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return SelectedFile{}, fmt.Errorf("%w: %w", ErrInvalidFileType, err)
	}
	if !info.Mode().IsRegular() {
		return SelectedFile{}, fmt.Errorf("%w: %s is not a regular file", ErrInvalidFileType, abs)
	}
	return SelectedFile{
		Path:     abs,
		Name:     info.Name(),
		MIMEType: DetectMIME(abs),
		Size:     info.Size(),
	}, nil
}

// Accept admits candidate only when its MIME type starts with "audio/".
func Accept(candidate SelectedFile) (SelectedFile, error) {
	if !IsAudioMIME(candidate.MIMEType) {
		mimeType := candidate.MIMEType
		if mimeType == "" {
			mimeType = "unknown"
		}
		return SelectedFile{}, fmt.Errorf("%w: %s has type %s", ErrInvalidFileType, candidate.Name, mimeType)
	}
	return candidate, nil
}

// Load inspects, accepts and probes path in one step. Probe failures are
// tolerated; the file is still accepted without header metadata.
func Load(path string) (SelectedFile, error) {
	candidate, err := Inspect(path)
	if err != nil {
		return SelectedFile{}, err
	}
	file, err := Accept(candidate)
	if err != nil {
		return SelectedFile{}, err
	}
	if info, err := Probe(file.Path, file.MIMEType); err == nil {
		file.Info = info
	}
	return file, nil
}
