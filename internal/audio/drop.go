package audio

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// FromDrop turns text dropped onto the terminal into a filesystem path.
//
// Terminals deliver a drag-and-drop as a bracketed paste of the file's path.
// Depending on the emulator the path may be quoted, backslash-escaped or a
// file:// URL, and dropping several files pastes them space separated. Only
// the first file is used.
func FromDrop(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	if line, _, found := strings.Cut(text, "\n"); found {
		text = strings.TrimSpace(line)
	}

	// Some terminals paste raw paths containing spaces unescaped.
	if whole := normalizeDropped(text); exists(whole) {
		return whole, true
	}

	first := firstToken(text)
	if first == "" {
		return "", false
	}
	return normalizeDropped(first), true
}

func normalizeDropped(token string) string {
	token = strings.TrimSpace(token)
	if len(token) >= 2 {
		if (token[0] == '\'' && token[len(token)-1] == '\'') || (token[0] == '"' && token[len(token)-1] == '"') {
			token = token[1 : len(token)-1]
		}
	}
	if strings.HasPrefix(token, "file://") {
		if u, err := url.Parse(token); err == nil && u.Path != "" {
			token = u.Path
		}
	}
	if strings.HasPrefix(token, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			token = filepath.Join(home, strings.TrimPrefix(token, "~"))
		}
	}
	return token
}

// firstToken returns the first shell-style word of text with quotes and
// backslash escapes removed.
func firstToken(text string) string {
	var (
		b       strings.Builder
		quote   rune
		escaped bool
		started bool
	)
	for _, r := range text {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			started = true
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			b.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			started = true
		case unicode.IsSpace(r):
			if started {
				return b.String()
			}
		default:
			b.WriteRune(r)
			started = true
		}
	}
	return b.String()
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
