package essay

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrMissing is returned when a document does not exist.
var ErrMissing = errors.New("essay not found")

// Essay is a document loaded into memory.
type Essay struct {
	Label string
	Path  string
	Text  string
}

// Load reads the file at path in full. The label names the essay in output
// such as "essay1".
func Load(label, path string) (Essay, error) {
	label = strings.TrimSpace(label)
	path = strings.TrimSpace(path)
	if path == "" {
		return Essay{}, fmt.Errorf("load %s: %w", label, ErrMissing)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Essay{}, fmt.Errorf("load %s %s: %w", label, path, ErrMissing)
		}
		return Essay{}, fmt.Errorf("load %s %s: %w", label, path, err)
	}
	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	return Essay{Label: label, Path: path, Text: text}, nil
}

// LoadPair loads both essays, stopping at the first failure.
func LoadPair(pathA, pathB string) (Essay, Essay, error) {
	a, err := Load("essay1", pathA)
	if err != nil {
		return Essay{}, Essay{}, err
	}
	b, err := Load("essay2", pathB)
	if err != nil {
		return Essay{}, Essay{}, err
	}
	return a, b, nil
}
