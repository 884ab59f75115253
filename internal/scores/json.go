package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// scoresFile is the on-disk JSON document: a single named record holding
// the ordered entry list.
type scoresFile struct {
	Scores []Entry `json:"scores"`
}

// JSONBackend persists the leaderboard as a JSON file.
type JSONBackend struct {
	path string
}

// NewJSONBackend prepares a JSON file backend at the given path.
// It expands a leading ~ and creates the parent directories.
func NewJSONBackend(path string) (*JSONBackend, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
	}

	return &JSONBackend{path: path}, nil
}

// Load reads the leaderboard file. A missing file is an empty
// leaderboard, not an error.
func (b *JSONBackend) Load() ([]Entry, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scores: cannot read %s: %w", b.path, err)
	}

	var f scoresFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scores: cannot parse %s: %w", b.path, err)
	}
	return f.Scores, nil
}

// Save writes the full leaderboard, replacing the previous file.
func (b *JSONBackend) Save(entries []Entry) error {
	f := scoresFile{Scores: entries}
	if f.Scores == nil {
		f.Scores = []Entry{}
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("scores: cannot encode leaderboard: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(b.path, data, 0o600); err != nil {
		return fmt.Errorf("scores: cannot write %s: %w", b.path, err)
	}
	return nil
}

// Path returns the resolved file path.
func (b *JSONBackend) Path() string {
	return b.path
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("scores: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
