// Package scores maintains the persisted high score leaderboard: a ranked
// list of name+score entries behind a pluggable storage backend.
package scores

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultCap is the number of entries kept when no cap is configured.
const DefaultCap = 100

// Entry is a single leaderboard record.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Backend loads and saves the full ordered leaderboard.
type Backend interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Store is the in-memory leaderboard synced to a Backend. It is safe
// for concurrent use; SSH serving hands one store to every session.
type Store struct {
	backend Backend
	cap     int
	logger  *log.Logger

	mu      sync.RWMutex
	entries []Entry
}

// Open creates a store backed by backend and loads any existing entries.
// A missing or unreadable leaderboard starts empty: load problems are
// logged at warn level and never returned to the caller.
func Open(backend Backend, capacity int, logger *log.Logger) *Store {
	if capacity <= 0 {
		capacity = DefaultCap
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Store{
		backend: backend,
		cap:     capacity,
		logger:  logger,
	}

	entries, err := backend.Load()
	if err != nil {
		logger.Warn("starting with an empty leaderboard", "err", err)
		entries = nil
	}
	s.entries = entries
	s.rank()
	return s
}

// Record inserts an entry, re-ranks the leaderboard, and persists it.
// Persist failures are logged and swallowed; the in-memory list stays
// updated either way.
func (s *Store) Record(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	s.rank()

	if err := s.backend.Save(s.entries); err != nil {
		s.logger.Warn("leaderboard not persisted", "err", err)
	}
}

// rank orders entries by score descending, keeping insertion order on
// ties, and truncates to the cap. Record holds mu; Open ranks before the
// store is shared.
func (s *Store) rank() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Score > s.entries[j].Score
	})
	if len(s.entries) > s.cap {
		s.entries = s.entries[:s.cap]
	}
}

// Top returns a copy of the highest n entries (fewer if the leaderboard
// is shorter).
func (s *Store) Top(n int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.entries) {
		n = len(s.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Entry, n)
	copy(out, s.entries[:n])
	return out
}

// Len returns the number of entries on the leaderboard.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Reset clears the leaderboard in memory and on disk.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return s.backend.Save(nil)
}

// Close releases the backend when it holds resources, like the sqlite
// driver's connection pool. Closing a file-backed store is a no-op.
func (s *Store) Close() error {
	if c, ok := s.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// OpenBackend creates the storage backend named by driver.
func OpenBackend(driver, path string) (Backend, error) {
	switch driver {
	case "", "json":
		return NewJSONBackend(path)
	case "sqlite":
		return NewSQLiteBackend(path)
	default:
		return nil, fmt.Errorf("scores: unknown driver %q", driver)
	}
}
