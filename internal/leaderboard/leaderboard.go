// Package leaderboard keeps the top runs ordered by score, then by survival time.
// Persistence is delegated to a Store; the ordering policy lives here so every
// backend behaves the same.
package leaderboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// MaxEntries is how many runs the board keeps.
const MaxEntries = 5

// Entry is one finished run.
type Entry struct {
	Score int `json:"score"`
	Time  int `json:"time"`

	// Legacy marks entries persisted as a bare score with no time.
	Legacy bool `json:"-"`
}

// String formats an entry the way the board displays it.
func (e Entry) String() string {
	if e.Legacy {
		return fmt.Sprintf("%dm", e.Score)
	}
	return fmt.Sprintf("%dm (%ds)", e.Score, e.Time)
}

// Less reports whether a ranks above b: higher score first, then longer time.
func Less(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Time > b.Time
}

// Sort orders entries in place by rank. Equal entries keep their order.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case Less(a, b):
			return -1
		case Less(b, a):
			return 1
		default:
			return 0
		}
	})
}

// Insert returns a new ranked slice containing entries plus e, truncated to MaxEntries.
// The input slice is not modified.
func Insert(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, e)
	Sort(out)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

// Decode parses a persisted board.
// It accepts an empty payload, a JSON array mixing {score,time} objects and
// bare numbers (older saves), or a single bare number.
// Elements of any other shape are skipped.
func Decode(data []byte) ([]Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	if data[0] != '[' {
		e, ok := decodeElement(data)
		if !ok {
			return nil, fmt.Errorf("leaderboard: unrecognized payload %q", truncate(data, 32))
		}
		return []Entry{e}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot decode: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		if e, ok := decodeElement(r); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// decodeElement parses one element that is either an object or a bare number.
func decodeElement(data []byte) (Entry, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Entry{}, false
	}

	if data[0] == '{' {
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			return Entry{}, false
		}
		return e, true
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return Entry{}, false
	}
	return Entry{Score: int(f), Legacy: true}, true
}

// Encode serializes a board as a JSON array of {score,time} objects.
// Legacy entries are written back as bare numbers so they stay legacy
// after a round trip through Decode.
func Encode(entries []Entry) ([]byte, error) {
	values := make([]any, len(entries))
	for i, e := range entries {
		if e.Legacy {
			values[i] = e.Score
		} else {
			values[i] = e
		}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot encode: %w", err)
	}
	return data, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}

// Store persists a ranked board.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Archiver is implemented by stores that also keep every finished run.
type Archiver interface {
	Archive(e Entry) error
}

// Board is a cached view over a Store.
// A nil store keeps the board in memory only.
type Board struct {
	mu      sync.Mutex
	store   Store
	entries []Entry
	logger  *log.Logger
}

// NewBoard creates a board and loads the current entries.
// A load failure is logged and leaves the board empty; the game still plays.
func NewBoard(store Store, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	b := &Board{store: store, logger: logger}
	if err := b.Refresh(); err != nil {
		logger.Warn("could not load leaderboard", "error", err)
	}
	return b
}

// Refresh reloads entries from the store.
func (b *Board) Refresh() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.store == nil {
		return nil
	}

	entries, err := b.store.Load()
	if err != nil {
		b.entries = nil
		return err
	}
	Sort(entries)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	b.entries = entries
	return nil
}

// Entries returns a copy of the ranked entries.
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.entries)
}

// Record adds a finished run and persists the board.
// The in-memory board is updated even when saving fails.
func (b *Board) Record(e Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Reload first so concurrent writers to the same store are not clobbered.
	if b.store != nil {
		if current, err := b.store.Load(); err == nil {
			b.entries = current
		} else {
			b.logger.Warn("could not reload leaderboard before saving", "error", err)
		}
	}

	b.entries = Insert(b.entries, e)

	if b.store == nil {
		return nil
	}

	if a, ok := b.store.(Archiver); ok {
		if err := a.Archive(e); err != nil {
			b.logger.Warn("could not archive run", "error", err)
		}
	}

	if err := b.store.Save(b.entries); err != nil {
		return fmt.Errorf("leaderboard: cannot save: %w", err)
	}
	b.logger.Debug("leaderboard saved", "score", e.Score, "time", e.Time, "entries", len(b.entries))
	return nil
}

// MemoryStore is an in-process Store, used by tests and when no database is available.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	saves   int
}

// Load returns a copy of the stored entries.
func (m *MemoryStore) Load() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.entries), nil
}

// Save replaces the stored entries.
func (m *MemoryStore) Save(entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = slices.Clone(entries)
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
