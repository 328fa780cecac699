// Package scoreboard keeps the best finished runs and persists them per platform.
package scoreboard

import (
	"fmt"
	"sort"
	"time"
)

// Entry is one finished run.
type Entry struct {
	Score int       `json:"score"`
	At    time.Time `json:"at"`
}

var customDir string

// SetDir sets the directory platform stores keep their file in. Only the
// Android store reads it; the mobile package calls it with the app's files dir.
func SetDir(path string) {
	customDir = path
}

// Storage persists the board. Implementations are chosen by build tag.
type Storage interface {
	Save(entries []Entry) error
	Load() ([]Entry, error)
}

// Board is a top-N list ordered by score, best first. Ties keep the
// earlier run ahead.
type Board struct {
	size    int
	entries []Entry
	storage Storage
}

// Open loads the board from storage. A nil storage keeps it in memory.
func Open(storage Storage, size int) (*Board, error) {
	b := &Board{size: size, storage: storage}
	return b, b.Reload()
}

// Reload replaces the in-memory entries with what storage holds.
func (b *Board) Reload() error {
	if b.storage == nil {
		return nil
	}
	entries, err := b.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load scoreboard: %w", err)
	}
	b.set(entries)
	return nil
}

func (b *Board) set(entries []Entry) {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Score > 0 {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Score > kept[j].Score })
	if len(kept) > b.size {
		kept = kept[:b.size]
	}
	b.entries = kept
}

// Entries returns a copy of the board, best first.
func (b *Board) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// Best returns the top score, or 0 for an empty board.
func (b *Board) Best() int {
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}

// IsHighScore reports whether score would make it onto the board.
func (b *Board) IsHighScore(score int) bool {
	if score <= 0 {
		return false
	}
	if len(b.entries) < b.size {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Record inserts a run and saves the board. It returns the zero-based rank,
// or -1 when the score did not qualify. The board is updated in memory even
// if saving fails.
func (b *Board) Record(score int, at time.Time) (int, error) {
	if !b.IsHighScore(score) {
		return -1, nil
	}
	rank := sort.Search(len(b.entries), func(i int) bool { return b.entries[i].Score < score })
	b.entries = append(b.entries, Entry{})
	copy(b.entries[rank+1:], b.entries[rank:])
	b.entries[rank] = Entry{Score: score, At: at}
	if len(b.entries) > b.size {
		b.entries = b.entries[:b.size]
	}

	if b.storage != nil {
		if err := b.storage.Save(b.Entries()); err != nil {
			return rank, fmt.Errorf("failed to save scoreboard: %w", err)
		}
	}
	return rank, nil
}
