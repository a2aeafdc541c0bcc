// Package storage keeps the leaderboard for live sessions. Scores live in
// memory for the lifetime of the process: the local player sees the bests
// of their sitting, and every SSH session served by one server shares the
// same board. Nothing is written to disk.
package storage

import (
	"sort"
	"sync"
	"time"
)

// DefaultCapacity is how many entries a board retains before the lowest
// scores are dropped.
const DefaultCapacity = 100

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	Player    string
	Score     int
	CreatedAt time.Time
}

// Board is a concurrency-safe in-memory leaderboard. Safe for use from
// multiple SSH sessions at once.
type Board struct {
	mu       sync.RWMutex
	entries  []ScoreEntry
	capacity int
	now      func() time.Time
}

// NewBoard creates an empty board with the default capacity.
func NewBoard() *Board {
	return &Board{
		capacity: DefaultCapacity,
		now:      time.Now,
	}
}

// SaveScore records a finished run for the given player.
func (b *Board) SaveScore(player string, score int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, ScoreEntry{
		Player:    player,
		Score:     score,
		CreatedAt: b.now(),
	})

	// Highest first; ties keep the earlier run on top.
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})

	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
	}
}

// TopScores returns up to n entries, highest score first.
func (b *Board) TopScores(n int) []ScoreEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n > len(b.entries) {
		n = len(b.entries)
	}
	out := make([]ScoreEntry, n)
	copy(out, b.entries[:n])
	return out
}

// HighScore returns the best score recorded, or 0 if no runs finished yet.
func (b *Board) HighScore() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}

// Len returns the number of recorded runs.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
