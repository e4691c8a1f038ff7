// Package levels holds the static dictation content: graded pools of
// Korean sentences, registered once at startup and read-only after.
package levels

import "sync"

// Level is a graded set of candidate dictation sentences.
type Level struct {
	ID    string
	Title string
	Items []string
}

var (
	mu      sync.RWMutex
	ordered []Level
	byID    = make(map[string]int)
)

// Register adds a level to the registry. Called from this package's
// content init; registering twice under one id replaces the earlier
// entry.
func Register(level Level) {
	mu.Lock()
	defer mu.Unlock()

	if i, ok := byID[level.ID]; ok {
		ordered[i] = level
		return
	}
	byID[level.ID] = len(ordered)
	ordered = append(ordered, level)
}

// All returns every registered level in registration order.
func All() []Level {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Level, len(ordered))
	copy(out, ordered)
	return out
}

// Get returns the level with the given id, or nil if none matches.
func Get(id string) *Level {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return nil
	}
	level := ordered[i]
	return &level
}
