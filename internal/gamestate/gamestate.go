// Package gamestate provides in-memory game progress tracking: boolean
// flags and integer counters, such as the number of rescued damsels.
package gamestate

import "sync"

// GameState holds all game progress data.
type GameState struct {
	mu sync.RWMutex

	// Flags are boolean values (e.g., "all_damsels_rescued")
	flags map[string]bool

	// Counters are integer values (e.g., "damsels_rescued")
	counters map[string]int
}

// New creates a new empty GameState.
func New() *GameState {
	return &GameState{
		flags:    make(map[string]bool),
		counters: make(map[string]int),
	}
}

// GetFlag returns the value of a flag (false if not set).
func (gs *GameState) GetFlag(name string) bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.flags[name]
}

// SetFlag sets a flag to a specific value.
func (gs *GameState) SetFlag(name string, value bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.flags[name] = value
}

// GetCounter returns the value of a counter (0 if not set).
func (gs *GameState) GetCounter(name string) int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.counters[name]
}

// SetCounter sets a counter to a specific value.
func (gs *GameState) SetCounter(name string, value int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.counters[name] = value
}

// IncrementCounter adds delta to a counter and returns the new value.
func (gs *GameState) IncrementCounter(name string, delta int) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.counters[name] += delta
	return gs.counters[name]
}

// Reset clears all flags and counters.
func (gs *GameState) Reset() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.flags = make(map[string]bool)
	gs.counters = make(map[string]int)
}
