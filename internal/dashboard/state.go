package dashboard

import (
	"sync"

	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

// State is the owned view state: the selected symbol and the latest market
// snapshot for it. Exactly one snapshot is kept; each poll overwrites it.
type State struct {
	mu       sync.RWMutex
	symbol   string
	snapshot *structs.Ticker24h
}

func NewState() *State {
	return &State{}
}

// Select changes the selected symbol and drops the previous snapshot, so a
// late response for the old symbol can never surface under the new one.
func (s *State) Select(symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.symbol = symbol
	s.snapshot = nil
}

func (s *State) Symbol() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.symbol
}

// ApplySnapshot stores a freshly fetched snapshot. Snapshots for a symbol
// that is no longer selected are discarded.
func (s *State) ApplySnapshot(t *structs.Ticker24h) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t == nil || t.Symbol != s.symbol {
		return false
	}

	s.snapshot = t

	return true
}

func (s *State) Snapshot() *structs.Ticker24h {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}
