package content

import "sync"

// Shared is a text cell written by event handling and read by rendering.
// The compositor holds a pointer to it, so renders always see the latest
// value without copying on every update.
type Shared struct {
	mu    sync.RWMutex
	value string
}

// NewShared creates a cell holding value
func NewShared(value string) *Shared {
	return &Shared{value: value}
}

// Set replaces the cell's value
func (s *Shared) Set(value string) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
}

// String returns the cell's current value
func (s *Shared) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}
