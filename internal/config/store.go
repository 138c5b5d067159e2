package config

import "sync"

// Store holds the live configuration across file-watcher reloads. The UI
// polls Generation on its tick and re-reads the config when it changes,
// which keeps reload handling out of the render path entirely.
type Store struct {
	mu  sync.RWMutex
	cfg Config
	gen uint64
}

// NewStore returns a store seeded with cfg at generation 1.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg, gen: 1}
}

// Get returns the current config and its generation.
func (s *Store) Get() (Config, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.gen
}

// Generation returns the current generation counter.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Set replaces the config and bumps the generation.
func (s *Store) Set(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.gen++
}
