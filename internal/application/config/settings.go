package config

import (
	"context"
	"sync"

	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// Settings holds the live config of the process and persists every change.
type Settings struct {
	store    ports.ConfigStore
	onChange func(domain.Config)

	mu      sync.RWMutex
	current domain.Config
}

// NewSettings loads the config once from store. A store that cannot
// produce a config yields the defaults.
func NewSettings(ctx context.Context, store ports.ConfigStore) *Settings {
	cfg, err := store.Load(ctx)
	if err != nil {
		cfg = domain.DefaultConfig()
	}
	return &Settings{store: store, current: cfg.Hydrate()}
}

// OnChange registers a hook run after every successful update.
func (s *Settings) OnChange(fn func(domain.Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Current returns a copy of the live config.
func (s *Settings) Current() domain.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies fn to a copy of the config and saves it. The live config
// only changes when the save succeeds, so memory and disk never disagree.
func (s *Settings) Update(fn func(*domain.Config) error) (domain.Config, error) {
	s.mu.Lock()
	next := s.current
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return s.Current(), err
	}
	if err := s.store.Save(next); err != nil {
		s.mu.Unlock()
		return s.Current(), err
	}
	s.current = next
	hook := s.onChange
	s.mu.Unlock()

	if hook != nil {
		hook(next)
	}
	return next, nil
}

// Reset restores and persists the factory defaults.
func (s *Settings) Reset() (domain.Config, error) {
	return s.Update(func(cfg *domain.Config) error {
		*cfg = domain.DefaultConfig()
		return nil
	})
}

// Path returns the backing settings file.
func (s *Settings) Path() string {
	return s.store.Path()
}

var _ ports.Settings = (*Settings)(nil)
