package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"sitesettings/internal/domain"
	"sitesettings/internal/domain/entities"
	"sitesettings/internal/ports/input"
	"sitesettings/internal/ports/output"
)

// DefaultStorageKey is the storage key settings are persisted under.
const DefaultStorageKey = "siteSettings"

var _ input.SettingsUseCase = (*SettingsStore)(nil)

// LoadResult is the outcome of reading persisted settings. When Err is nil the
// settings were restored from storage; otherwise Settings holds the defaults.
type LoadResult struct {
	Settings entities.Settings
	Err      error
}

// Restored reports whether the settings came from storage.
func (r LoadResult) Restored() bool {
	return r.Err == nil
}

// LoadSettings reads the blob under key and merges it over defaults.
//
// A stored direction is never trusted: it is recomputed from the merged
// language. Unknown languages or themes fall back to the default value.
func LoadSettings(ctx context.Context, kv output.KeyValueStore, key string, defaults entities.Settings) LoadResult {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return LoadResult{Settings: defaults.Clone(), Err: fmt.Errorf("read %q: %w", key, err)}
	}

	merged := defaults.Clone()
	if err := json.Unmarshal(raw, &merged); err != nil {
		return LoadResult{
			Settings: defaults.Clone(),
			Err:      fmt.Errorf("decode %q: %w: %v", key, domain.ErrCorruptSettings, err),
		}
	}
	if !merged.Language.Valid() {
		log.Printf("settings: ignoring stored language %q", merged.Language)
		merged.Language = defaults.Language
	}
	if !merged.Theme.Valid() {
		log.Printf("settings: ignoring stored theme %q", merged.Theme)
		merged.Theme = defaults.Theme
	}
	merged.Direction = merged.Language.Direction()
	return LoadResult{Settings: merged}
}

// SettingsStore owns the current settings and writes every change through to
// a KeyValueStore.
type SettingsStore struct {
	kv       output.KeyValueStore
	key      string
	defaults entities.Settings

	// updateMu serializes Update end to end: commit, notify, persist.
	updateMu sync.Mutex

	mu        sync.RWMutex
	current   entities.Settings
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(entities.Settings)
}

// StoreOption configures a SettingsStore.
type StoreOption func(*SettingsStore)

// WithStorageKey overrides DefaultStorageKey.
func WithStorageKey(key string) StoreOption {
	return func(s *SettingsStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithDefaultLanguage sets the language used when nothing is persisted.
// Unsupported languages are ignored.
func WithDefaultLanguage(lang entities.Language) StoreOption {
	return func(s *SettingsStore) {
		if lang.Valid() {
			s.defaults = entities.DefaultSettings(lang)
		}
	}
}

// NewSettingsStore builds a store and restores its settings from kv. It always
// yields a usable store: read or decode failures are logged and the defaults
// are used instead.
func NewSettingsStore(ctx context.Context, kv output.KeyValueStore, opts ...StoreOption) *SettingsStore {
	s := &SettingsStore{
		kv:       kv,
		key:      DefaultStorageKey,
		defaults: entities.DefaultSettings(entities.DefaultLanguage),
	}
	for _, opt := range opts {
		opt(s)
	}

	res := LoadSettings(ctx, kv, s.key, s.defaults)
	switch {
	case res.Restored():
	case errors.Is(res.Err, domain.ErrKeyNotFound):
		log.Printf("settings: nothing stored under %q, using defaults", s.key)
	default:
		log.Printf("settings: failed to restore, using defaults: %v", res.Err)
	}
	s.current = res.Settings
	return s
}

// Key returns the storage key of the store.
func (s *SettingsStore) Key() string {
	return s.key
}

// Get returns a snapshot of the current settings.
func (s *SettingsStore) Get() entities.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Settings implements input.SettingsUseCase.
func (s *SettingsStore) Settings() entities.Settings {
	return s.Get()
}

// UpdateSettings implements input.SettingsUseCase.
func (s *SettingsStore) UpdateSettings(ctx context.Context, partial entities.PartialSettings) (entities.Settings, error) {
	return s.Update(ctx, partial)
}

// Update merges partial into the current settings, recomputes the direction
// and persists the full result. Unknown languages and themes are rejected
// without any change.
//
// Concurrent updates are applied one at a time, so listeners and storage see
// them in commit order. The new value is committed and listeners are notified
// before the write, so a failed write is returned but does not roll the
// settings back. Listeners may call Get but must not call Update.
func (s *SettingsStore) Update(ctx context.Context, partial entities.PartialSettings) (entities.Settings, error) {
	if partial.Language != nil && !partial.Language.Valid() {
		return s.Get(), fmt.Errorf("update settings: %w: %q", domain.ErrUnknownLanguage, *partial.Language)
	}
	if partial.Theme != nil && !partial.Theme.Valid() {
		return s.Get(), fmt.Errorf("update settings: %w: %q", domain.ErrUnknownTheme, *partial.Theme)
	}

	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	s.mu.Lock()
	s.current = s.current.Apply(partial)
	next := s.current.Clone()
	listeners := append([]listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(next.Clone())
	}

	data, err := json.Marshal(next)
	if err != nil {
		return next, fmt.Errorf("encode settings: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		log.Printf("settings: failed to persist %q: %v", s.key, err)
		return next, fmt.Errorf("persist settings: %w", err)
	}
	return next, nil
}

// Subscribe registers fn to be called synchronously, in registration order,
// after every committed update. The returned function removes fn.
func (s *SettingsStore) Subscribe(fn func(entities.Settings)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
