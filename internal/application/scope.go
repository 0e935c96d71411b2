package application

import (
	"context"
	"fmt"

	"sitesettings/internal/domain"
)

type settingsKey struct{}

type localizationKey struct{}

// WithSettings returns a child context that provides store.
func WithSettings(ctx context.Context, store *SettingsStore) context.Context {
	return context.WithValue(ctx, settingsKey{}, store)
}

// SettingsFrom returns the store provided by WithSettings. It panics when ctx
// has none: that is a wiring bug, not a data problem.
func SettingsFrom(ctx context.Context) *SettingsStore {
	store, ok := ctx.Value(settingsKey{}).(*SettingsStore)
	if !ok || store == nil {
		panic(fmt.Errorf("application.SettingsFrom: %w", domain.ErrOutsideProvider))
	}
	return store
}

// WithLocalization returns a child context that provides l.
func WithLocalization(ctx context.Context, l *Localization) context.Context {
	return context.WithValue(ctx, localizationKey{}, l)
}

// LocalizationFrom returns the localization provided by WithLocalization. It
// panics when ctx has none.
func LocalizationFrom(ctx context.Context) *Localization {
	l, ok := ctx.Value(localizationKey{}).(*Localization)
	if !ok || l == nil {
		panic(fmt.Errorf("application.LocalizationFrom: %w", domain.ErrOutsideProvider))
	}
	return l
}
