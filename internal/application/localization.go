package application

import (
	"context"
	"log"
	"sync/atomic"

	"sitesettings/internal/domain/entities"
	"sitesettings/internal/ports/input"
	"sitesettings/internal/ports/output"
)

var _ input.LocalizationUseCase = (*Localization)(nil)

// Localization resolves strings for the language held by a SettingsStore.
type Localization struct {
	store       *SettingsStore
	catalog     output.Catalog
	table       atomic.Pointer[entities.TranslationTable]
	unsubscribe func()
}

// NewLocalization binds catalog to store. The active table follows the
// store's language: it is swapped inside every committed update, so the next
// T call after a language change already sees the new table.
func NewLocalization(store *SettingsStore, catalog output.Catalog) *Localization {
	l := &Localization{store: store, catalog: catalog}
	l.activate(store.Get().Language)
	l.unsubscribe = store.Subscribe(func(s entities.Settings) {
		if cur := l.table.Load(); cur == nil || cur.Language() != s.Language {
			l.activate(s.Language)
		}
	})
	return l
}

func (l *Localization) activate(lang entities.Language) {
	table, ok := l.catalog.Resolve(lang)
	if !ok {
		log.Printf("i18n: no catalog for language %q", lang)
		table = entities.NewTranslationTable(lang, nil)
	}
	l.table.Store(table)
}

// Close detaches the localization from its store.
func (l *Localization) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}

// T returns the string stored under the dotted key in the active table. When
// the key does not resolve to a string, it logs and returns key unchanged.
func (l *Localization) T(key string) string {
	table := l.table.Load()
	if s, ok := table.Lookup(key); ok {
		return s
	}
	log.Printf("i18n: missing translation (key=%s, language=%s)", key, table.Language())
	return key
}

// Tf renders the templated message under key for the active language.
func (l *Localization) Tf(key string, data map[string]any) string {
	return l.catalog.T(l.CurrentLanguage(), key, data)
}

// ChangeLanguage switches the active language through the settings store.
func (l *Localization) ChangeLanguage(ctx context.Context, lang entities.Language) error {
	_, err := l.store.Update(ctx, entities.PartialSettings{Language: &lang})
	return err
}

// IsRTL reports whether the active language is written right to left.
func (l *Localization) IsRTL() bool {
	return l.CurrentLanguage().Direction() == entities.RTL
}

// CurrentLanguage returns the active language.
func (l *Localization) CurrentLanguage() entities.Language {
	return l.table.Load().Language()
}

// Settings returns the settings snapshot the localization is bound to.
func (l *Localization) Settings() entities.Settings {
	return l.store.Get()
}

// UpdateSettings forwards to the settings store.
func (l *Localization) UpdateSettings(ctx context.Context, partial entities.PartialSettings) (entities.Settings, error) {
	return l.store.Update(ctx, partial)
}
