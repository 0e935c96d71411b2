package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesettings/internal/domain"
	"sitesettings/internal/domain/entities"
	"sitesettings/internal/infrastructure/i18n"
	"sitesettings/internal/infrastructure/memory"
)

const (
	heroHebrew  = "משלוחים שמנהלים את עצמם"
	heroEnglish = "Deliveries that run themselves"
)

func newLocalization(t *testing.T) (*Localization, *SettingsStore, *memory.Store) {
	t.Helper()
	tr, err := i18n.NewTranslator(entities.Hebrew)
	require.NoError(t, err)
	kv := memory.NewStore()
	store := NewSettingsStore(context.Background(), kv)
	l := NewLocalization(store, tr)
	t.Cleanup(l.Close)
	return l, store, kv
}

func TestLocalizationDefaults(t *testing.T) {
	l, _, _ := newLocalization(t)

	assert.Equal(t, entities.Hebrew, l.CurrentLanguage())
	assert.True(t, l.IsRTL())
	assert.Equal(t, entities.DefaultSettings(entities.Hebrew), l.Settings())
	assert.Equal(t, heroHebrew, l.T("heroTitle"))
}

func TestLocalizationChangeLanguage(t *testing.T) {
	ctx := context.Background()
	l, store, kv := newLocalization(t)

	require.NoError(t, l.ChangeLanguage(ctx, entities.English))
	assert.Equal(t, heroEnglish, l.T("heroTitle"))
	assert.Equal(t, entities.English, l.CurrentLanguage())
	assert.False(t, l.IsRTL())
	assert.Equal(t, entities.LTR, store.Get().Direction)
	assert.Equal(t, 1, kv.Writes())

	require.NoError(t, l.ChangeLanguage(ctx, entities.Hebrew))
	assert.Equal(t, heroHebrew, l.T("heroTitle"))
}

func TestLocalizationFollowsDirectStoreUpdates(t *testing.T) {
	ctx := context.Background()
	l, store, _ := newLocalization(t)

	english := entities.English
	_, err := store.Update(ctx, entities.PartialSettings{Language: &english})
	require.NoError(t, err)
	assert.Equal(t, heroEnglish, l.T("heroTitle"))

	hebrew := entities.Hebrew
	_, err = l.UpdateSettings(ctx, entities.PartialSettings{Language: &hebrew})
	require.NoError(t, err)
	assert.Equal(t, heroHebrew, l.T("heroTitle"))
}

func TestLocalizationChangeLanguageRejectsUnknown(t *testing.T) {
	l, _, kv := newLocalization(t)

	err := l.ChangeLanguage(context.Background(), "klingon")
	assert.ErrorIs(t, err, domain.ErrUnknownLanguage)
	assert.Equal(t, entities.Hebrew, l.CurrentLanguage())
	assert.Equal(t, 0, kv.Writes())
}

func TestLocalizationMissingKeys(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newLocalization(t)

	for _, lang := range entities.Languages() {
		require.NoError(t, l.ChangeLanguage(ctx, lang))
		assert.Equal(t, "nonexistent.key", l.T("nonexistent.key"))
		assert.Equal(t, "problem", l.T("problem"))
		assert.Equal(t, "heroTitle.sub", l.T("heroTitle.sub"))
		assert.Equal(t, "", l.T(""))
	}
}

func TestLocalizationEveryKeyResolves(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newLocalization(t)

	for _, lang := range entities.Languages() {
		require.NoError(t, l.ChangeLanguage(ctx, lang))
		for _, key := range entities.MessageKeys() {
			assert.NotEqual(t, string(key), l.T(string(key)), "%s/%s", lang, key)
		}
	}
}

func TestLocalizationTf(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newLocalization(t)

	require.NoError(t, l.ChangeLanguage(ctx, entities.English))
	assert.Equal(t, "© 2026 Shipwise. All rights reserved.", l.Tf("footer.copyright", map[string]any{"Year": 2026}))
	assert.Equal(t, "missing.key", l.Tf("missing.key", nil))
}

func TestLocalizationCloseStopsFollowing(t *testing.T) {
	ctx := context.Background()
	l, store, _ := newLocalization(t)
	l.Close()

	english := entities.English
	_, err := store.Update(ctx, entities.PartialSettings{Language: &english})
	require.NoError(t, err)
	assert.Equal(t, entities.Hebrew, l.CurrentLanguage())
}

type emptyCatalog struct{}

func (emptyCatalog) T(_ entities.Language, key string, _ map[string]any) string { return key }

func (emptyCatalog) Resolve(entities.Language) (*entities.TranslationTable, bool) { return nil, false }

func TestLocalizationWithoutCatalog(t *testing.T) {
	store := NewSettingsStore(context.Background(), memory.NewStore())
	l := NewLocalization(store, emptyCatalog{})
	defer l.Close()

	assert.Equal(t, entities.Hebrew, l.CurrentLanguage())
	assert.Equal(t, "heroTitle", l.T("heroTitle"))
}

func TestLocalizationConcurrentChangeLanguage(t *testing.T) {
	ctx := context.Background()
	l, store, kv := newLocalization(t)

	// A slow listener, like a document applier, widens any ordering gap.
	unsubscribe := store.Subscribe(func(s entities.Settings) {
		time.Sleep(time.Duration(len(s.Language)) * 10 * time.Microsecond)
	})
	defer unsubscribe()

	langs := []entities.Language{entities.Hebrew, entities.English}
	for round := 0; round < 50; round++ {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(lang entities.Language) {
				defer wg.Done()
				assert.NoError(t, l.ChangeLanguage(ctx, lang))
			}(langs[(round+i)%len(langs)])
		}
		wg.Wait()

		live := store.Get()
		require.Equal(t, live.Language, l.CurrentLanguage(), "round %d", round)
		require.Equal(t, live.IsRTL(), l.IsRTL(), "round %d", round)
		restored := NewSettingsStore(ctx, kv).Get()
		require.Equal(t, live, restored, "round %d", round)
	}
}
