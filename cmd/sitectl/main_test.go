package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesettings/internal/application"
	"sitesettings/internal/config"
	"sitesettings/internal/domain/entities"
	"sitesettings/internal/infrastructure/i18n"
)

func TestOpenStorageDrivers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, cfg := range []*config.Config{
		{StorageDriver: config.DriverMemory},
		{StorageDriver: config.DriverFile, StoragePath: filepath.Join(dir, "files")},
		{StorageDriver: config.DriverSQLite, StoragePath: filepath.Join(dir, "site.db")},
	} {
		t.Run(cfg.StorageDriver, func(t *testing.T) {
			kv, closeStorage, err := openStorage(ctx, cfg)
			require.NoError(t, err)
			defer closeStorage()

			require.NoError(t, kv.Set(ctx, "k", []byte(`{}`)))
			got, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `{}`, string(got))

			closeStorage()
		})
	}

	_, _, err := openStorage(ctx, &config.Config{StorageDriver: "redis"})
	assert.Error(t, err)
}

func TestRunPersistsAcrossInvocations(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StorageDriver: config.DriverFile, StoragePath: t.TempDir()}
	tr, err := i18n.NewTranslator(entities.Hebrew)
	require.NoError(t, err)

	invoke := func(args ...string) string {
		kv, closeStorage, err := openStorage(ctx, cfg)
		require.NoError(t, err)
		defer closeStorage()

		store := application.NewSettingsStore(ctx, kv)
		loc := application.NewLocalization(store, tr)
		defer loc.Close()
		scoped := application.WithLocalization(application.WithSettings(ctx, store), loc)

		var out, errOut bytes.Buffer
		require.NoError(t, run(scoped, args, &out, &errOut))
		return out.String()
	}

	invoke("set", "-language", "english")
	assert.Equal(t, "Deliveries that run themselves\n", invoke("t", "heroTitle"))
}

func TestRunOutsideProviderPanics(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Panics(t, func() { _ = run(context.Background(), []string{"show"}, &out, &errOut) })
}
