package input

import (
	"context"

	"sitesettings/internal/domain/entities"
)

// SettingsUseCase is the settings surface UI components depend on.
type SettingsUseCase interface {
	Settings() entities.Settings
	UpdateSettings(ctx context.Context, partial entities.PartialSettings) (entities.Settings, error)
}

// LocalizationUseCase is the translation surface UI components depend on.
type LocalizationUseCase interface {
	T(key string) string
	Tf(key string, data map[string]any) string
	ChangeLanguage(ctx context.Context, lang entities.Language) error
	IsRTL() bool
	CurrentLanguage() entities.Language
}
