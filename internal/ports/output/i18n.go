package output

import "sitesettings/internal/domain/entities"

// T exposes templated message rendering for user-facing strings.
type T interface {
	// T renders the message identified by key for the given language.
	// data is an optional map used for template placeholders (may be nil).
	T(lang entities.Language, key string, data map[string]any) string
}

// TableResolver hands out the static translation table of a language.
type TableResolver interface {
	// Resolve returns the table of lang. There is no fallback between
	// languages: ok is false when lang has no catalog.
	Resolve(lang entities.Language) (table *entities.TranslationTable, ok bool)
}

// Catalog is the full translation backend consumed by the application layer.
type Catalog interface {
	T
	TableResolver
}
