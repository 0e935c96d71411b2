package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"

	"sitesettings/internal/domain"
	"sitesettings/internal/domain/entities"
	"sitesettings/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.Catalog port.
var _ output.Catalog = (*Translator)(nil)

// Translator holds one immutable table per supported language, plus a go-i18n
// bundle built from the same files for templated messages.
type Translator struct {
	bundle *i18n.Bundle
	tables map[entities.Language]*entities.TranslationTable
}

// NewTranslator builds a Translator from the embedded active.*.toml files.
func NewTranslator(defaultLanguage entities.Language) (*Translator, error) {
	return NewTranslatorFS(localeFS, defaultLanguage)
}

// NewTranslatorFS builds a Translator from active.<tag>.toml files in fsys,
// one per supported language. Every file must define every
// entities.MessageKey; an incomplete catalog is an error.
func NewTranslatorFS(fsys fs.FS, defaultLanguage entities.Language) (*Translator, error) {
	if !defaultLanguage.Valid() {
		return nil, fmt.Errorf("i18n: default %w: %q", domain.ErrUnknownLanguage, defaultLanguage)
	}
	bundle := i18n.NewBundle(defaultLanguage.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	tables := make(map[entities.Language]*entities.TranslationTable)
	for _, lang := range entities.Languages() {
		file := CatalogFile(lang)
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", file, err)
		}

		var root map[string]any
		if err := toml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", file, err)
		}
		table := entities.NewTranslationTable(lang, root)
		if missing := table.Missing(entities.MessageKeys()); len(missing) > 0 {
			keys := make([]string, len(missing))
			for i, k := range missing {
				keys[i] = string(k)
			}
			return nil, fmt.Errorf("i18n: %s: %w: missing %s", file, domain.ErrIncompleteCatalog, strings.Join(keys, ", "))
		}
		tables[lang] = table

		if _, err := bundle.ParseMessageFileBytes(data, file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
	}

	return &Translator{
		bundle: bundle,
		tables: tables,
	}, nil
}

// CatalogFile returns the file name holding the catalog of lang.
func CatalogFile(lang entities.Language) string {
	return "active." + lang.Tag().String() + ".toml"
}

// Resolve returns the table of lang.
func (t *Translator) Resolve(lang entities.Language) (*entities.TranslationTable, bool) {
	table, ok := t.tables[lang]
	return table, ok
}

// T renders the message identified by key for the given language. There is
// no fallback between languages: a key the language's own catalog does not
// define renders as the key itself.
func (t *Translator) T(lang entities.Language, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	table, ok := t.tables[lang]
	if !ok {
		log.Printf("i18n: no catalog (key=%s, language=%s)", key, lang)
		return key
	}
	if _, ok := table.Lookup(key); !ok {
		log.Printf("i18n: missing translation (key=%s, language=%s)", key, lang)
		return key
	}

	localizer := i18n.NewLocalizer(t.bundle, lang.Tag().String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, language=%s): %v", key, lang, err)
		return key
	}
	return msg
}
