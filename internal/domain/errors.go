package domain

import "errors"

// Domain errors.
var (
	ErrUnknownLanguage   = errors.New("unknown language")
	ErrUnknownTheme      = errors.New("unknown theme")
	ErrKeyNotFound       = errors.New("storage key not found")
	ErrCorruptSettings   = errors.New("persisted settings are not valid JSON")
	ErrOutsideProvider   = errors.New("settings accessed outside of a provider scope")
	ErrIncompleteCatalog = errors.New("translation catalog is incomplete")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrUnknownLanguage, "unknown_language"},
	{ErrUnknownTheme, "unknown_theme"},
	{ErrKeyNotFound, "key_not_found"},
	{ErrCorruptSettings, "corrupt_settings"},
	{ErrOutsideProvider, "outside_provider"},
	{ErrIncompleteCatalog, "incomplete_catalog"},
}

// Code returns the stable code of the first domain error found in err's chain,
// or "" when err carries none.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
