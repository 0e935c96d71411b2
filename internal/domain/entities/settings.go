package entities

import (
	"encoding/json"
	"maps"
	"sort"

	"golang.org/x/text/language"
)

// Language is a supported site locale.
type Language string

const (
	Hebrew  Language = "hebrew"
	English Language = "english"
)

// DefaultLanguage is the language a fresh visitor sees.
const DefaultLanguage = Hebrew

// Direction is the text layout direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Theme is the visual theme of the site.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

type languageInfo struct {
	direction Direction
	tag       language.Tag
}

// Adding a locale means adding an entry here and a catalog file.
var languages = map[Language]languageInfo{
	Hebrew:  {direction: RTL, tag: language.Hebrew},
	English: {direction: LTR, tag: language.English},
}

// Languages returns every supported language, sorted.
func Languages() []Language {
	out := make([]Language, 0, len(languages))
	for l := range languages {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	_, ok := languages[l]
	return ok
}

// Direction returns the canonical writing direction of l. Unknown languages
// are laid out left to right.
func (l Language) Direction() Direction {
	if info, ok := languages[l]; ok {
		return info.direction
	}
	return LTR
}

// Tag returns the BCP 47 tag of l, or language.Und when l is unknown.
func (l Language) Tag() language.Tag {
	if info, ok := languages[l]; ok {
		return info.tag
	}
	return language.Und
}

// Valid reports whether t is a supported theme.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Settings is the persisted preference bundle of a visitor.
//
// Direction always matches Language. It is derived, never assigned by callers:
// build values with DefaultSettings and change them with Apply.
type Settings struct {
	Language  Language
	Direction Direction
	Theme     Theme
	// Extra keeps persisted fields this version does not know about.
	Extra map[string]json.RawMessage
}

// PartialSettings is an update request. Nil fields are left untouched.
// There is no direction field: direction follows language.
type PartialSettings struct {
	Language *Language
	Theme    *Theme
}

// DefaultSettings returns the compiled-in settings for lang.
func DefaultSettings(lang Language) Settings {
	return Settings{
		Language:  lang,
		Direction: lang.Direction(),
		Theme:     Light,
	}
}

// Apply returns s with p merged over it and the direction recomputed.
func (s Settings) Apply(p PartialSettings) Settings {
	out := s.Clone()
	if p.Language != nil {
		out.Language = *p.Language
	}
	if p.Theme != nil {
		out.Theme = *p.Theme
	}
	out.Direction = out.Language.Direction()
	return out
}

// IsRTL reports whether the settings lay text out right to left.
func (s Settings) IsRTL() bool {
	return s.Direction == RTL
}

// Clone returns a copy of s that shares no memory with it.
func (s Settings) Clone() Settings {
	out := s
	if s.Extra != nil {
		out.Extra = maps.Clone(s.Extra)
	}
	return out
}

// MarshalJSON writes s as one flat object, extra fields included.
func (s Settings) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(s.Extra)+3)
	for k, v := range s.Extra {
		obj[k] = v
	}
	obj["language"] = s.Language
	obj["direction"] = s.Direction
	obj["theme"] = s.Theme
	return json.Marshal(obj)
}

// UnmarshalJSON merges a JSON object over s. Fields absent from data keep
// their current value, and unknown fields are collected into Extra.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj == nil {
		// JSON null.
		return nil
	}
	for k, raw := range obj {
		var err error
		switch k {
		case "language":
			err = json.Unmarshal(raw, &s.Language)
		case "direction":
			err = json.Unmarshal(raw, &s.Direction)
		case "theme":
			err = json.Unmarshal(raw, &s.Theme)
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]json.RawMessage)
			}
			s.Extra[k] = raw
		}
		if err != nil {
			return err
		}
	}
	return nil
}
