package entities

import "strings"

// TranslationTable is the read-only nested string table of one language.
type TranslationTable struct {
	language Language
	root     map[string]any
}

// NewTranslationTable wraps root as the table of lang. The caller hands over
// ownership of root and must not mutate it afterwards.
func NewTranslationTable(lang Language, root map[string]any) *TranslationTable {
	if root == nil {
		root = map[string]any{}
	}
	return &TranslationTable{language: lang, root: root}
}

// Language returns the language the table belongs to.
func (t *TranslationTable) Language() Language {
	return t.language
}

// Lookup walks the dot-separated key through nested tables. It reports false
// when a segment is missing, when an intermediate value is not a table, or
// when the terminal value is not a string.
func (t *TranslationTable) Lookup(key string) (string, bool) {
	if t == nil || key == "" {
		return "", false
	}
	var cur any = t.root
	for _, seg := range strings.Split(key, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur, ok = node[seg]
		if !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}

// Missing returns the keys from keys that do not resolve to a string.
func (t *TranslationTable) Missing(keys []MessageKey) []MessageKey {
	var out []MessageKey
	for _, k := range keys {
		if _, ok := t.Lookup(string(k)); !ok {
			out = append(out, k)
		}
	}
	return out
}
