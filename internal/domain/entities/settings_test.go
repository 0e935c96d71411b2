package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLanguageDirection(t *testing.T) {
	assert.Equal(t, RTL, Hebrew.Direction())
	assert.Equal(t, LTR, English.Direction())
	assert.Equal(t, LTR, Language("klingon").Direction())
}

func TestLanguageTag(t *testing.T) {
	assert.Equal(t, language.Hebrew, Hebrew.Tag())
	assert.Equal(t, language.English, English.Tag())
	assert.Equal(t, language.Und, Language("klingon").Tag())
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []Language{English, Hebrew}, Languages())
	for _, l := range Languages() {
		assert.True(t, l.Valid())
	}
	assert.False(t, Language("").Valid())
}

func TestDefaultSettings(t *testing.T) {
	assert.Equal(t, Settings{Language: Hebrew, Direction: RTL, Theme: Light}, DefaultSettings(Hebrew))
	assert.Equal(t, Settings{Language: English, Direction: LTR, Theme: Light}, DefaultSettings(English))
}

func TestApplyDerivesDirection(t *testing.T) {
	base := DefaultSettings(Hebrew)
	for _, l := range Languages() {
		l := l
		got := base.Apply(PartialSettings{Language: &l})
		assert.Equal(t, l, got.Language)
		assert.Equal(t, l.Direction(), got.Direction)
		assert.Equal(t, Light, got.Theme)
	}
}

func TestApplyEmptyIsIdentity(t *testing.T) {
	base := DefaultSettings(English)
	assert.Equal(t, base, base.Apply(PartialSettings{}))
}

func TestApplyRepairsDirection(t *testing.T) {
	broken := Settings{Language: Hebrew, Direction: LTR, Theme: Dark}
	assert.Equal(t, RTL, broken.Apply(PartialSettings{}).Direction)
}

func TestApplyDoesNotShareExtra(t *testing.T) {
	base := DefaultSettings(Hebrew)
	base.Extra = map[string]json.RawMessage{"fontSize": json.RawMessage(`14`)}
	dark := Dark
	got := base.Apply(PartialSettings{Theme: &dark})
	got.Extra["fontSize"] = json.RawMessage(`18`)
	assert.JSONEq(t, `14`, string(base.Extra["fontSize"]))
}

func TestSettingsJSON(t *testing.T) {
	s := DefaultSettings(Hebrew)
	s.Extra = map[string]json.RawMessage{"fontSize": json.RawMessage(`14`)}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"language":"hebrew","direction":"rtl","theme":"light","fontSize":14}`, string(data))

	got := DefaultSettings(English)
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, s, got)
}

func TestSettingsUnmarshalMergesOverCurrent(t *testing.T) {
	got := DefaultSettings(Hebrew)
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"dark"}`), &got))
	assert.Equal(t, Settings{Language: Hebrew, Direction: RTL, Theme: Dark}, got)

	require.NoError(t, json.Unmarshal([]byte(`null`), &got))
	assert.Equal(t, Dark, got.Theme)
}

func TestSettingsUnmarshalRejectsNonObject(t *testing.T) {
	var s Settings
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"language":7}`), &s))
}
