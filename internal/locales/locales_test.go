package locales

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryMessageHasSpanishTranslation(t *testing.T) {
	for _, key := range messages {
		text, ok := spanish[key]
		if assert.Truef(t, ok, "missing spanish text for %q", key) {
			assert.Equalf(t, strings.Count(key, "%s"), strings.Count(text, "%s"), "placeholder count differs for %q", key)
		}
	}
	assert.Len(t, spanish, len(messages))
}

func TestMatch(t *testing.T) {
	cases := map[string]Locale{
		"":        English,
		"en":      English,
		"en-GB":   English,
		"es":      Spanish,
		"es-MX":   Spanish,
		"fr":      English,
		"garbage": English,
	}
	for in, want := range cases {
		assert.Equalf(t, want, Match(in), "Match(%q)", in)
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	loc, ok := FromAcceptLanguage("es-AR,es;q=0.9,en;q=0.5")
	assert.True(t, ok)
	assert.Equal(t, Spanish, loc)

	loc, ok = FromAcceptLanguage("")
	assert.False(t, ok)
	assert.Equal(t, Default, loc)
}

func TestSprintfUsesRequestedLocale(t *testing.T) {
	assert.Equal(t, "Hello, Ana! ", Sprintf(English, MsgGreeting, "Ana"))
	assert.Equal(t, "¡Hola, Ana! ", Sprintf(Spanish, MsgGreeting, "Ana"))

	// interleaved lookups do not leak language between calls
	assert.Equal(t, "Profile updated for Bo", Sprintf(English, MsgProfileUpdated, "Bo"))
	assert.Equal(t, "Perfil actualizado para Bo", Sprintf(Spanish, MsgProfileUpdated, "Bo"))
}

func TestSprintfKeepsPreformattedNumbers(t *testing.T) {
	got := Sprintf(English, MsgCalorieAligned, "2000", "2511")
	assert.Equal(t, "Your calorie target of 2000kcal is well-aligned with your estimated daily needs (2511kcal).", got)
}
