/*
Package locales owns every user-facing string. Lookups always take the
locale explicitly, so no request can change the language of another.
*/
package locales

import (
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Locale is a supported UI language.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

// Default is used when nothing better can be negotiated.
const Default = English

var (
	supported = []language.Tag{language.English, language.Spanish}
	byTag     = []Locale{English, Spanish}
	matcher   = language.NewMatcher(supported)
	cat       *catalog.Builder
)

func init() {
	cat = catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range messages {
		if err := cat.SetString(language.English, key, key); err != nil {
			log.Fatal().Err(err).Str("key", key).Msg("locales: invalid english message")
		}
	}
	for key, text := range spanish {
		if err := cat.SetString(language.Spanish, key, text); err != nil {
			log.Fatal().Err(err).Str("key", key).Msg("locales: invalid spanish message")
		}
	}
}

// All returns the supported locales, default first.
func All() []Locale {
	out := make([]Locale, len(byTag))
	copy(out, byTag)
	return out
}

// Tag returns the BCP 47 tag for l.
func (l Locale) Tag() language.Tag {
	for i, loc := range byTag {
		if loc == l {
			return supported[i]
		}
	}
	return language.English
}

func (l Locale) String() string { return string(l) }

// Match negotiates the closest supported locale for a tag such as "es-MX".
// Empty or unknown input yields Default.
func Match(s string) Locale {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return byTag[idx]
}

// FromAcceptLanguage negotiates a locale from an Accept-Language header.
// ok is false when the header is absent or nothing in it matches.
func FromAcceptLanguage(header string) (loc Locale, ok bool) {
	if strings.TrimSpace(header) == "" {
		return Default, false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default, false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default, false
	}
	return byTag[idx], true
}

// Sprintf formats the message registered under key in locale l. Numbers are
// expected pre-formatted as strings so output does not depend on digit grouping.
func Sprintf(l Locale, key string, args ...any) string {
	p := message.NewPrinter(l.Tag(), message.Catalog(cat))
	return p.Sprintf(key, args...)
}

// Join renders a list with the separator used for inline enumerations.
func Join(items []string) string {
	return strings.Join(items, ", ")
}
