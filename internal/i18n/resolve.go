package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Match maps any tag onto one of Supported.
func Match(tags ...language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tags...)
	return Supported[idx]
}

// Parse matches a single language value such as "en" or "fr-CA". The bool is
// false when value is blank or unparseable.
func Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	return Match(tag), true
}

// Resolve picks the request language: an explicit query value first, then
// the cookie, then Accept-Language, then fallback. persist is true when the
// query value won and should be remembered in the cookie.
func Resolve(query, cookie, acceptLanguage string, fallback language.Tag) (tag language.Tag, persist bool) {
	if t, ok := Parse(query); ok {
		return t, true
	}
	if t, ok := Parse(cookie); ok {
		return t, false
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Match(tags...), false
		}
	}
	return Match(fallback), false
}
