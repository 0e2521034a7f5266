// Package i18n localises user-facing messages. Messages are English keys; the German table is the
// primary locale and English falls back to the key itself.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

const (
	LocaleGerman  = "de"
	LocaleEnglish = "en"
)

// Translator is built once at start-up and is read-only afterwards.
type Translator struct {
	matcher language.Matcher
	locales []string
	tables  map[string]map[string]string
}

// NewTranslator returns a Translator whose default locale is defaultLocale ("de" or "en").
// Unknown values fall back to German.
func NewTranslator(defaultLocale string) *Translator {
	locales := []string{LocaleGerman, LocaleEnglish}
	if defaultLocale == LocaleEnglish {
		locales = []string{LocaleEnglish, LocaleGerman}
	}

	tags := make([]language.Tag, len(locales))
	for i, locale := range locales {
		tags[i] = language.MustParse(locale)
	}

	return &Translator{
		matcher: language.NewMatcher(tags),
		locales: locales,
		tables: map[string]map[string]string{
			LocaleGerman: german,
		},
	}
}

// DefaultLocale is used when the client states no usable preference.
func (t *Translator) DefaultLocale() string {
	return t.locales[0]
}

// Locale picks the best supported locale for an Accept-Language header value.
func (t *Translator) Locale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.DefaultLocale()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.DefaultLocale()
	}
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.DefaultLocale()
	}
	return t.locales[index]
}

// Translate renders msg in locale, formatting args into it. Missing entries render the key itself.
func (t *Translator) Translate(locale, msg string, args ...any) string {
	format := msg
	if table, ok := t.tables[locale]; ok {
		if translated, ok := table[msg]; ok {
			format = translated
		}
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
