// Package coachtext turns structured engine results into user-facing text.
package coachtext

import (
	"strings"

	"github.com/claude/repsense/internal/workout"
)

// Language represents a supported language.
type Language string

const (
	// French is the French language.
	French Language = "fr"
	// English is the English language.
	English Language = "en"
)

// DefaultLanguage is the fallback language.
const DefaultLanguage = French

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{French, English}
}

// IsSupported checks if a language is supported.
func IsSupported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// ParseLanguage maps a language code or tag ("en-US", "FR") to a supported
// language, falling back to the default.
func ParseLanguage(s string) Language {
	code := workout.Fold(s)
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	if lang := Language(code); IsSupported(lang) {
		return lang
	}
	return DefaultLanguage
}

// Translate returns the translation for the given key in the specified language.
// If the key is not found, it falls back to the default language.
// If still not found, it returns the key itself.
func Translate(lang Language, key string) string {
	if t, ok := translations[lang][key]; ok {
		return t
	}
	if lang != DefaultLanguage {
		if t, ok := translations[DefaultLanguage][key]; ok {
			return t
		}
	}
	return key
}

// render translates key and substitutes {name} placeholders.
func render(lang Language, key string, args map[string]string) string {
	msg := Translate(lang, key)
	if len(args) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
