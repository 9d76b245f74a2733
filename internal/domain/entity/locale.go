package entity

import "golang.org/x/text/language"

// Locale identifies a display language. The value set is closed and uses
// the translation catalog keys, which are not all well-formed BCP 47 tags
// ("kz" is the historical catalog key for Kazakh).
type Locale string

const (
	// LocaleEnglish is the fixed fallback locale.
	LocaleEnglish Locale = "en"
	// LocaleRussian is the Russian display locale.
	LocaleRussian Locale = "ru"
	// LocaleKazakh is the Kazakh display locale.
	LocaleKazakh Locale = "kz"

	// DefaultLocale is used when no persisted choice exists and the
	// environment locale is outside the supported set.
	DefaultLocale = LocaleEnglish
)

// String returns the string representation of the Locale.
func (l Locale) String() string {
	return string(l)
}

// IsValid checks if the Locale is a supported value.
func (l Locale) IsValid() bool {
	switch l {
	case LocaleEnglish, LocaleRussian, LocaleKazakh:
		return true
	default:
		return false
	}
}

// SupportedLocales returns the closed set of supported locales in
// matcher-priority order.
func SupportedLocales() []Locale {
	return []Locale{LocaleEnglish, LocaleRussian, LocaleKazakh}
}

// localeTags mirrors SupportedLocales index for index with proper BCP 47 tags.
var localeTags = []language.Tag{language.English, language.Russian, language.Kazakh}

var localeMatcher = language.NewMatcher(localeTags)

// MatchLocale resolves an arbitrary BCP 47 tag string (e.g. from the process
// environment) against the supported set. Unparseable or unsupported values
// resolve to the default.
func MatchLocale(raw string) Locale {
	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultLocale
	}

	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return DefaultLocale
	}

	return SupportedLocales()[index]
}
