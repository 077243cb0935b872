// Package i18n defines the supported languages and tag matching rules.
package i18n

import (
	"strings"

	"github.com/louisbranch/karta/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	supportedTags = []language.Tag{
		language.MustParse(catalog.BaseLocale),
		language.MustParse("pl-PL"),
	}
	matcher = language.NewMatcher(supportedTags)
)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback language tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag resolves a raw language value to a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Tag{}, false
	}
	return supportedTags[index], true
}

// MatchTags picks the best supported tag for an ordered preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}
