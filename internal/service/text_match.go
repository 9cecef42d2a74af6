package service

import (
	"strings"

	"hospital-dashboard/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// textMatcher holds a lower-cased query for repeated substring tests.
// It is not safe for concurrent use.
type textMatcher struct {
	raw    string
	folded string
	lower  cases.Caser
}

func newTextMatcher(query string) *textMatcher {
	lower := cases.Lower(language.Und)
	return &textMatcher{
		raw:    query,
		folded: lower.String(query),
		lower:  lower,
	}
}

// empty reports whether the query constrains nothing.
func (m *textMatcher) empty() bool {
	return m.raw == ""
}

// matchFold is a case-insensitive substring test.
func (m *textMatcher) matchFold(field string) bool {
	return strings.Contains(m.lower.String(field), m.folded)
}

// matchExact is a case-sensitive substring test, used for scripts without case.
func (m *textMatcher) matchExact(field string) bool {
	return strings.Contains(field, m.raw)
}

// matchesCategory is the exact-equality test behind every categorical filter.
func matchesCategory(selected, value string) bool {
	return selected == "" || selected == entity.FilterAll || selected == value
}
