// Package tagging matches video captions against the configured tag taxonomy.
package tagging

import (
	"regexp"
	"strings"

	"github.com/karpix25/parser-mass/internal/domain"
)

var (
	nonTokenRe   = regexp.MustCompile(`[^a-zA-Zа-яА-ЯёЁ0-9#]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize reduces free text to the form tags are matched against:
// only letters, digits and '#' survive, whitespace is collapsed, lowercase.
func Normalize(text string) string {
	s := strings.TrimSpace(text)
	s = nonTokenRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// Match is the result of running a caption through the rule set.
type Match struct {
	ClientTag *string
	Company   *string
	Product   *string
	Matched   []string
}

// Tags tests every rule against the normalized text. A tag matches when it
// occurs anywhere in the text, including inside compound tokens
// ("#summerpromo" matches the rule "promo"). All matching tags are joined
// into ClientTag; Company and Product come from the first matching rule
// that carries a non-empty value.
func Tags(text string, rules []domain.TagRule) Match {
	var m Match
	clean := Normalize(text)

	for _, r := range rules {
		tag := strings.ToLower(strings.TrimSpace(r.Tag))
		if tag == "" || !strings.Contains(clean, tag) {
			continue
		}
		m.Matched = append(m.Matched, "#"+tag)
		if m.Company == nil && r.Company != "" {
			company := r.Company
			m.Company = &company
		}
		if m.Product == nil && r.Product != "" {
			product := r.Product
			m.Product = &product
		}
	}

	if len(m.Matched) > 0 {
		joined := strings.Join(m.Matched, ", ")
		m.ClientTag = &joined
	}
	return m
}
