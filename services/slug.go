package services

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Matches anything that is not a lowercase letter, digit, whitespace, or hyphen.
	slugStripRe = regexp.MustCompile(`[^a-z0-9\s-]`)
	// Matches runs of whitespace (for replacement with a single hyphen).
	slugSpaceRe = regexp.MustCompile(`\s+`)
	// Matches runs of consecutive hyphens.
	slugDashRe = regexp.MustCompile(`-+`)
)

// Slugify converts free text into a URL-safe slug:
//
//	"Hello, World!"  → "hello-world"
//	"  multiple   spaces--and--dashes  " → "multiple-spaces-and-dashes"
//
// Deterministic and idempotent. Empty input yields an empty slug; callers that
// need a non-empty identifier handle that case themselves.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// UniqueSlug resolves candidate against the existing rows probed by exists,
// appending -1, -2, -3, … until a free slug is found. Each probed value calls
// exists exactly once, and the row count being finite guarantees termination.
// The function itself persists nothing; the caller owns the insert, and the
// store's unique constraint remains the backstop against a concurrent create
// winning the same slug.
func UniqueSlug(candidate string, exists func(slug string) (bool, error)) (string, error) {
	slug := candidate
	for counter := 1; ; counter++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", candidate, counter)
	}
}
