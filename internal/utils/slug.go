package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// maxSlugBaseLength bounds the title-derived part of a slug, counted in
// runes, so that the final value fits comfortably in the slug column.
const maxSlugBaseLength = 80

// GenerateSlug derives a URL-safe slug from a note title and appends a
// short random suffix so that identical titles never collide.
//
// Example: "My First Note" -> "my-first-note-1a2b3c4d".
func GenerateSlug(title string) string {
	base := Slugify(title)
	suffix := uuid.NewString()[:8]

	if base == "" {
		return suffix
	}

	return base + "-" + suffix
}

// Slugify lowercases the input, replaces every run of non-alphanumeric
// characters with a single hyphen, and trims leading/trailing hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if runes := []rune(slug); len(runes) > maxSlugBaseLength {
		slug = strings.TrimRight(string(runes[:maxSlugBaseLength]), "-")
	}

	return slug
}
