// Package slug derives URL-safe identifiers from post titles.
package slug

import (
	"fmt"
	"strings"
	"time"
)

// Make lowercases the title, collapses every run of non-alphanumeric
// characters into a single hyphen and trims leading/trailing hyphens.
// The result matches ^[a-z0-9]+(-[a-z0-9]+)*$ or is empty.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// Unique appends the millisecond timestamp to the derived slug. Uniqueness
// holds only as far as the clock resolution: two titles slugged within the
// same millisecond produce the same value.
func Unique(title string, t time.Time) string {
	s := Make(title)
	if s == "" {
		return fmt.Sprintf("%d", t.UnixMilli())
	}
	return fmt.Sprintf("%s-%d", s, t.UnixMilli())
}
