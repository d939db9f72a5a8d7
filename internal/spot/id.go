package spot

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Slugify lowercases a name and replaces whitespace runs with hyphens,
// dropping characters that are unsafe in an id.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen && b.Len() > 0 {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// NewID synthesizes a unique id from a name: slug plus a millisecond
// timestamp suffix. Used for client-created spots and generated plans.
func NewID(name string, now time.Time) string {
	slug := Slugify(name)
	if slug == "" {
		slug = "spot"
	}
	return slug + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}
