package services

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// slugify derives a URL slug from a display name: lowercase, runs of
// whitespace collapsed to a single dash.
func slugify(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
