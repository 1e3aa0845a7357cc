package form

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug turns a display name into a URL-safe identifier: lowercase,
// runs of non-alphanumeric characters collapsed to a single underscore,
// leading and trailing underscores stripped. Deterministic; uniqueness is
// enforced by the store constraint, not here.
func DeriveSlug(name string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(slug, "_")
}
