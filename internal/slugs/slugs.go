// Package slugs provides the canonical filename slugification used for
// exported planner files.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// FileSlug converts a display name to a safe lowercase file stem.
// Names that slugify to nothing (punctuation only) fall back to a
// space-to-dash transform so the caller still gets a usable stem.
func FileSlug(s string) string {
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
	}
	return slugged
}
