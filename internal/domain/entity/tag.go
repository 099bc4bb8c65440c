package entity

import "regexp"

const MaxTagFieldLength = 200

var (
	tagColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	tagSlugPattern  = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// Tag labels recipes, e.g. breakfast or dinner.
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

// ValidColor reports whether s is a #RGB or #RRGGBB hex color.
func ValidColor(s string) bool {
	return tagColorPattern.MatchString(s)
}

// ValidSlug reports whether s is a URL-safe slug.
func ValidSlug(s string) bool {
	return len(s) <= MaxTagFieldLength && tagSlugPattern.MatchString(s)
}
