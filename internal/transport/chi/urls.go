package chi

import "strings"

// URLBuilder materializes stored relative file paths into absolute public URLs.
type URLBuilder struct {
	base string
}

// NewURLBuilder creates a builder for the given public base URL.
// An empty base leaves paths as-is.
func NewURLBuilder(base string) *URLBuilder {
	return &URLBuilder{base: strings.TrimSuffix(base, "/")}
}

// PublicURL returns the absolute URL for a stored path. Empty paths and
// already-absolute URLs pass through unchanged.
func (b *URLBuilder) PublicURL(path string) string {
	if path == "" || b.base == "" {
		return path
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return b.base + "/" + strings.TrimPrefix(path, "/")
}
