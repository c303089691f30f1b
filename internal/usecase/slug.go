package usecase

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var creatorSlugPattern = regexp.MustCompile(`^[a-z0-9._]+$`)

// NormalizeSlug reduces any handle-ish input (an "@name", a profile URL, a
// mixed-case username) to the creator slug grammar [a-z0-9._]*. It is
// idempotent: normalizing an already-normalized slug is a no-op.
func NormalizeSlug(input string) string {
	s := strings.TrimSpace(strings.ToLower(input))

	// Strip a URL prefix: scheme, host path, trailing slash
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimSuffix(s, "/")
	if idx := strings.LastIndex(s, "/"); idx >= 0 {
		s = s[idx+1:]
	}

	s = strings.TrimPrefix(s, "@")

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCreatorSlug reports whether s already satisfies the slug grammar.
func ValidCreatorSlug(s string) bool {
	return creatorSlugPattern.MatchString(s)
}

var productSlugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveProductSlug computes the deterministic upsert conflict key for a
// product: brand+name when present, else the url, else a random token so the
// row is still insertable.
func DeriveProductSlug(brand, name, url string) string {
	if base := strings.TrimSpace(brand + " " + name); base != "" {
		return slugifyProduct(base)
	}
	if url != "" {
		return slugifyProduct(url)
	}
	return "product-" + uuid.New().String()
}

func slugifyProduct(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = productSlugCleaner.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
