package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	cases := map[string]string{
		"suzzy":                          "suzzy",
		"@Suzzy":                         "suzzy",
		"SUZZY":                          "suzzy",
		"https://instagram.com/suzzy":    "suzzy",
		"http://instagram.com/@suzzy/":   "suzzy",
		"suzzy.official_1":               "suzzy.official_1",
		"  @suzzy  ":                     "suzzy",
		"suzzy official!":                "suzzyofficial",
		"":                               "",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeSlug(input), "input %q", input)
	}
}

func TestNormalizeSlug_Idempotent(t *testing.T) {
	inputs := []string{"@Suzzy", "https://instagram.com/suzzy", "plain", "A B.C_d", ""}
	for _, input := range inputs {
		once := NormalizeSlug(input)
		assert.Equal(t, once, NormalizeSlug(once), "input %q", input)
		if once != "" {
			assert.True(t, ValidCreatorSlug(once), "normalized %q must match the grammar", once)
		}
	}
}

func TestValidCreatorSlug(t *testing.T) {
	assert.True(t, ValidCreatorSlug("suzzy"))
	assert.True(t, ValidCreatorSlug("suzzy.official_1"))
	assert.False(t, ValidCreatorSlug("Suzzy"))
	assert.False(t, ValidCreatorSlug("@suzzy"))
	assert.False(t, ValidCreatorSlug("suzzy official"))
	assert.False(t, ValidCreatorSlug(""))
}

func TestDeriveProductSlug_Deterministic(t *testing.T) {
	first := DeriveProductSlug("Nike", "Air Max", "")
	second := DeriveProductSlug("Nike", "Air Max", "")
	assert.Equal(t, first, second)
	assert.Equal(t, "nike-air-max", first)
}

func TestDeriveProductSlug_Fallbacks(t *testing.T) {
	// No brand/name: derive from the url
	assert.Equal(t, DeriveProductSlug("", "", "https://shop.example/air-max"),
		DeriveProductSlug("", "", "https://shop.example/air-max"))

	// Nothing at all: still produces a usable, non-colliding token
	a := DeriveProductSlug("", "", "")
	b := DeriveProductSlug("", "", "")
	assert.True(t, strings.HasPrefix(a, "product-"))
	assert.NotEqual(t, a, b)
}
