package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"stylefeed/pkg/models"
)

var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

var smartQuotes = strings.NewReplacer(
	"“", `"`, // left double
	"”", `"`, // right double
	"‘", "'", // left single
	"’", "'", // right single
)

// RepairProductsJSON fixes the authoring mistakes that show up in hand-typed
// product lists: smart quotes, single-quoted strings, trailing commas before
// a closing bracket or brace.
func RepairProductsJSON(raw string) string {
	s := smartQuotes.Replace(raw)
	s = strings.ReplaceAll(s, "'", `"`)
	s = trailingComma.ReplaceAllString(s, "$1")
	return s
}

// ParseProductsPayload accepts a products list as raw JSON text, repairing it
// first. Elements with non-string fields coerce to empty; a payload that
// still fails to parse after repair is a validation error.
func ParseProductsPayload(raw string) ([]models.ProductEntry, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(RepairProductsJSON(raw)), &items); err != nil {
		return nil, fmt.Errorf("%w: products must be a JSON array of {brand, name, link}", ErrValidation)
	}

	entries := make([]models.ProductEntry, 0, len(items))
	for _, item := range items {
		entry := models.ProductEntry{
			Brand: stringOrEmpty(item["brand"]),
			Name:  stringOrEmpty(item["name"]),
			Link:  stringOrEmpty(item["link"]),
		}
		if entry.Brand == "" && entry.Name == "" && entry.Link == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func stringOrEmpty(v interface{}) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
