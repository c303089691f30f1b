package usecase

import (
	"strings"

	"stylefeed/pkg/models"
)

// ProductView is one entry of a post's canonical product list.
type ProductView struct {
	Brand string `json:"brand,omitempty"`
	Name  string `json:"name,omitempty"`
	Link  string `json:"link,omitempty"`
}

// Key is the dedup identity: empty fields normalize to "" before comparison.
func (p ProductView) Key() string {
	return p.Brand + "|" + p.Name + "|" + p.Link
}

func (p ProductView) empty() bool {
	return p.Brand == "" && p.Name == "" && p.Link == ""
}

// ReconcileProducts merges a post's inline meta.products with its relational
// product rows into one canonical list: inline first, then relational,
// deduplicated by (brand, name, link) keeping the first occurrence. Entries
// with all three fields empty are dropped. The dual-source shape is a
// migration artifact; older posts only carry inline data.
func ReconcileProducts(meta models.PostMeta, rows []models.Product) []ProductView {
	merged := make([]ProductView, 0, len(meta.Products)+len(rows))

	for _, entry := range meta.Products {
		merged = append(merged, ProductView{
			Brand: strings.TrimSpace(entry.Brand),
			Name:  strings.TrimSpace(entry.Name),
			Link:  strings.TrimSpace(entry.Link),
		})
	}
	for _, row := range rows {
		merged = append(merged, ProductView{
			Brand: strings.TrimSpace(row.Brand),
			Name:  strings.TrimSpace(row.Name),
			Link:  strings.TrimSpace(row.URL),
		})
	}

	seen := make(map[string]struct{}, len(merged))
	out := make([]ProductView, 0, len(merged))
	for _, p := range merged {
		if p.empty() {
			continue
		}
		if _, dup := seen[p.Key()]; dup {
			continue
		}
		seen[p.Key()] = struct{}{}
		out = append(out, p)
	}
	return out
}
