package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductEntry is one item of a post's inline meta.products array.
type ProductEntry struct {
	Brand string `json:"brand,omitempty"`
	Name  string `json:"name,omitempty"`
	Link  string `json:"link,omitempty"`
}

// PostMeta is an open JSON document. The only key the system interprets is
// "products"; everything else round-trips untouched through Extra.
type PostMeta struct {
	Products []ProductEntry
	Extra    map[string]interface{}
}

func (m PostMeta) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(m.Extra)+1)
	for k, v := range m.Extra {
		doc[k] = v
	}
	if m.Products != nil {
		doc["products"] = m.Products
	}
	return json.Marshal(doc)
}

func (m *PostMeta) UnmarshalJSON(data []byte) error {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	m.Products = nil
	m.Extra = nil

	for key, value := range doc {
		if key != "products" {
			if m.Extra == nil {
				m.Extra = make(map[string]interface{})
			}
			m.Extra[key] = value
			continue
		}
		// Only an array is structurally meaningful; anything else is kept
		// as opaque extra data.
		items, ok := value.([]interface{})
		if !ok {
			if m.Extra == nil {
				m.Extra = make(map[string]interface{})
			}
			m.Extra[key] = value
			continue
		}
		for _, item := range items {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			m.Products = append(m.Products, ProductEntry{
				Brand: stringField(entry, "brand"),
				Name:  stringField(entry, "name"),
				Link:  stringField(entry, "link"),
			})
		}
	}
	return nil
}

func stringField(doc map[string]interface{}, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}

func (m PostMeta) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *PostMeta) Scan(value interface{}) error {
	if value == nil {
		*m = PostMeta{}
		return nil
	}
	raw, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, m)
}

type Post struct {
	ID string `gorm:"type:uuid;primary_key" json:"id"`

	// AuthorCreatorID is the source of truth for the post->creator relation.
	// CreatorID is a deprecated legacy column kept for old rows and join
	// queries; it must only ever be read as a fallback.
	AuthorCreatorID string `gorm:"type:uuid;index" json:"author_creator_id"`
	CreatorID       string `gorm:"type:uuid;index" json:"creator_id,omitempty"`

	Title      string   `gorm:"not null" json:"title"`
	CoverImage string   `json:"cover_image"`
	Body       string   `json:"body,omitempty"`
	Published  bool     `gorm:"default:true" json:"published"`
	Meta       PostMeta `gorm:"type:jsonb" json:"meta"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
