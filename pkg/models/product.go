package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is the normalized form of a worn/used item. Slug is derived from
// brand+name (falling back to url, then a random token) and acts as the
// upsert conflict key, so re-saving the same logical product never creates a
// duplicate row.
type Product struct {
	ID    string `gorm:"type:uuid;primary_key" json:"id"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Brand string `json:"brand,omitempty"`
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PostProduct links posts to products. Rows cascade away with their post.
type PostProduct struct {
	PostID    string `gorm:"type:uuid;primaryKey" json:"post_id"`
	ProductID string `gorm:"type:uuid;primaryKey" json:"product_id"`

	Post    *Post    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (PostProduct) TableName() string {
	return "post_products"
}
