package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventType string

const (
	EventPageView     EventType = "page_view"
	EventProductClick EventType = "product_click"
)

// ValidEventType whitelists the two event kinds the pipeline accepts.
func ValidEventType(t string) bool {
	return EventType(t) == EventPageView || EventType(t) == EventProductClick
}

// Event is one append-only analytics record. CreatorSlug may arrive empty and
// be backfilled at ingest time; ProductID is a free-form string: a relational
// product id, a raw URL, or a "brand|name" composite.
type Event struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	EventType   EventType `gorm:"type:varchar(20);not null;index" json:"event_type"`
	CreatorSlug *string   `gorm:"index" json:"creator_slug,omitempty"`
	PostID      *string   `gorm:"type:uuid;index" json:"post_id,omitempty"`
	ProductID   *string   `json:"product_id,omitempty"`
	Path        string    `gorm:"type:varchar(512)" json:"path"`
	Referrer    string    `gorm:"type:varchar(1024)" json:"referrer"`
	ClientID    string    `gorm:"type:varchar(128);index" json:"client_id"`
	UserAgent   string    `gorm:"type:varchar(1024)" json:"user_agent"`
	Meta        JSONMap   `gorm:"type:jsonb" json:"meta,omitempty"`
	CreatedAt   time.Time `gorm:"index;not null" json:"created_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
