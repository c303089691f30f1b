package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Link is one external link shown on a creator profile.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// LinkList is stored as a jsonb column, preserving order.
type LinkList []Link

func (l LinkList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *LinkList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	raw, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, l)
}

type Creator struct {
	ID     string   `gorm:"type:uuid;primary_key" json:"id"`
	Slug   string   `gorm:"uniqueIndex;not null" json:"slug"`
	Name   string   `gorm:"not null" json:"name"`
	Bio    string   `json:"bio,omitempty"`
	Avatar string   `json:"avatar,omitempty"`
	Links  LinkList `gorm:"type:jsonb" json:"links,omitempty"`

	// Verified external account. VerifiedAt stays null until the equality
	// check in the verification flow passes.
	ExternalUsername string     `json:"external_username,omitempty"`
	ExternalUserID   string     `json:"external_user_id,omitempty"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Creator) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
