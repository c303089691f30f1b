package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRole string

const (
	RoleOwner  MembershipRole = "owner"
	RoleEditor MembershipRole = "editor"
	RoleViewer MembershipRole = "viewer"
	// RoleNone is never stored; it is the answer for a missing row.
	RoleNone MembershipRole = "none"
)

// IsWriteRole reports whether the role may manage a creator's content.
func (r MembershipRole) IsWriteRole() bool {
	return r == RoleOwner || r == RoleEditor
}

// Priority ranks roles for the landing-creator pick: owner > editor > viewer.
func (r MembershipRole) Priority() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleEditor:
		return 2
	case RoleViewer:
		return 1
	default:
		return 0
	}
}

// Membership binds one user to one creator with a single role.
type Membership struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string         `gorm:"type:uuid;not null;uniqueIndex:idx_user_creator" json:"user_id"`
	CreatorID string         `gorm:"type:uuid;not null;uniqueIndex:idx_user_creator" json:"creator_id"`
	Role      MembershipRole `gorm:"type:varchar(20);default:'viewer'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Creator *Creator `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
