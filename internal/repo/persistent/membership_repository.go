package persistent

import (
	"errors"

	"stylefeed/pkg/models"

	"gorm.io/gorm"
)

type MembershipRepository interface {
	Create(membership *models.Membership) error
	GetRole(userID, creatorID string) (models.MembershipRole, error)
	ListByUser(userID string) ([]*models.Membership, error)
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetRole returns RoleNone when no membership row exists. Storage errors are
// returned as-is; deny-by-default is the caller's responsibility.
func (r *membershipRepository) GetRole(userID, creatorID string) (models.MembershipRole, error) {
	var membership models.Membership
	err := r.db.Where("user_id = ? AND creator_id = ?", userID, creatorID).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RoleNone, nil
	}
	if err != nil {
		return models.RoleNone, err
	}
	return membership.Role, nil
}

func (r *membershipRepository) ListByUser(userID string) ([]*models.Membership, error) {
	var memberships []*models.Membership
	err := r.db.Preload("Creator").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}
