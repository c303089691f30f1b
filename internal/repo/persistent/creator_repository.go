package persistent

import (
	"time"

	"stylefeed/pkg/models"

	"gorm.io/gorm"
)

type CreatorRepository interface {
	Create(creator *models.Creator) error
	GetByID(id string) (*models.Creator, error)
	GetBySlug(slug string) (*models.Creator, error)
	Update(creator *models.Creator) error
	List(limit, offset int) ([]*models.Creator, error)
	SlugTaken(slug, excludeID string) (bool, error)
	MarkVerified(id, externalUsername, externalUserID string, at time.Time) error
}

type creatorRepository struct {
	db *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepository{db: db}
}

func (r *creatorRepository) Create(creator *models.Creator) error {
	return r.db.Create(creator).Error
}

func (r *creatorRepository) GetByID(id string) (*models.Creator, error) {
	var creator models.Creator
	if err := r.db.Where("id = ?", id).First(&creator).Error; err != nil {
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) GetBySlug(slug string) (*models.Creator, error) {
	var creator models.Creator
	if err := r.db.Where("slug = ?", slug).First(&creator).Error; err != nil {
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) Update(creator *models.Creator) error {
	return r.db.Save(creator).Error
}

func (r *creatorRepository) List(limit, offset int) ([]*models.Creator, error) {
	var creators []*models.Creator
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&creators).Error; err != nil {
		return nil, err
	}
	return creators, nil
}

// SlugTaken checks slug uniqueness excluding the row being renamed. The DB
// unique index remains the final guard against races.
func (r *creatorRepository) SlugTaken(slug, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&models.Creator{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *creatorRepository) MarkVerified(id, externalUsername, externalUserID string, at time.Time) error {
	return r.db.Model(&models.Creator{}).Where("id = ?", id).Updates(map[string]interface{}{
		"external_username": externalUsername,
		"external_user_id":  externalUserID,
		"verified_at":       at,
	}).Error
}
