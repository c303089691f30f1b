package persistent

import (
	"stylefeed/pkg/models"

	"gorm.io/gorm"
)

// DailyStat is one row of a creator's per-day rollup.
type DailyStat struct {
	Date   string `json:"date"`
	Views  int64  `json:"views"`
	Clicks int64  `json:"clicks"`
}

// ClickGroup is the canonical aggregation key for product clicks: the same
// raw product identifier is only unique within one post, so postId is part
// of the key.
type ClickGroup struct {
	PostID    *string `json:"post_id"`
	ProductID *string `json:"product_id"`
	Clicks    int64   `json:"clicks"`
}

type EventRepository interface {
	Create(event *models.Event) error
	DailyStats(creatorSlug string) ([]DailyStat, error)
	TotalCounts(creatorSlug string) (views int64, clicks int64, err error)
	ClickGroups(creatorSlug string) ([]ClickGroup, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) DailyStats(creatorSlug string) ([]DailyStat, error) {
	var stats []DailyStat
	err := r.db.Model(&models.Event{}).
		Select(`to_char(created_at, 'YYYY-MM-DD') AS date,
			count(*) FILTER (WHERE event_type = ?) AS views,
			count(*) FILTER (WHERE event_type = ?) AS clicks`,
			models.EventPageView, models.EventProductClick).
		Where("creator_slug = ?", creatorSlug).
		Group("to_char(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *eventRepository) TotalCounts(creatorSlug string) (int64, int64, error) {
	var views, clicks int64
	err := r.db.Model(&models.Event{}).
		Where("creator_slug = ? AND event_type = ?", creatorSlug, models.EventPageView).
		Count(&views).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.Model(&models.Event{}).
		Where("creator_slug = ? AND event_type = ?", creatorSlug, models.EventProductClick).
		Count(&clicks).Error
	if err != nil {
		return 0, 0, err
	}
	return views, clicks, nil
}

func (r *eventRepository) ClickGroups(creatorSlug string) ([]ClickGroup, error) {
	var groups []ClickGroup
	err := r.db.Model(&models.Event{}).
		Select("post_id, product_id, count(*) AS clicks").
		Where("creator_slug = ? AND event_type = ?", creatorSlug, models.EventProductClick).
		Group("post_id, product_id").
		Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}
