package usecase

import (
	"time"

	"stylefeed/internal/repo/persistent"
	"stylefeed/pkg/models"

	"github.com/stretchr/testify/mock"
)

type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Create(membership *models.Membership) error {
	args := m.Called(membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) GetRole(userID, creatorID string) (models.MembershipRole, error) {
	args := m.Called(userID, creatorID)
	return args.Get(0).(models.MembershipRole), args.Error(1)
}

func (m *MockMembershipRepository) ListByUser(userID string) ([]*models.Membership, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Membership), args.Error(1)
}

var _ persistent.MembershipRepository = (*MockMembershipRepository)(nil)

type MockCreatorRepository struct {
	mock.Mock
}

func (m *MockCreatorRepository) Create(creator *models.Creator) error {
	args := m.Called(creator)
	return args.Error(0)
}

func (m *MockCreatorRepository) GetByID(id string) (*models.Creator, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Creator), args.Error(1)
}

func (m *MockCreatorRepository) GetBySlug(slug string) (*models.Creator, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Creator), args.Error(1)
}

func (m *MockCreatorRepository) Update(creator *models.Creator) error {
	args := m.Called(creator)
	return args.Error(0)
}

func (m *MockCreatorRepository) List(limit, offset int) ([]*models.Creator, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Creator), args.Error(1)
}

func (m *MockCreatorRepository) SlugTaken(slug, excludeID string) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCreatorRepository) MarkVerified(id, externalUsername, externalUserID string, at time.Time) error {
	args := m.Called(id, externalUsername, externalUserID, at)
	return args.Error(0)
}

var _ persistent.CreatorRepository = (*MockCreatorRepository)(nil)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByCreatorID(creatorID string, limit, offset int) ([]*models.Post, error) {
	args := m.Called(creatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) GetLinkedProducts(postID string) ([]models.Product, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockPostRepository) ReplaceProducts(postID string, products []models.Product) error {
	args := m.Called(postID, products)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(event *models.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventRepository) DailyStats(creatorSlug string) ([]persistent.DailyStat, error) {
	args := m.Called(creatorSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistent.DailyStat), args.Error(1)
}

func (m *MockEventRepository) TotalCounts(creatorSlug string) (int64, int64, error) {
	args := m.Called(creatorSlug)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) ClickGroups(creatorSlug string) ([]persistent.ClickGroup, error) {
	args := m.Called(creatorSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistent.ClickGroup), args.Error(1)
}

var _ persistent.EventRepository = (*MockEventRepository)(nil)
