package http

import (
	"stylefeed/internal/usecase"
	"stylefeed/pkg/models"

	"github.com/stretchr/testify/mock"
)

type MockContentUseCase struct {
	mock.Mock
}

func (m *MockContentUseCase) OnboardCreator(userID string, input usecase.CreateCreatorInput) (*models.Creator, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Creator), args.Error(1)
}

func (m *MockContentUseCase) AdminCreateCreator(input usecase.CreateCreatorInput) (*models.Creator, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Creator), args.Error(1)
}

func (m *MockContentUseCase) GetCreator(slug string) (*models.Creator, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Creator), args.Error(1)
}

func (m *MockContentUseCase) ListCreators(limit, offset int) ([]*models.Creator, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Creator), args.Error(1)
}

func (m *MockContentUseCase) UpdateCreator(userID, slug string, input usecase.UpdateCreatorInput) (*models.Creator, error) {
	args := m.Called(userID, slug, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Creator), args.Error(1)
}

func (m *MockContentUseCase) CreatePost(userID string, input usecase.CreatePostInput, requireCover, adminOverride bool) (*models.Post, error) {
	args := m.Called(userID, input, requireCover, adminOverride)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockContentUseCase) GetPostView(postID string) (*usecase.PostView, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PostView), args.Error(1)
}

func (m *MockContentUseCase) ListCreatorPosts(slug string, limit, offset int) ([]*models.Post, error) {
	args := m.Called(slug, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockContentUseCase) UpdatePost(userID, postID string, input usecase.UpdatePostInput) (*models.Post, error) {
	args := m.Called(userID, postID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockContentUseCase) DeletePost(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockContentUseCase) VerifyCreatorAccount(slug, externalUsername, externalUserID string) (bool, error) {
	args := m.Called(slug, externalUsername, externalUserID)
	return args.Bool(0), args.Error(1)
}

var _ usecase.ContentUseCase = (*MockContentUseCase)(nil)

type MockAnalyticsUseCase struct {
	mock.Mock
}

func (m *MockAnalyticsUseCase) Ingest(input usecase.EventInput) (*models.Event, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockAnalyticsUseCase) DailyReport(creatorSlug string) (*usecase.DailyReport, error) {
	args := m.Called(creatorSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DailyReport), args.Error(1)
}

func (m *MockAnalyticsUseCase) ProductClickReport(creatorSlug, order string) ([]usecase.ProductClickRow, error) {
	args := m.Called(creatorSlug, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.ProductClickRow), args.Error(1)
}

var _ usecase.AnalyticsUseCase = (*MockAnalyticsUseCase)(nil)

type MockACLUseCase struct {
	mock.Mock
}

func (m *MockACLUseCase) RoleOf(userID, creatorID string) models.MembershipRole {
	args := m.Called(userID, creatorID)
	return args.Get(0).(models.MembershipRole)
}

func (m *MockACLUseCase) CanManage(userID, creatorID string) bool {
	args := m.Called(userID, creatorID)
	return args.Bool(0)
}

func (m *MockACLUseCase) CanManagePost(userID string, post *models.Post) bool {
	args := m.Called(userID, post)
	return args.Bool(0)
}

func (m *MockACLUseCase) Memberships(userID string) ([]*models.Membership, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Membership), args.Error(1)
}

var _ usecase.ACLUseCase = (*MockACLUseCase)(nil)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(email, username, password string) (*models.User, string, error) {
	args := m.Called(email, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, password string) (*models.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(userID string) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)
