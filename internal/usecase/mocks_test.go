package usecase

import (
	"context"
	"io"

	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
	"github.com/stretchr/testify/mock"
)

type MockCategoryStorage struct{ mock.Mock }

func (m *MockCategoryStorage) CountCategories(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryStorage) ListCategories(ctx context.Context, offset, limit int) ([]domain.Category, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryStorage) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *MockCategoryStorage) CreateCategory(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryStorage) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryStorage) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserStorage struct{ mock.Mock }

func (m *MockUserStorage) ListUserProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}

func (m *MockUserStorage) GetUserProfile(ctx context.Context, id int64) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*domain.UserProfile)
	return profile, args.Error(1)
}

func (m *MockUserStorage) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStorage) CreateUser(ctx context.Context, user *domain.User, locationNames []string) error {
	return m.Called(ctx, user, locationNames).Error(0)
}

func (m *MockUserStorage) UpdateUser(ctx context.Context, user *domain.User, addLocationNames []string) error {
	return m.Called(ctx, user, addLocationNames).Error(0)
}

func (m *MockUserStorage) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAdStorage struct{ mock.Mock }

func (m *MockAdStorage) CountAds(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdStorage) ListAdViews(ctx context.Context, offset, limit int) ([]domain.AdView, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.AdView), args.Error(1)
}

func (m *MockAdStorage) GetAdView(ctx context.Context, id int64) (*domain.AdView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*domain.AdView)
	return view, args.Error(1)
}

func (m *MockAdStorage) GetAdByID(ctx context.Context, id int64) (*domain.Ad, error) {
	args := m.Called(ctx, id)
	ad, _ := args.Get(0).(*domain.Ad)
	return ad, args.Error(1)
}

func (m *MockAdStorage) CreateAd(ctx context.Context, ad *domain.Ad) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *MockAdStorage) UpdateAd(ctx context.Context, ad *domain.Ad) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *MockAdStorage) UpdateAdImage(ctx context.Context, id int64, image *string) error {
	return m.Called(ctx, id, image).Error(0)
}

func (m *MockAdStorage) DeleteAd(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSelectionStorage struct{ mock.Mock }

func (m *MockSelectionStorage) ListSelections(ctx context.Context) ([]domain.Selection, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Selection), args.Error(1)
}

func (m *MockSelectionStorage) GetSelectionView(ctx context.Context, id int64) (*domain.SelectionView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*domain.SelectionView)
	return view, args.Error(1)
}

func (m *MockSelectionStorage) GetSelectionByID(ctx context.Context, id int64) (*domain.Selection, error) {
	args := m.Called(ctx, id)
	selection, _ := args.Get(0).(*domain.Selection)
	return selection, args.Error(1)
}

func (m *MockSelectionStorage) CreateSelection(ctx context.Context, selection *domain.Selection) error {
	return m.Called(ctx, selection).Error(0)
}

func (m *MockSelectionStorage) UpdateSelection(ctx context.Context, selection *domain.Selection, replaceItems bool) error {
	return m.Called(ctx, selection, replaceItems).Error(0)
}

func (m *MockSelectionStorage) DeleteSelection(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, reader, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteFile(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockFileStorage) PublicURL(key string) string {
	return "http://files.local/ads-bucket/" + key
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishImageCleanup(ctx context.Context, payload payloads.ImageCleanupPayload) error {
	return m.Called(ctx, payload).Error(0)
}
