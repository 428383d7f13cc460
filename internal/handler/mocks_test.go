package handler

import (
	"context"
	"io"

	"github.com/GoArmGo/AdBoard/internal/auth"
	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockAuthUseCase struct{ mock.Mock }

func (m *mockAuthUseCase) ObtainPair(ctx context.Context, username, password string) (auth.Pair, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(auth.Pair), args.Error(1)
}

func (m *mockAuthUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	args := m.Called(ctx, accessToken)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

type mockCategoryUseCase struct{ mock.Mock }

func (m *mockCategoryUseCase) ListCategories(ctx context.Context, rawPage string) (*domain.PageResult[domain.Category], error) {
	args := m.Called(ctx, rawPage)
	page, _ := args.Get(0).(*domain.PageResult[domain.Category])
	return page, args.Error(1)
}

func (m *mockCategoryUseCase) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *mockCategoryUseCase) CreateCategory(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryUseCase) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockLocationUseCase struct{ mock.Mock }

func (m *mockLocationUseCase) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *mockLocationUseCase) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	args := m.Called(ctx, id)
	location, _ := args.Get(0).(*domain.Location)
	return location, args.Error(1)
}

func (m *mockLocationUseCase) CreateLocation(ctx context.Context, location *domain.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *mockLocationUseCase) UpdateLocation(ctx context.Context, location *domain.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *mockLocationUseCase) DeleteLocation(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserUseCase struct{ mock.Mock }

func (m *mockUserUseCase) ListUsers(ctx context.Context) ([]domain.UserProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}

func (m *mockUserUseCase) GetUser(ctx context.Context, id int64) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.UserProfile)
	return user, args.Error(1)
}

func (m *mockUserUseCase) CreateUser(ctx context.Context, user *domain.User, password string, locationNames []string) (*domain.UserProfile, error) {
	args := m.Called(ctx, user, password, locationNames)
	profile, _ := args.Get(0).(*domain.UserProfile)
	return profile, args.Error(1)
}

func (m *mockUserUseCase) UpdateUser(ctx context.Context, id int64, changes domain.UserChanges) (*domain.UserProfile, error) {
	args := m.Called(ctx, id, changes)
	profile, _ := args.Get(0).(*domain.UserProfile)
	return profile, args.Error(1)
}

func (m *mockUserUseCase) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAdUseCase struct{ mock.Mock }

func (m *mockAdUseCase) ListAds(ctx context.Context, rawPage string) (*domain.PageResult[domain.AdView], error) {
	args := m.Called(ctx, rawPage)
	page, _ := args.Get(0).(*domain.PageResult[domain.AdView])
	return page, args.Error(1)
}

func (m *mockAdUseCase) GetAd(ctx context.Context, id int64) (*domain.AdView, error) {
	args := m.Called(ctx, id)
	ad, _ := args.Get(0).(*domain.AdView)
	return ad, args.Error(1)
}

func (m *mockAdUseCase) CreateAd(ctx context.Context, caller *domain.User, ad *domain.Ad) (*domain.Ad, error) {
	args := m.Called(ctx, caller, ad)
	created, _ := args.Get(0).(*domain.Ad)
	return created, args.Error(1)
}

func (m *mockAdUseCase) UpdateAd(ctx context.Context, caller *domain.User, id int64, changes domain.AdChanges) (*domain.Ad, error) {
	args := m.Called(ctx, caller, id, changes)
	ad, _ := args.Get(0).(*domain.Ad)
	return ad, args.Error(1)
}

func (m *mockAdUseCase) UploadImage(ctx context.Context, caller *domain.User, id int64, file io.Reader, filename, contentType string) (*domain.Ad, error) {
	args := m.Called(ctx, caller, id, file, filename, contentType)
	ad, _ := args.Get(0).(*domain.Ad)
	return ad, args.Error(1)
}

func (m *mockAdUseCase) DeleteAd(ctx context.Context, caller *domain.User, id int64) error {
	return m.Called(ctx, caller, id).Error(0)
}

type mockSelectionUseCase struct{ mock.Mock }

func (m *mockSelectionUseCase) ListSelections(ctx context.Context) ([]domain.Selection, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Selection), args.Error(1)
}

func (m *mockSelectionUseCase) GetSelection(ctx context.Context, id int64) (*domain.SelectionView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*domain.SelectionView)
	return view, args.Error(1)
}

func (m *mockSelectionUseCase) CreateSelection(ctx context.Context, caller *domain.User, name string, items []int64) (*domain.Selection, error) {
	args := m.Called(ctx, caller, name, items)
	selection, _ := args.Get(0).(*domain.Selection)
	return selection, args.Error(1)
}

func (m *mockSelectionUseCase) UpdateSelection(ctx context.Context, caller *domain.User, id int64, changes domain.SelectionChanges) (*domain.Selection, error) {
	args := m.Called(ctx, caller, id, changes)
	selection, _ := args.Get(0).(*domain.Selection)
	return selection, args.Error(1)
}

func (m *mockSelectionUseCase) DeleteSelection(ctx context.Context, caller *domain.User, id int64) error {
	return m.Called(ctx, caller, id).Error(0)
}
