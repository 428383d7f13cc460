package ports

import (
	"context"

	"github.com/GoArmGo/AdBoard/internal/domain"
)

// CategoryStorage определяет методы для взаимодействия с хранилищем категорий
type CategoryStorage interface {
	CountCategories(ctx context.Context) (int64, error)
	ListCategories(ctx context.Context, offset, limit int) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

// LocationStorage определяет методы для взаимодействия с хранилищем адресов
type LocationStorage interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
	GetLocationByID(ctx context.Context, id int64) (*domain.Location, error)
	CreateLocation(ctx context.Context, location *domain.Location) error
	UpdateLocation(ctx context.Context, location *domain.Location) error
	DeleteLocation(ctx context.Context, id int64) error
}

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	ListUserProfiles(ctx context.Context) ([]domain.UserProfile, error)
	GetUserProfile(ctx context.Context, id int64) (*domain.UserProfile, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// CreateUser сохраняет пользователя и привязывает адреса по названиям, создавая недостающие
	CreateUser(ctx context.Context, user *domain.User, locationNames []string) error
	// UpdateUser обновляет пользователя и добавляет адреса по названиям
	UpdateUser(ctx context.Context, user *domain.User, addLocationNames []string) error
	DeleteUser(ctx context.Context, id int64) error
}

// AdStorage определяет методы для взаимодействия с хранилищем объявлений
type AdStorage interface {
	CountAds(ctx context.Context) (int64, error)
	ListAdViews(ctx context.Context, offset, limit int) ([]domain.AdView, error)
	GetAdView(ctx context.Context, id int64) (*domain.AdView, error)
	GetAdByID(ctx context.Context, id int64) (*domain.Ad, error)
	CreateAd(ctx context.Context, ad *domain.Ad) error
	UpdateAd(ctx context.Context, ad *domain.Ad) error
	UpdateAdImage(ctx context.Context, id int64, image *string) error
	DeleteAd(ctx context.Context, id int64) error
}

// SelectionStorage определяет методы для взаимодействия с хранилищем подборок
type SelectionStorage interface {
	ListSelections(ctx context.Context) ([]domain.Selection, error)
	GetSelectionView(ctx context.Context, id int64) (*domain.SelectionView, error)
	GetSelectionByID(ctx context.Context, id int64) (*domain.Selection, error)
	// CreateSelection сохраняет подборку вместе с объявлениями
	CreateSelection(ctx context.Context, selection *domain.Selection) error
	// UpdateSelection меняет название и, если replaceItems, полностью заменяет набор объявлений
	UpdateSelection(ctx context.Context, selection *domain.Selection, replaceItems bool) error
	DeleteSelection(ctx context.Context, id int64) error
}
