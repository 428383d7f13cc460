package usecase

import (
	"context"
	"io"

	"github.com/GoArmGo/AdBoard/internal/auth"
	"github.com/GoArmGo/AdBoard/internal/domain"
)

// FileStorage определяет интерфейс для работы с файловым хранилищем (AWS S3, MinIO)
// порт для хранения бинарных данных (картинок объявлений)
type FileStorage interface {
	// UploadFile загружает файл в хранилище и возвращает его публичный URL.
	// `key` - уникальное имя файла в хранилище.
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)

	// DeleteFile удаляет файл из хранилища по его ключу
	DeleteFile(ctx context.Context, key string) error

	// PublicURL строит публичную ссылку на объект по ключу
	PublicURL(key string) string
}

// TokenService выпускает и проверяет токены доступа
type TokenService interface {
	IssuePair(userID int64) (auth.Pair, error)
	IssueAccess(userID int64) (string, error)
	ParseAccess(token string) (*auth.Claims, error)
	ParseRefresh(token string) (*auth.Claims, error)
}

// CategoryUseCase бизнес-логика категорий
type CategoryUseCase interface {
	// ListCategories возвращает страницу категорий; rawPage - значение параметра page как есть
	ListCategories(ctx context.Context, rawPage string) (*domain.PageResult[domain.Category], error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

// LocationUseCase бизнес-логика адресов
type LocationUseCase interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
	CreateLocation(ctx context.Context, location *domain.Location) error
	UpdateLocation(ctx context.Context, location *domain.Location) error
	DeleteLocation(ctx context.Context, id int64) error
}

// UserUseCase бизнес-логика пользователей
type UserUseCase interface {
	ListUsers(ctx context.Context) ([]domain.UserProfile, error)
	GetUser(ctx context.Context, id int64) (*domain.UserProfile, error)
	// CreateUser хэширует пароль, сохраняет пользователя и привязывает адреса
	CreateUser(ctx context.Context, user *domain.User, password string, locationNames []string) (*domain.UserProfile, error)
	// UpdateUser применяет изменения; новые адреса добавляются к существующим
	UpdateUser(ctx context.Context, id int64, changes domain.UserChanges) (*domain.UserProfile, error)
	DeleteUser(ctx context.Context, id int64) error
}

// AdUseCase бизнес-логика объявлений. Поле Image в результатах содержит публичный URL.
type AdUseCase interface {
	ListAds(ctx context.Context, rawPage string) (*domain.PageResult[domain.AdView], error)
	GetAd(ctx context.Context, id int64) (*domain.AdView, error)
	// CreateAd сохраняет объявление; без явного автора автором становится caller
	CreateAd(ctx context.Context, caller *domain.User, ad *domain.Ad) (*domain.Ad, error)
	UpdateAd(ctx context.Context, caller *domain.User, id int64, changes domain.AdChanges) (*domain.Ad, error)
	// UploadImage кладёт картинку в файловое хранилище и привязывает её к объявлению
	UploadImage(ctx context.Context, caller *domain.User, id int64, file io.Reader, filename, contentType string) (*domain.Ad, error)
	DeleteAd(ctx context.Context, caller *domain.User, id int64) error
}

// SelectionUseCase бизнес-логика подборок
type SelectionUseCase interface {
	ListSelections(ctx context.Context) ([]domain.Selection, error)
	GetSelection(ctx context.Context, id int64) (*domain.SelectionView, error)
	// CreateSelection создаёт подборку, владельцем становится caller
	CreateSelection(ctx context.Context, caller *domain.User, name string, items []int64) (*domain.Selection, error)
	UpdateSelection(ctx context.Context, caller *domain.User, id int64, changes domain.SelectionChanges) (*domain.Selection, error)
	DeleteSelection(ctx context.Context, caller *domain.User, id int64) error
}

// AuthUseCase выдача токенов и аутентификация запросов
type AuthUseCase interface {
	// ObtainPair проверяет логин и пароль и выдаёт пару токенов
	ObtainPair(ctx context.Context, username, password string) (auth.Pair, error)
	// Refresh выдаёт новый access токен по refresh токену
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Authenticate находит пользователя по access токену
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}
