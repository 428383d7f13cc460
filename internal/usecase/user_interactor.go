package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/auth"
	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/domain"
)

// userUseCase implements UserUseCase
type userUseCase struct {
	storage ports.UserStorage
	logger  *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase
func NewUserUseCase(storage ports.UserStorage, logger *slog.Logger) UserUseCase {
	return &userUseCase{storage: storage, logger: logger}
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]domain.UserProfile, error) {
	return uc.storage.ListUserProfiles(ctx)
}

func (uc *userUseCase) GetUser(ctx context.Context, id int64) (*domain.UserProfile, error) {
	return uc.storage.GetUserProfile(ctx, id)
}

func (uc *userUseCase) CreateUser(ctx context.Context, user *domain.User, password string, locationNames []string) (*domain.UserProfile, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка хэширования пароля: %w", err)
	}
	user.PasswordHash = hash
	if user.Role == "" {
		user.Role = domain.RoleMember
	}

	if err := uc.storage.CreateUser(ctx, user, uniqueStrings(locationNames)); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return uc.storage.GetUserProfile(ctx, user.ID)
}

func (uc *userUseCase) UpdateUser(ctx context.Context, id int64, changes domain.UserChanges) (*domain.UserProfile, error) {
	user, err := uc.storage.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Username != nil {
		user.Username = *changes.Username
	}
	if changes.Password != nil {
		hash, err := auth.HashPassword(*changes.Password)
		if err != nil {
			return nil, fmt.Errorf("usecase: ошибка хэширования пароля: %w", err)
		}
		user.PasswordHash = hash
	}
	if changes.FirstName != nil {
		user.FirstName = changes.FirstName
	}
	if changes.LastName != nil {
		user.LastName = changes.LastName
	}
	if changes.Role != nil {
		user.Role = *changes.Role
	}
	if changes.Age != nil {
		user.Age = changes.Age
	}

	if err := uc.storage.UpdateUser(ctx, user, uniqueStrings(changes.LocationNames)); err != nil {
		return nil, err
	}
	return uc.storage.GetUserProfile(ctx, id)
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id int64) error {
	return uc.storage.DeleteUser(ctx, id)
}

// uniqueStrings убирает повторы, сохраняя порядок
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
