package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/auth"
	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/domain"
)

// authUseCase implements AuthUseCase
type authUseCase struct {
	users  ports.UserStorage
	tokens TokenService
	logger *slog.Logger
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(users ports.UserStorage, tokens TokenService, logger *slog.Logger) AuthUseCase {
	return &authUseCase{users: users, tokens: tokens, logger: logger}
}

func (uc *authUseCase) ObtainPair(ctx context.Context, username, password string) (auth.Pair, error) {
	user, err := uc.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return auth.Pair{}, domain.ErrInvalidCredentials
		}
		return auth.Pair{}, fmt.Errorf("usecase: ошибка при поиске пользователя: %w", err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		uc.logger.Warn("login failed", "username", username)
		return auth.Pair{}, domain.ErrInvalidCredentials
	}

	pair, err := uc.tokens.IssuePair(user.ID)
	if err != nil {
		return auth.Pair{}, fmt.Errorf("usecase: ошибка выпуска токенов: %w", err)
	}
	return pair, nil
}

func (uc *authUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	userID, err := claims.UserID()
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	// пользователь мог быть удалён после выдачи refresh токена
	if _, err := uc.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}

	access, err := uc.tokens.IssueAccess(userID)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}
	return access, nil
}

func (uc *authUseCase) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := uc.tokens.ParseAccess(accessToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
