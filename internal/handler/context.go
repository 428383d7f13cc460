package handler

import (
	"context"

	"github.com/GoArmGo/AdBoard/internal/domain"
)

type userCtxKey struct{}

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext возвращает аутентифицированного пользователя или nil
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userCtxKey{}).(*domain.User)
	return user
}
