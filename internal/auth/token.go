package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Типы токенов в паре
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

// Claims полезная нагрузка токена
type Claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// UserID возвращает ID пользователя из subject
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("некорректный subject токена: %w", err)
	}
	return id, nil
}

// Pair access и refresh токены
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenIssuer выпускает и проверяет JWT, подписанные HS256
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenIssuer создает новый экземпляр TokenIssuer
func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair выпускает пару токенов для пользователя
func (t *TokenIssuer) IssuePair(userID int64) (Pair, error) {
	access, err := t.IssueAccess(userID)
	if err != nil {
		return Pair{}, err
	}

	refresh, err := t.issue(userID, TokenTypeRefresh, t.refreshTTL)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Access: access, Refresh: refresh}, nil
}

// IssueAccess выпускает только access токен
func (t *TokenIssuer) IssueAccess(userID int64) (string, error) {
	return t.issue(userID, TokenTypeAccess, t.accessTTL)
}

// ParseAccess проверяет access токен
func (t *TokenIssuer) ParseAccess(token string) (*Claims, error) {
	return t.parse(token, TokenTypeAccess)
}

// ParseRefresh проверяет refresh токен
func (t *TokenIssuer) ParseRefresh(token string) (*Claims, error) {
	return t.parse(token, TokenTypeRefresh)
}

func (t *TokenIssuer) issue(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := t.now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

func (t *TokenIssuer) parse(tokenString, tokenType string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
