package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/AdBoard/internal/database/client"
	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const usernameTaken = "A user with that username already exists."

const (
	userProfileSelect = `
	SELECT u.id, u.username, u.first_name, u.last_name, u.role, u.age,
	       COALESCE(ARRAY_AGG(l.name ORDER BY l.name) FILTER (WHERE l.name IS NOT NULL), '{}') AS location_names,
	       (SELECT COUNT(*) FROM ads a WHERE a.author_id = u.id AND a.is_published) AS total_ads
	FROM users u
	LEFT JOIN user_locations ul ON ul.user_id = u.id
	LEFT JOIN locations l ON l.id = ul.location_id`

	listUserProfilesQuery = userProfileSelect + `
	GROUP BY u.id
	ORDER BY u.username`

	getUserProfileQuery = userProfileSelect + `
	WHERE u.id = $1
	GROUP BY u.id`

	getUserByIDQuery       = `SELECT id, username, password_hash, first_name, last_name, role, age FROM users WHERE id = $1`
	getUserByUsernameQuery = `SELECT id, username, password_hash, first_name, last_name, role, age FROM users WHERE username = $1`

	insertUserQuery = `
	INSERT INTO users (username, password_hash, first_name, last_name, role, age)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

	updateUserQuery = `
	UPDATE users
	SET username = $1, password_hash = $2, first_name = $3, last_name = $4, role = $5, age = $6
	WHERE id = $7`

	deleteUserQuery = `DELETE FROM users WHERE id = $1`

	getOrCreateLocationQuery = `
	INSERT INTO locations (name) VALUES ($1)
	ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
	RETURNING id`

	linkUserLocationQuery = `
	INSERT INTO user_locations (user_id, location_id) VALUES ($1, $2)
	ON CONFLICT DO NOTHING`
)

type userProfileRow struct {
	domain.User
	LocationNames pq.StringArray `db:"location_names"`
	TotalAds      int64          `db:"total_ads"`
}

func (r userProfileRow) toDomain() domain.UserProfile {
	names := []string(r.LocationNames)
	if names == nil {
		names = []string{}
	}
	return domain.UserProfile{User: r.User, LocationNames: names, TotalAds: r.TotalAds}
}

// UserStorage реализует интерфейс ports.UserStorage на sqlx
type UserStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *sqlx.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// ListUserProfiles получает всех пользователей, отсортированных по username,
// с их адресами и количеством опубликованных объявлений одним запросом
func (s *UserStorage) ListUserProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	start := time.Now()

	var rows []userProfileRow
	if err := s.db.SelectContext(ctx, &rows, listUserProfilesQuery); err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("ошибка при получении списка пользователей: %w", err)
	}

	profiles := make([]domain.UserProfile, 0, len(rows))
	for _, r := range rows {
		profiles = append(profiles, r.toDomain())
	}

	s.logger.Debug("listed users",
		"count", len(profiles),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return profiles, nil
}

// GetUserProfile получает пользователя с адресами и количеством опубликованных объявлений
func (s *UserStorage) GetUserProfile(ctx context.Context, id int64) (*domain.UserProfile, error) {
	var row userProfileRow
	if err := s.db.GetContext(ctx, &row, getUserProfileQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get user profile", "user_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении пользователя по ID: %w", err)
	}
	profile := row.toDomain()
	return &profile, nil
}

// GetUserByID получает пользователя вместе с хэшем пароля
func (s *UserStorage) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getUser(ctx, getUserByIDQuery, id)
}

// GetUserByUsername получает пользователя по username
func (s *UserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getUser(ctx, getUserByUsernameQuery, username)
}

func (s *UserStorage) getUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := s.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get user", "key", arg, "error", err)
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}
	return &user, nil
}

// CreateUser сохраняет пользователя и привязывает к нему адреса по названиям
func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User, locationNames []string) error {
	start := time.Now()

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, insertUserQuery,
			user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Role, user.Age,
		).Scan(&user.ID)
		if err != nil {
			if client.IsUniqueViolation(err) {
				return domain.NewValidationError("username", usernameTaken)
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return linkLocations(ctx, tx, user.ID, locationNames)
	})
	if err != nil {
		s.logger.Error("failed to create user", "username", user.Username, "error", err)
		return err
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"locations", len(locationNames),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// UpdateUser сохраняет поля пользователя и добавляет новые адреса, не трогая существующие
func (s *UserStorage) UpdateUser(ctx context.Context, user *domain.User, addLocationNames []string) error {
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, updateUserQuery,
			user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Role, user.Age, user.ID,
		)
		if err != nil {
			if client.IsUniqueViolation(err) {
				return domain.NewValidationError("username", usernameTaken)
			}
			return fmt.Errorf("update user: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.ErrNotFound
		}
		return linkLocations(ctx, tx, user.ID, addLocationNames)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("failed to update user", "user_id", user.ID, "error", err)
		}
		return err
	}

	s.logger.Info("user updated", "user_id", user.ID)
	return nil
}

// DeleteUser удаляет пользователя; его объявления и подборки удаляются каскадом
func (s *UserStorage) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("ошибка при удалении пользователя: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// linkLocations находит или создаёт адреса по названиям и привязывает их к пользователю
func linkLocations(ctx context.Context, tx *sqlx.Tx, userID int64, names []string) error {
	for _, name := range names {
		var locationID int64
		if err := tx.QueryRowxContext(ctx, getOrCreateLocationQuery, name).Scan(&locationID); err != nil {
			return fmt.Errorf("get or create location %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, linkUserLocationQuery, userID, locationID); err != nil {
			return fmt.Errorf("link location %q: %w", name, err)
		}
	}
	return nil
}
