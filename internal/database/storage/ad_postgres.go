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

const (
	adViewSelect = `
	SELECT a.id, a.name, a.price, a.description, a.image, a.is_published,
	       u.username AS author, c.name AS category,
	       COALESCE(ARRAY_AGG(l.name ORDER BY l.name) FILTER (WHERE l.name IS NOT NULL), '{}') AS location_names
	FROM ads a
	JOIN categories c ON c.id = a.category_id
	LEFT JOIN users u ON u.id = a.author_id
	LEFT JOIN user_locations ul ON ul.user_id = a.author_id
	LEFT JOIN locations l ON l.id = ul.location_id`

	listAdViewsQuery = adViewSelect + `
	GROUP BY a.id, u.username, c.name
	ORDER BY a.price DESC, a.id
	LIMIT $1 OFFSET $2`

	getAdViewQuery = adViewSelect + `
	WHERE a.id = $1
	GROUP BY a.id, u.username, c.name`

	countAdsQuery = `SELECT COUNT(*) FROM ads`

	getAdByIDQuery = `
	SELECT id, name, price, description, image, is_published, author_id, category_id
	FROM ads WHERE id = $1`

	insertAdQuery = `
	INSERT INTO ads (name, price, description, image, is_published, author_id, category_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`

	updateAdQuery = `
	UPDATE ads
	SET name = $1, price = $2, description = $3, is_published = $4, author_id = $5, category_id = $6
	WHERE id = $7`

	updateAdImageQuery = `UPDATE ads SET image = $1 WHERE id = $2`

	deleteAdQuery = `DELETE FROM ads WHERE id = $1`
)

type adViewRow struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	Price         int64          `db:"price"`
	Description   *string        `db:"description"`
	Image         *string        `db:"image"`
	IsPublished   bool           `db:"is_published"`
	Author        *string        `db:"author"`
	Category      string         `db:"category"`
	LocationNames pq.StringArray `db:"location_names"`
}

func (r adViewRow) toDomain() domain.AdView {
	names := []string(r.LocationNames)
	if names == nil {
		names = []string{}
	}
	return domain.AdView{
		ID:            r.ID,
		Name:          r.Name,
		Price:         r.Price,
		Description:   r.Description,
		Image:         r.Image,
		IsPublished:   r.IsPublished,
		Author:        r.Author,
		Category:      r.Category,
		LocationNames: names,
	}
}

// AdStorage реализует интерфейс ports.AdStorage на sqlx
type AdStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewAdStorage создает новый экземпляр AdStorage
func NewAdStorage(db *sqlx.DB, logger *slog.Logger) *AdStorage {
	return &AdStorage{db: db, logger: logger}
}

// CountAds возвращает общее количество объявлений
func (s *AdStorage) CountAds(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.GetContext(ctx, &total, countAdsQuery); err != nil {
		s.logger.Error("failed to count ads", "error", err)
		return 0, fmt.Errorf("ошибка при подсчёте объявлений: %w", err)
	}
	return total, nil
}

// ListAdViews получает страницу объявлений, отсортированных по убыванию цены,
// с именами автора и категории и адресами автора
func (s *AdStorage) ListAdViews(ctx context.Context, offset, limit int) ([]domain.AdView, error) {
	start := time.Now()

	var rows []adViewRow
	if err := s.db.SelectContext(ctx, &rows, listAdViewsQuery, limit, offset); err != nil {
		s.logger.Error("failed to list ads", "offset", offset, "limit", limit, "error", err)
		return nil, fmt.Errorf("ошибка при получении списка объявлений: %w", err)
	}

	ads := make([]domain.AdView, 0, len(rows))
	for _, r := range rows {
		ads = append(ads, r.toDomain())
	}

	s.logger.Debug("listed ads",
		"offset", offset,
		"limit", limit,
		"count", len(ads),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return ads, nil
}

// GetAdView получает объявление с подставленными связанными полями
func (s *AdStorage) GetAdView(ctx context.Context, id int64) (*domain.AdView, error) {
	var row adViewRow
	if err := s.db.GetContext(ctx, &row, getAdViewQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get ad view", "ad_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении объявления по ID: %w", err)
	}
	view := row.toDomain()
	return &view, nil
}

// GetAdByID получает объявление как есть
func (s *AdStorage) GetAdByID(ctx context.Context, id int64) (*domain.Ad, error) {
	var ad domain.Ad
	if err := s.db.GetContext(ctx, &ad, getAdByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get ad", "ad_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении объявления по ID: %w", err)
	}
	return &ad, nil
}

// CreateAd сохраняет новое объявление
func (s *AdStorage) CreateAd(ctx context.Context, ad *domain.Ad) error {
	start := time.Now()

	err := s.db.QueryRowxContext(ctx, insertAdQuery,
		ad.Name, ad.Price, ad.Description, ad.Image, ad.IsPublished, ad.AuthorID, ad.CategoryID,
	).Scan(&ad.ID)
	if err != nil {
		if verr := adReferenceError(err, ad); verr != nil {
			return verr
		}
		s.logger.Error("failed to create ad", "name", ad.Name, "error", err)
		return fmt.Errorf("ошибка при сохранении объявления: %w", err)
	}

	s.logger.Info("ad created",
		"ad_id", ad.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// UpdateAd сохраняет изменяемые поля объявления
func (s *AdStorage) UpdateAd(ctx context.Context, ad *domain.Ad) error {
	res, err := s.db.ExecContext(ctx, updateAdQuery,
		ad.Name, ad.Price, ad.Description, ad.IsPublished, ad.AuthorID, ad.CategoryID, ad.ID,
	)
	if err != nil {
		if verr := adReferenceError(err, ad); verr != nil {
			return verr
		}
		s.logger.Error("failed to update ad", "ad_id", ad.ID, "error", err)
		return fmt.Errorf("ошибка при обновлении объявления: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	s.logger.Info("ad updated", "ad_id", ad.ID)
	return nil
}

// UpdateAdImage меняет ключ картинки объявления
func (s *AdStorage) UpdateAdImage(ctx context.Context, id int64, image *string) error {
	res, err := s.db.ExecContext(ctx, updateAdImageQuery, image, id)
	if err != nil {
		s.logger.Error("failed to update ad image", "ad_id", id, "error", err)
		return fmt.Errorf("ошибка при обновлении картинки объявления: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAd удаляет объявление
func (s *AdStorage) DeleteAd(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteAdQuery, id)
	if err != nil {
		s.logger.Error("failed to delete ad", "ad_id", id, "error", err)
		return fmt.Errorf("ошибка при удалении объявления: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	s.logger.Info("ad deleted", "ad_id", id)
	return nil
}

// adReferenceError переводит нарушение внешнего ключа в ошибку валидации нужного поля
func adReferenceError(err error, ad *domain.Ad) error {
	if !client.IsForeignKeyViolation(err) {
		return nil
	}
	switch client.ConstraintName(err) {
	case "ads_author_id_fkey":
		var id int64
		if ad.AuthorID != nil {
			id = *ad.AuthorID
		}
		return domain.NewValidationError("author", invalidPK(id))
	default:
		return domain.NewValidationError("category", invalidPK(ad.CategoryID))
	}
}
