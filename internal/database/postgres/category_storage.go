package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/AdBoard/internal/domain"
	"gorm.io/gorm"
)

// GormCategoryStorage реализует интерфейс ports.CategoryStorage с использованием GORM
type GormCategoryStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormCategoryStorage создает новый экземпляр GormCategoryStorage
func NewGormCategoryStorage(db *gorm.DB, logger *slog.Logger) *GormCategoryStorage {
	return &GormCategoryStorage{db: db, logger: logger}
}

// CountCategories возвращает общее количество категорий
func (s *GormCategoryStorage) CountCategories(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.Category{}).Count(&total).Error; err != nil {
		s.logger.Error("failed to count categories", "error", err)
		return 0, fmt.Errorf("ошибка при подсчёте категорий: %w", err)
	}
	return total, nil
}

// ListCategories получает страницу категорий, отсортированных по названию
func (s *GormCategoryStorage) ListCategories(ctx context.Context, offset, limit int) ([]domain.Category, error) {
	start := time.Now()

	var categories []domain.Category
	result := s.db.WithContext(ctx).
		Order("name").
		Offset(offset).
		Limit(limit).
		Find(&categories)
	if result.Error != nil {
		s.logger.Error("failed to list categories", "offset", offset, "limit", limit, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении списка категорий: %w", result.Error)
	}

	s.logger.Debug("listed categories",
		"count", len(categories),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return categories, nil
}

// GetCategoryByID получает категорию по ID
func (s *GormCategoryStorage) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	result := s.db.WithContext(ctx).First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get category", "id", id, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении категории по ID: %w", result.Error)
	}
	return &category, nil
}

// CreateCategory сохраняет новую категорию
func (s *GormCategoryStorage) CreateCategory(ctx context.Context, category *domain.Category) error {
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		s.logger.Error("failed to create category", "name", category.Name, "error", err)
		return fmt.Errorf("ошибка при сохранении категории: %w", err)
	}
	s.logger.Info("category created", "id", category.ID, "name", category.Name)
	return nil
}

// UpdateCategory обновляет название и активность категории
func (s *GormCategoryStorage) UpdateCategory(ctx context.Context, category *domain.Category) error {
	result := s.db.WithContext(ctx).
		Model(category).
		Select("name", "is_active").
		Updates(category)
	if result.Error != nil {
		s.logger.Error("failed to update category", "id", category.ID, "error", result.Error)
		return fmt.Errorf("ошибка при обновлении категории: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCategory удаляет категорию вместе с её объявлениями
func (s *GormCategoryStorage) DeleteCategory(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if result.Error != nil {
		s.logger.Error("failed to delete category", "id", id, "error", result.Error)
		return fmt.Errorf("ошибка при удалении категории: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	s.logger.Info("category deleted", "id", id)
	return nil
}
