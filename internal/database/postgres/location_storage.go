package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/database/client"
	"github.com/GoArmGo/AdBoard/internal/domain"
	"gorm.io/gorm"
)

const locationNameTaken = "location with this name already exists."

// GormLocationStorage реализует интерфейс ports.LocationStorage с использованием GORM
type GormLocationStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormLocationStorage создает новый экземпляр GormLocationStorage
func NewGormLocationStorage(db *gorm.DB, logger *slog.Logger) *GormLocationStorage {
	return &GormLocationStorage{db: db, logger: logger}
}

// ListLocations получает все адреса
func (s *GormLocationStorage) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var locations []domain.Location
	if err := s.db.WithContext(ctx).Order("id").Find(&locations).Error; err != nil {
		s.logger.Error("failed to list locations", "error", err)
		return nil, fmt.Errorf("ошибка при получении списка адресов: %w", err)
	}
	return locations, nil
}

// GetLocationByID получает адрес по ID
func (s *GormLocationStorage) GetLocationByID(ctx context.Context, id int64) (*domain.Location, error) {
	var location domain.Location
	if err := s.db.WithContext(ctx).First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get location", "id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении адреса по ID: %w", err)
	}
	return &location, nil
}

// CreateLocation сохраняет новый адрес
func (s *GormLocationStorage) CreateLocation(ctx context.Context, location *domain.Location) error {
	if err := s.db.WithContext(ctx).Create(location).Error; err != nil {
		if client.IsUniqueViolation(err) {
			return domain.NewValidationError("name", locationNameTaken)
		}
		s.logger.Error("failed to create location", "name", location.Name, "error", err)
		return fmt.Errorf("ошибка при сохранении адреса: %w", err)
	}
	s.logger.Info("location created", "id", location.ID, "name", location.Name)
	return nil
}

// UpdateLocation сохраняет все поля адреса
func (s *GormLocationStorage) UpdateLocation(ctx context.Context, location *domain.Location) error {
	result := s.db.WithContext(ctx).
		Model(location).
		Select("name", "lat", "lng").
		Updates(location)
	if result.Error != nil {
		if client.IsUniqueViolation(result.Error) {
			return domain.NewValidationError("name", locationNameTaken)
		}
		s.logger.Error("failed to update location", "id", location.ID, "error", result.Error)
		return fmt.Errorf("ошибка при обновлении адреса: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLocation удаляет адрес
func (s *GormLocationStorage) DeleteLocation(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&domain.Location{}, id)
	if result.Error != nil {
		s.logger.Error("failed to delete location", "id", id, "error", result.Error)
		return fmt.Errorf("ошибка при удалении адреса: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
