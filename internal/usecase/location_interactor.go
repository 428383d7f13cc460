package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/domain"
)

// locationUseCase implements LocationUseCase.
// Вся логика адресов сводится к хранилищу: уникальность имени проверяет бд.
type locationUseCase struct {
	storage ports.LocationStorage
	logger  *slog.Logger
}

// NewLocationUseCase создает новый экземпляр LocationUseCase
func NewLocationUseCase(storage ports.LocationStorage, logger *slog.Logger) LocationUseCase {
	return &locationUseCase{storage: storage, logger: logger}
}

func (uc *locationUseCase) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return uc.storage.ListLocations(ctx)
}

func (uc *locationUseCase) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	return uc.storage.GetLocationByID(ctx, id)
}

func (uc *locationUseCase) CreateLocation(ctx context.Context, location *domain.Location) error {
	return uc.storage.CreateLocation(ctx, location)
}

func (uc *locationUseCase) UpdateLocation(ctx context.Context, location *domain.Location) error {
	return uc.storage.UpdateLocation(ctx, location)
}

func (uc *locationUseCase) DeleteLocation(ctx context.Context, id int64) error {
	return uc.storage.DeleteLocation(ctx, id)
}
