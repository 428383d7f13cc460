package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/domain"
)

// categoryUseCase implements CategoryUseCase
type categoryUseCase struct {
	storage  ports.CategoryStorage
	pageSize int
	logger   *slog.Logger
}

// NewCategoryUseCase создает новый экземпляр CategoryUseCase
func NewCategoryUseCase(storage ports.CategoryStorage, pageSize int, logger *slog.Logger) CategoryUseCase {
	return &categoryUseCase{storage: storage, pageSize: pageSize, logger: logger}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, rawPage string) (*domain.PageResult[domain.Category], error) {
	total, err := uc.storage.CountCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при подсчёте категорий: %w", err)
	}

	page := domain.ResolvePage(rawPage, uc.pageSize, total)

	categories, err := uc.storage.ListCategories(ctx, page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении страницы %d категорий: %w", page.Number, err)
	}

	return &domain.PageResult[domain.Category]{
		Items:    categories,
		NumPages: page.NumPages,
		Total:    page.Total,
	}, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return uc.storage.GetCategoryByID(ctx, id)
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, category *domain.Category) error {
	if err := uc.storage.CreateCategory(ctx, category); err != nil {
		return fmt.Errorf("usecase: ошибка при создании категории: %w", err)
	}
	return nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return uc.storage.UpdateCategory(ctx, category)
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return uc.storage.DeleteCategory(ctx, id)
}
