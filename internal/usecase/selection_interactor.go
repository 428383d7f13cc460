package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/domain"
)

// selectionUseCase implements SelectionUseCase
type selectionUseCase struct {
	storage ports.SelectionStorage
	logger  *slog.Logger
}

// NewSelectionUseCase создает новый экземпляр SelectionUseCase
func NewSelectionUseCase(storage ports.SelectionStorage, logger *slog.Logger) SelectionUseCase {
	return &selectionUseCase{storage: storage, logger: logger}
}

func (uc *selectionUseCase) ListSelections(ctx context.Context) ([]domain.Selection, error) {
	return uc.storage.ListSelections(ctx)
}

func (uc *selectionUseCase) GetSelection(ctx context.Context, id int64) (*domain.SelectionView, error) {
	return uc.storage.GetSelectionView(ctx, id)
}

func (uc *selectionUseCase) CreateSelection(ctx context.Context, caller *domain.User, name string, items []int64) (*domain.Selection, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}

	selection := &domain.Selection{
		Name:    name,
		OwnerID: caller.ID,
		Items:   uniqueIDs(items),
	}
	if err := uc.storage.CreateSelection(ctx, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

func (uc *selectionUseCase) UpdateSelection(ctx context.Context, caller *domain.User, id int64, changes domain.SelectionChanges) (*domain.Selection, error) {
	selection, err := uc.authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		selection.Name = *changes.Name
	}
	replaceItems := changes.Items != nil
	if replaceItems {
		selection.Items = uniqueIDs(*changes.Items)
	}

	if err := uc.storage.UpdateSelection(ctx, selection, replaceItems); err != nil {
		return nil, err
	}
	return selection, nil
}

func (uc *selectionUseCase) DeleteSelection(ctx context.Context, caller *domain.User, id int64) error {
	if _, err := uc.authorize(ctx, caller, id); err != nil {
		return err
	}
	return uc.storage.DeleteSelection(ctx, id)
}

func (uc *selectionUseCase) authorize(ctx context.Context, caller *domain.User, id int64) (*domain.Selection, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}

	selection, err := uc.storage.GetSelectionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.IsSelectionOwner(caller, selection) {
		return nil, &domain.ForbiddenError{Message: domain.SelectionPermissionDenied}
	}
	return selection, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
