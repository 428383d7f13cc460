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
	listSelectionsQuery = `SELECT id, name, owner_id FROM selections ORDER BY id`
	getSelectionQuery   = `SELECT id, name, owner_id FROM selections WHERE id = $1`
	selectionItemsQuery = `SELECT ad_id FROM selection_items WHERE selection_id = $1 ORDER BY ad_id`

	getSelectionViewQuery = `
	SELECT s.id, s.name, u.username AS owner,
	       COALESCE((SELECT ARRAY_AGG(si.ad_id ORDER BY si.ad_id)
	                 FROM selection_items si WHERE si.selection_id = s.id), '{}') AS items,
	       COALESCE((SELECT ARRAY_AGG(l.name ORDER BY l.name)
	                 FROM user_locations ul JOIN locations l ON l.id = ul.location_id
	                 WHERE ul.user_id = s.owner_id), '{}') AS location_names
	FROM selections s
	JOIN users u ON u.id = s.owner_id
	WHERE s.id = $1`

	insertSelectionQuery     = `INSERT INTO selections (name, owner_id) VALUES ($1, $2) RETURNING id`
	updateSelectionQuery     = `UPDATE selections SET name = $1 WHERE id = $2`
	deleteSelectionQuery     = `DELETE FROM selections WHERE id = $1`
	clearSelectionItemsQuery = `DELETE FROM selection_items WHERE selection_id = $1`
	insertSelectionItemQuery = `
	INSERT INTO selection_items (selection_id, ad_id) VALUES ($1, $2)
	ON CONFLICT DO NOTHING`
)

type selectionViewRow struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	Owner         string         `db:"owner"`
	Items         pq.Int64Array  `db:"items"`
	LocationNames pq.StringArray `db:"location_names"`
}

// SelectionStorage реализует интерфейс ports.SelectionStorage на sqlx
type SelectionStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewSelectionStorage создает новый экземпляр SelectionStorage
func NewSelectionStorage(db *sqlx.DB, logger *slog.Logger) *SelectionStorage {
	return &SelectionStorage{db: db, logger: logger}
}

// ListSelections получает все подборки без объявлений
func (s *SelectionStorage) ListSelections(ctx context.Context) ([]domain.Selection, error) {
	var selections []domain.Selection
	if err := s.db.SelectContext(ctx, &selections, listSelectionsQuery); err != nil {
		s.logger.Error("failed to list selections", "error", err)
		return nil, fmt.Errorf("ошибка при получении списка подборок: %w", err)
	}
	return selections, nil
}

// GetSelectionView получает подборку с владельцем, объявлениями и адресами владельца
func (s *SelectionStorage) GetSelectionView(ctx context.Context, id int64) (*domain.SelectionView, error) {
	var row selectionViewRow
	if err := s.db.GetContext(ctx, &row, getSelectionViewQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get selection view", "selection_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении подборки по ID: %w", err)
	}

	view := &domain.SelectionView{
		ID:            row.ID,
		Name:          row.Name,
		Owner:         row.Owner,
		Items:         []int64(row.Items),
		LocationNames: []string(row.LocationNames),
	}
	if view.Items == nil {
		view.Items = []int64{}
	}
	if view.LocationNames == nil {
		view.LocationNames = []string{}
	}
	return view, nil
}

// GetSelectionByID получает подборку вместе с ID объявлений
func (s *SelectionStorage) GetSelectionByID(ctx context.Context, id int64) (*domain.Selection, error) {
	var selection domain.Selection
	if err := s.db.GetContext(ctx, &selection, getSelectionQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get selection", "selection_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении подборки по ID: %w", err)
	}

	items := []int64{}
	if err := s.db.SelectContext(ctx, &items, selectionItemsQuery, id); err != nil {
		s.logger.Error("failed to get selection items", "selection_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении объявлений подборки: %w", err)
	}
	selection.Items = items
	return &selection, nil
}

// CreateSelection сохраняет подборку и её объявления в одной транзакции
func (s *SelectionStorage) CreateSelection(ctx context.Context, selection *domain.Selection) error {
	start := time.Now()

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, insertSelectionQuery, selection.Name, selection.OwnerID).Scan(&selection.ID); err != nil {
			return fmt.Errorf("insert selection: %w", err)
		}
		return insertItems(ctx, tx, selection.ID, selection.Items)
	})
	if err != nil {
		s.logger.Error("failed to create selection", "owner_id", selection.OwnerID, "error", err)
		return err
	}

	s.logger.Info("selection created",
		"selection_id", selection.ID,
		"items", len(selection.Items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// UpdateSelection меняет название и при необходимости заменяет набор объявлений
func (s *SelectionStorage) UpdateSelection(ctx context.Context, selection *domain.Selection, replaceItems bool) error {
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, updateSelectionQuery, selection.Name, selection.ID)
		if err != nil {
			return fmt.Errorf("update selection: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.ErrNotFound
		}
		if !replaceItems {
			return nil
		}
		if _, err := tx.ExecContext(ctx, clearSelectionItemsQuery, selection.ID); err != nil {
			return fmt.Errorf("clear selection items: %w", err)
		}
		return insertItems(ctx, tx, selection.ID, selection.Items)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("failed to update selection", "selection_id", selection.ID, "error", err)
		}
		return err
	}

	s.logger.Info("selection updated", "selection_id", selection.ID, "items_replaced", replaceItems)
	return nil
}

// DeleteSelection удаляет подборку
func (s *SelectionStorage) DeleteSelection(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteSelectionQuery, id)
	if err != nil {
		s.logger.Error("failed to delete selection", "selection_id", id, "error", err)
		return fmt.Errorf("ошибка при удалении подборки: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	s.logger.Info("selection deleted", "selection_id", id)
	return nil
}

func insertItems(ctx context.Context, tx *sqlx.Tx, selectionID int64, items []int64) error {
	for _, adID := range items {
		if _, err := tx.ExecContext(ctx, insertSelectionItemQuery, selectionID, adID); err != nil {
			if client.IsForeignKeyViolation(err) {
				return domain.NewValidationError("items", invalidPK(adID))
			}
			return fmt.Errorf("insert selection item %d: %w", adID, err)
		}
	}
	return nil
}
