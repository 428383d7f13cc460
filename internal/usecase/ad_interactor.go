package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
	"github.com/google/uuid"
)

// adUseCase implements AdUseCase
type adUseCase struct {
	storage     ports.AdStorage
	fileStorage FileStorage
	publisher   ports.ImageCleanupPublisher
	pageSize    int
	logger      *slog.Logger
}

// NewAdUseCase создает новый экземпляр AdUseCase
// принимает хранилище объявлений, файловое хранилище картинок и издателя задач очистки
func NewAdUseCase(
	storage ports.AdStorage,
	fileStorage FileStorage,
	publisher ports.ImageCleanupPublisher,
	pageSize int,
	logger *slog.Logger,
) AdUseCase {
	return &adUseCase{
		storage:     storage,
		fileStorage: fileStorage,
		publisher:   publisher,
		pageSize:    pageSize,
		logger:      logger,
	}
}

func (uc *adUseCase) ListAds(ctx context.Context, rawPage string) (*domain.PageResult[domain.AdView], error) {
	total, err := uc.storage.CountAds(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при подсчёте объявлений: %w", err)
	}

	page := domain.ResolvePage(rawPage, uc.pageSize, total)

	ads, err := uc.storage.ListAdViews(ctx, page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении страницы %d объявлений: %w", page.Number, err)
	}
	for i := range ads {
		ads[i].Image = uc.imageURL(ads[i].Image)
	}

	return &domain.PageResult[domain.AdView]{
		Items:    ads,
		NumPages: page.NumPages,
		Total:    page.Total,
	}, nil
}

func (uc *adUseCase) GetAd(ctx context.Context, id int64) (*domain.AdView, error) {
	ad, err := uc.storage.GetAdView(ctx, id)
	if err != nil {
		return nil, err
	}
	ad.Image = uc.imageURL(ad.Image)
	return ad, nil
}

func (uc *adUseCase) CreateAd(ctx context.Context, caller *domain.User, ad *domain.Ad) (*domain.Ad, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}
	if ad.AuthorID == nil {
		ad.AuthorID = &caller.ID
	}
	ad.Image = nil

	if err := uc.storage.CreateAd(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (uc *adUseCase) UpdateAd(ctx context.Context, caller *domain.User, id int64, changes domain.AdChanges) (*domain.Ad, error) {
	ad, err := uc.authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	changes.Apply(ad)
	if err := uc.storage.UpdateAd(ctx, ad); err != nil {
		return nil, err
	}

	ad.Image = uc.imageURL(ad.Image)
	return ad, nil
}

func (uc *adUseCase) UploadImage(ctx context.Context, caller *domain.User, id int64, file io.Reader, filename, contentType string) (*domain.Ad, error) {
	ad, err := uc.authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := fmt.Sprintf("ads/%d/%s%s", id, uuid.NewString(), strings.ToLower(filepath.Ext(filename)))

	if _, err := uc.fileStorage.UploadFile(ctx, key, file, contentType); err != nil {
		return nil, fmt.Errorf("usecase: ошибка загрузки картинки объявления %d: %w", id, err)
	}

	if err := uc.storage.UpdateAdImage(ctx, id, &key); err != nil {
		// объект уже в хранилище, но не привязан к объявлению
		if delErr := uc.fileStorage.DeleteFile(ctx, key); delErr != nil {
			uc.logger.Error("failed to remove orphaned image", "key", key, "error", delErr)
		}
		return nil, err
	}

	if ad.Image != nil && *ad.Image != key {
		uc.queueCleanup(ctx, *ad.Image, id, payloads.ReasonImageReplaced)
	}

	uc.logger.Info("ad image uploaded", "ad_id", id, "key", key)
	ad.Image = uc.imageURL(&key)
	return ad, nil
}

func (uc *adUseCase) DeleteAd(ctx context.Context, caller *domain.User, id int64) error {
	ad, err := uc.authorize(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := uc.storage.DeleteAd(ctx, id); err != nil {
		return err
	}

	if ad.Image != nil {
		uc.queueCleanup(ctx, *ad.Image, id, payloads.ReasonAdDeleted)
	}
	return nil
}

// authorize загружает объявление и проверяет, что caller автор или модератор
func (uc *adUseCase) authorize(ctx context.Context, caller *domain.User, id int64) (*domain.Ad, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}

	ad, err := uc.storage.GetAdByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.IsAdAuthorOrStaff(caller, ad) {
		return nil, &domain.ForbiddenError{Message: domain.AdPermissionDenied}
	}
	return ad, nil
}

// queueCleanup ставит задачу на удаление объекта. Запись в бд уже зафиксирована,
// поэтому ошибка публикации только логируется.
func (uc *adUseCase) queueCleanup(ctx context.Context, key string, adID int64, reason string) {
	err := uc.publisher.PublishImageCleanup(ctx, payloads.ImageCleanupPayload{
		Key:    key,
		AdID:   adID,
		Reason: reason,
	})
	if err != nil {
		uc.logger.Error("failed to queue image cleanup",
			"ad_id", adID,
			"key", key,
			"reason", reason,
			"error", err,
		)
	}
}

func (uc *adUseCase) imageURL(key *string) *string {
	if key == nil || *key == "" {
		return nil
	}
	url := uc.fileStorage.PublicURL(*key)
	return &url
}

