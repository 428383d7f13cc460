package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
	"github.com/GoArmGo/AdBoard/internal/usecase"
)

// runWorker слушает очередь очистки и удаляет картинки из файлового хранилища
func runWorker(
	ctx context.Context,
	consumer ports.ImageCleanupConsumer,
	fileStorage usecase.FileStorage,
	logger *slog.Logger,
) error {
	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	messageHandler := func(ctx context.Context, payload payloads.ImageCleanupPayload) error {
		logger.Debug("removing image", "key", payload.Key, "ad_id", payload.AdID, "reason", payload.Reason)

		if err := fileStorage.DeleteFile(ctx, payload.Key); err != nil {
			return fmt.Errorf("не удалось удалить картинку %s: %w", payload.Key, err)
		}
		return nil
	}

	if err := consumer.StartConsumingImageCleanup(workerCtx, messageHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	logger.Info("worker started, waiting for cleanup tasks")

	<-ctx.Done()

	logger.Info("worker stopped")
	return nil
}
