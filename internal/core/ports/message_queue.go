package ports

import (
	"context"

	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
)

// ImageCleanupPublisher публикует задачи на удаление картинок объявлений,
// используется use case'ом объявлений
type ImageCleanupPublisher interface {
	PublishImageCleanup(ctx context.Context, payload payloads.ImageCleanupPayload) error
}

// ImageCleanupConsumer получает задачи на удаление картинок,
// используется воркером
type ImageCleanupConsumer interface {
	// StartConsumingImageCleanup начинает прослушивание очереди;
	// handler вызывается для каждого полученного сообщения
	StartConsumingImageCleanup(ctx context.Context, handler func(context.Context, payloads.ImageCleanupPayload) error) error
}
