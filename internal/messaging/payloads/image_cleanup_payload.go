package payloads

// ImageCleanupPayload задача на удаление объекта картинки из файлового хранилища
// через RabbitMQ.
type ImageCleanupPayload struct {
	Key    string `json:"key"`
	AdID   int64  `json:"ad_id"`
	Reason string `json:"reason"`
}

const (
	ReasonAdDeleted     = "ad_deleted"
	ReasonImageReplaced = "image_replaced"
)
