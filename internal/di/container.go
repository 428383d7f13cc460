package di

import (
	"context"
	"fmt"

	"github.com/GoArmGo/AdBoard/internal/adapter/storage/minio"
	"github.com/GoArmGo/AdBoard/internal/app"
	"github.com/GoArmGo/AdBoard/internal/auth"
	"github.com/GoArmGo/AdBoard/internal/config"
	"github.com/GoArmGo/AdBoard/internal/database/client"
	"github.com/GoArmGo/AdBoard/internal/database/postgres"
	"github.com/GoArmGo/AdBoard/internal/database/storage"
	"github.com/GoArmGo/AdBoard/internal/handler"
	"github.com/GoArmGo/AdBoard/internal/logger"
	"github.com/GoArmGo/AdBoard/internal/rabbitmq"
	"github.com/GoArmGo/AdBoard/internal/usecase"
)

// maxParallelUploads ограничивает число одновременных загрузок картинок
const maxParallelUploads = 5

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp(ctx context.Context) (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. PostgreSQL: sqlx-клиент с миграциями и GORM поверх того же пула
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	gormDB, err := postgres.NewGormDB(dbClient.DB.DB)
	if err != nil {
		_ = dbClient.Close()
		return nil, err
	}

	// 3. Инициализация хранилищ
	categoryStorage := postgres.NewGormCategoryStorage(gormDB, slogger)
	locationStorage := postgres.NewGormLocationStorage(gormDB, slogger)
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	adStorage := storage.NewAdStorage(dbClient.DB, slogger)
	selectionStorage := storage.NewSelectionStorage(dbClient.DB, slogger)

	// 4. Файловое хранилище картинок
	fileStorage, err := minio.NewMinioClient(ctx, cfg, slogger)
	if err != nil {
		_ = dbClient.Close()
		return nil, fmt.Errorf("ошибка инициализации MinIO: %w", err)
	}

	// 5. RabbitMQ: publisher для сервера и consumer для воркера
	rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger)
	if err != nil {
		_ = dbClient.Close()
		return nil, fmt.Errorf("ошибка инициализации RabbitMQ: %w", err)
	}

	// 6. Инициализация бизнес-логики (usecases)
	tokenIssuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	categoryUseCase := usecase.NewCategoryUseCase(categoryStorage, cfg.PageSize, slogger)
	locationUseCase := usecase.NewLocationUseCase(locationStorage, slogger)
	userUseCase := usecase.NewUserUseCase(userStorage, slogger)
	authUseCase := usecase.NewAuthUseCase(userStorage, tokenIssuer, slogger)
	adUseCase := usecase.NewAdUseCase(adStorage, fileStorage, rabbitMQClient, cfg.PageSize, slogger)
	selectionUseCase := usecase.NewSelectionUseCase(selectionStorage, slogger)

	// 7. HTTP-слой
	uploadLimiter := make(chan struct{}, maxParallelUploads)

	router := handler.NewRouter(handler.Handlers{
		Category:  handler.NewCategoryHandler(categoryUseCase, slogger),
		Location:  handler.NewLocationHandler(locationUseCase, slogger),
		User:      handler.NewUserHandler(userUseCase, authUseCase, slogger),
		Ad:        handler.NewAdHandler(adUseCase, uploadLimiter, cfg.UploadMaxBytes, slogger),
		Selection: handler.NewSelectionHandler(selectionUseCase, slogger),
	}, authUseCase, handler.RouterOptions{
		RequestTimeout: cfg.RequestTimeout,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, slogger)

	// 8. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient.DB,
		router,
		fileStorage,
		rabbitMQClient,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
