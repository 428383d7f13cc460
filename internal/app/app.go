package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/AdBoard/internal/config"
	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/usecase"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Config             *config.Config
	logger             *slog.Logger
	db                 *sqlx.DB
	router             http.Handler
	fileStorage        usecase.FileStorage
	imageCleanupBroker ports.ImageCleanupConsumer
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	db *sqlx.DB,
	router http.Handler,
	fileStorage usecase.FileStorage,
	imageCleanupConsumer ports.ImageCleanupConsumer) *App {
	return &App{
		Config:             cfg,
		logger:             logger,
		db:                 db,
		router:             router,
		fileStorage:        fileStorage,
		imageCleanupBroker: imageCleanupConsumer,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме и блокируется до сигнала завершения
func (a *App) Run(ctx context.Context, mode *string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting", "mode", *mode)

	var err error

	switch *mode {
	case "server":
		err = runServer(ctx, ":"+a.Config.ServerPort, a.router, a.logger)

	case "worker":
		err = runWorker(ctx, a.imageCleanupBroker, a.fileStorage, a.logger)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", *mode)
	}

	// ресурсы закрываем в любом случае
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown failed", "error", closeErr)
	}

	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if closer, ok := a.imageCleanupBroker.(interface{ Close() }); ok {
		closer.Close()
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	a.logger.Info("resources released")
	return nil
}
