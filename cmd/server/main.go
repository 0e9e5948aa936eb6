package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"travelmate/internal/app/server/api"
	"travelmate/internal/app/server/config"
	"travelmate/internal/domain/document"
	"travelmate/internal/infrastructure/storage/memory"
	"travelmate/internal/infrastructure/storage/postgres"
	"travelmate/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newRepository(ctx, conf, log)
	if err != nil {
		log.Error("Ошибка инициализации хранилища", "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	server := &http.Server{
		Addr:         conf.Server.RunAddress,
		Handler:      api.New(repo, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Сервер запущен",
			"address", conf.Server.RunAddress,
			"storage", conf.Storage,
			"base", "/v1/projects/"+conf.Server.ProjectID+"/databases/"+config.DefaultDatabase+"/documents",
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Ошибка сервера", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Остановка сервера")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Ошибка остановки сервера", "error", err)
	}
}

func newRepository(ctx context.Context, conf *config.Config, log *slog.Logger) (document.Repository, func(), error) {
	if conf.Storage == config.StorageMemory {
		return memory.NewDocumentRepository(), func() {}, nil
	}

	storage, err := postgres.New(ctx, conf)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := storage.Close(); err != nil {
			log.Warn("Ошибка закрытия хранилища", "error", err)
		}
	}
	return postgres.NewDocumentRepository(storage.Pool(), log), closeFn, nil
}
