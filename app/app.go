package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookworm-labs/bookreview-service/config"
	"github.com/bookworm-labs/bookreview-service/internal/audit"
	"github.com/bookworm-labs/bookreview-service/internal/cache"
	"github.com/bookworm-labs/bookreview-service/internal/handler"
	"github.com/bookworm-labs/bookreview-service/internal/repository"
	"github.com/bookworm-labs/bookreview-service/internal/server"
	"github.com/bookworm-labs/bookreview-service/internal/service"
	"github.com/bookworm-labs/bookreview-service/migrations"
	"github.com/bookworm-labs/bookreview-service/pkg/kafka"
	"github.com/bookworm-labs/bookreview-service/pkg/logger"
	"github.com/bookworm-labs/bookreview-service/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookreview")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	redisCache := cache.NewRedisCache(cfg.Cache, log)
	if !redisCache.Available() {
		log.Warn("cache unavailable, serving from the store only")
	}

	var publisher audit.Publisher = audit.NewNoop()
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		publisher = audit.NewPublisher(producer, cfg.Kafka.Topic, log)
	}

	svc := service.NewService(repo, redisCache, publisher, service.Config{
		StatsTTL: cfg.Cache.StatsTTL,
	}, log)

	h := handler.New(svc, handler.Config{
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
	}, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err := redisCache.Close(); err != nil {
		log.Error("cache close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
