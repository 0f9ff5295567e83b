package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petcarebr/petshop-scheduler/internal/config"
	"github.com/petcarebr/petshop-scheduler/internal/infra/cloud"
	"github.com/petcarebr/petshop-scheduler/internal/metrics"
	"github.com/petcarebr/petshop-scheduler/internal/notify"
	"github.com/petcarebr/petshop-scheduler/internal/routes"
	"github.com/petcarebr/petshop-scheduler/internal/store"
	"github.com/petcarebr/petshop-scheduler/pkg/logger"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	m := metrics.New("petshop_scheduler")

	// Backend remoto é opcional: sem ele o store opera só com o cache
	// local, em modo degradado permanente.
	var cloudStore cloud.DocumentStore
	switch cfg.CloudBackend {
	case "redis":
		cloudStore = cloud.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		zlog.Info("backend remoto: redis", zap.String("addr", cfg.RedisAddr))
	case "postgres":
		pg, err := cloud.NewPostgresStore(cfg.DBUrl)
		if err != nil {
			zlog.Fatal("failed to connect to postgres", zap.Error(err))
		}
		cloudStore = pg
		zlog.Info("backend remoto: postgres")
	case "none":
		zlog.Warn("sem backend remoto configurado, operando apenas com cache local")
	default:
		zlog.Fatal("CLOUD_BACKEND inválido", zap.String("value", cfg.CloudBackend))
	}

	st := store.New(cloudStore, cfg.RemoteTimeout, zlog, m)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 15*time.Second)
	if err := st.Bootstrap(bootCtx); err != nil {
		zlog.Fatal("bootstrap failed", zap.Error(err))
	}
	cancelBoot()

	notifier := notify.NewDispatcher(zlog, cfg.NotifyQueueSize)
	defer notifier.Close()

	r := gin.Default()
	routes.RegisterRoutes(r, st, cfg, zlog, m, notifier)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		zlog.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
}
