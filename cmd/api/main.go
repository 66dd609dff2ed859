package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"supermarket-admin/internal/cache"
	"supermarket-admin/internal/config"
	"supermarket-admin/internal/database"
	"supermarket-admin/internal/logger"
	"supermarket-admin/internal/metrics"
	"supermarket-admin/internal/routes"
	"supermarket-admin/internal/stores"
)

const cacheCleanupInterval = 5 * time.Minute

func main() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.LogLevel).WithField("component", "api")

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	// Fatal sale con os.Exit, así que stop se llama antes y no con defer.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, log)
	stop()

	if err != nil {
		log.WithError(err).Fatal("server stopped with error")
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Entry) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	set, client, err := openStores(ctx, cfg, m)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() {
			if err := database.Disconnect(client); err != nil {
				log.WithError(err).Warn("mongo disconnect failed")
			}
		}()
	}

	responses := cache.New(cfg.CacheTTL)
	responses.Start(ctx, cacheCleanupInterval)

	gin.SetMode(cfg.GinMode)
	router := routes.NewRouter(routes.Dependencies{
		Stores:      set,
		Cache:       responses,
		Logger:      log,
		Gatherer:    registry,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"port":    cfg.Port,
			"storage": cfg.StorageDriver,
		}).Info("🚀 Server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStores crea las colecciones según STORAGE_DRIVER. El cliente devuelto es
// nil con el backend en memoria.
func openStores(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*stores.Set, *mongo.Client, error) {
	if cfg.StorageDriver != config.DriverMongo {
		return stores.NewMemory(m), nil, nil
	}

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	set, err := stores.NewMongo(ctx, client.Database(cfg.MongoDB), m)
	if err != nil {
		_ = database.Disconnect(client)
		return nil, nil, err
	}
	return set, client, nil
}
