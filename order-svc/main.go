package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodfriend/config"
	"foodfriend/middleware"
	httpapi "foodfriend/order-svc/internal/api/http"
	"foodfriend/order-svc/internal/service"
	"foodfriend/order-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadOrder()
	log := config.NewLogger("order-svc", cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	db := config.MustInitPostgres(cfg.Postgres, log)
	defer db.Close()
	rdb := config.MustInitRedis(cfg.Redis, log)
	defer rdb.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.WithError(err).Fatal("failed to create schema")
	}

	var publisher service.OrderPublisher
	if cfg.Kafka.Enabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	orders := service.NewOrderService(repository, publisher, log)
	nutrition := service.NewNutritionService(storage.NewRedisCache(rdb, cfg.NutritionTTL), log)

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))
	httpapi.NewHandler(orders, nutrition, log).RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: c.Handler(r),
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown error")
		}
	}()

	log.WithField("addr", cfg.Addr).Info("order service starting")
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.WithError(err).Fatal("server error")
	}
}
