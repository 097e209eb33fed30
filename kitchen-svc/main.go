package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodfriend/config"
	httpapi "foodfriend/kitchen-svc/internal/api/http"
	"foodfriend/kitchen-svc/internal/events"
	"foodfriend/kitchen-svc/internal/portal"
	"foodfriend/middleware"
	"foodfriend/remote"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadKitchen()
	log := config.NewLogger("kitchen-svc", cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	api := remote.NewClient(cfg.APIBaseURL, remote.WithTimeout(cfg.HTTPTimeout))
	board := portal.NewBoard(api, log, portal.WithPollInterval(cfg.PollInterval))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go board.Run(ctx)

	if cfg.Kafka.Enabled() {
		reader := config.NewKafkaReader(cfg.Kafka)
		defer reader.Close()
		go events.NewConsumer(reader, board, log).Start(ctx)
	}

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))
	httpapi.NewHandler(board).RegisterRoutes(r)

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
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown error")
		}
	}()

	log.WithField("addr", cfg.Addr).Info("kitchen portal starting")
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.WithError(err).Fatal("server error")
	}
}
