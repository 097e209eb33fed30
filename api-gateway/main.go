package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodfriend/api-gateway/internal/gateway"
	"foodfriend/config"
	"foodfriend/middleware"

	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadGateway()
	log := config.NewLogger("api-gateway", cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL:   cfg.OrderSvcURL,
		ChatSvcURL:    cfg.ChatSvcURL,
		DinerSvcURL:   cfg.DinerSvcURL,
		KitchenSvcURL: cfg.KitchenSvcURL,
		FrontendDir:   cfg.FrontendDir,
	}, &http.Client{Timeout: 60 * time.Second}, log)

	r := gw.SetupRoutes()
	r.Use(middleware.Logging(log))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
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

	log.WithField("addr", cfg.Addr).Info("api gateway starting")
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.WithError(err).Fatal("server error")
	}
}
