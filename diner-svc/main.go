package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodfriend/config"
	httpapi "foodfriend/diner-svc/internal/api/http"
	"foodfriend/diner-svc/internal/nutrition"
	"foodfriend/diner-svc/internal/qr"
	"foodfriend/diner-svc/internal/session"
	"foodfriend/diner-svc/internal/telemetry"
	"foodfriend/middleware"
	"foodfriend/remote"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadDiner()
	log := config.NewLogger("diner-svc", cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	registry := prometheus.NewRegistry()
	recorder := telemetry.NewRecorder(log, registry)
	api := remote.NewClient(cfg.APIBaseURL, remote.WithTimeout(cfg.HTTPTimeout))

	store := session.NewStore(session.Deps{
		Orders:     api,
		Chat:       api,
		Nutrition:  nutrition.NewFetcher(api, recorder),
		Reporter:   recorder,
		Clock:      clockwork.NewRealClock(),
		Log:        log,
		PopupDelay: cfg.PopupDelay,
	}, session.WithTTL(cfg.SessionTTL), session.WithSweepInterval(cfg.SweepInterval))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.Start(ctx)

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods("GET")
	httpapi.NewHandler(store, qr.TableGenerator{Size: cfg.QRSize}, log).RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown error")
		}
		store.Stop()
	}()

	log.WithField("addr", cfg.Addr).Info("diner service starting")
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.WithError(err).Fatal("server error")
	}
}
