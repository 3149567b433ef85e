// Package main Receipt Points Service
//
// @title Receipt Points Service
// @version 1.0
// @description Assigns reward points to purchase receipts and serves them back by receipt ID
//
// @host localhost:8080
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rewardworks/receipt-points/internal/api"
	"github.com/rewardworks/receipt-points/internal/config"
	"github.com/rewardworks/receipt-points/internal/store"
)

func main() {
	// Setup structured JSON logging.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		slog.SetDefault(logger)
	}

	// Initialize store.
	st, err := store.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize store", "error", err, "db_path", cfg.DBPath)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	receiptCount, err := st.Count(store.BucketReceipts)
	if err != nil {
		slog.Error("failed to read store stats", "error", err)
		os.Exit(1)
	}
	slog.Info("database initialized", "db_path", cfg.DBPath, "receipts", receiptCount)

	// Initialize handlers.
	receiptsHandler := api.NewReceiptsHandler(st)

	// Setup router.
	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Receipts endpoints.
	r.Route("/receipts", func(r chi.Router) {
		r.Post("/process", receiptsHandler.Process)
		r.Get("/{id}/points", receiptsHandler.Points)
	})

	// Health check endpoint.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Start server.
	addr := cfg.Addr()
	slog.Info("starting receipt points service", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		slog.Info("shutting down server")
		if err := server.Close(); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
