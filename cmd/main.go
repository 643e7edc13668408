package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/voleidocaos/caos-server/config"
	"github.com/voleidocaos/caos-server/db"
	"github.com/voleidocaos/caos-server/handlers"
	"github.com/voleidocaos/caos-server/live"
	"github.com/voleidocaos/caos-server/middleware"
	"github.com/voleidocaos/caos-server/models"
	"github.com/voleidocaos/caos-server/repositories"
	api "github.com/voleidocaos/caos-server/routes"
	"github.com/voleidocaos/caos-server/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabasePath, 5*time.Second)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	logger.Info("database opened", slog.String("path", cfg.DatabasePath))

	snapshotRepo, err := repositories.NewSQLiteSnapshotRepository(dbConn)
	if err != nil {
		logger.Error("failed to initialize snapshot repository", slog.Any("error", err))
		os.Exit(1)
	}

	store, err := services.NewStore(context.Background(), snapshotRepo)
	if err != nil {
		logger.Error("failed to load store", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("store loaded", slog.String("selected_date", store.SelectedDate()))

	resolver := services.NewNameResolver(models.SeedPlayers)
	rosterService := services.NewRosterService(store, resolver, nil)
	matchService := services.NewMatchService(store)
	rankingService := services.NewRankingService(store, resolver, middleware.ClaimsGate{}, logger)
	authService, err := services.NewAuthService(cfg.AdminPassword, cfg.PlayerPassword)
	if err != nil {
		logger.Error("failed to initialize auth service", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("services initialized")

	hub := live.NewHub(logger)

	authenticator := middleware.NewAuthenticator(cfg.JWTSecretKey)
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	tournamentHandler := handlers.NewTournamentHandler(store)
	rosterHandler := handlers.NewRosterHandler(rosterService, hub)
	matchHandler := handlers.NewMatchHandler(matchService, hub)
	rankingHandler := handlers.NewRankingHandler(rankingService, store, hub)
	webSocketHandler := handlers.NewWebSocketHandler(hub)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		authenticator,
		authHandler,
		tournamentHandler,
		rosterHandler,
		matchHandler,
		rankingHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return hub.Run(groupCtx)
	})

	group.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}
