package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"family-tree/backend/internal/api"
	"family-tree/backend/internal/seed"
	"family-tree/backend/internal/tree"
	"family-tree/backend/pkg/config"
	"family-tree/backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting family tree API server...")

	srv, err := newServer(cfg, log)
	if err != nil {
		log.Fatal("Failed to build server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, srv, cfg.ShutdownTimeout, log); err != nil {
		log.Fatal("Server stopped with error", zap.Error(err))
	}

	log.Info("Server exited")
}

// newServer builds the tree, applies the optional seed scenario and wires the router
func newServer(cfg *config.Config, log *zap.Logger) (*http.Server, error) {
	familyTree := tree.New(log.Named("tree"))

	if cfg.SeedFile != "" {
		scenario, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		if _, err := seed.Apply(familyTree, scenario, log.Named("seed")); err != nil {
			return nil, fmt.Errorf("failed to apply %s: %w", cfg.SeedFile, err)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.NewHandler(familyTree, log.Named("api")))

	return &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}, nil
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, log *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
