package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	v1 "github.com/portfolio-api/api/v1"
	"github.com/portfolio-api/config"
	"github.com/portfolio-api/database"
	"github.com/portfolio-api/repositories"
	"github.com/portfolio-api/routes"
	"github.com/portfolio-api/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("Server exited")
}

// run serves until SIGINT or SIGTERM. The store is closed on every return.
func run() error {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}
	defer closeStore()

	projectService := services.NewProjectService(store, cfg.QueryTimeout)
	router := routes.NewRouter(cfg, v1.NewProjectController(projectService))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Portfolio API starting on port %s (store: %s, base path: %q)", cfg.Port, cfg.StoreDriver, cfg.BasePath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// openStore picks the project store named by STORE_DRIVER
func openStore(cfg config.Config) (services.ProjectStore, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Println("📦 Using in-memory store with fixture projects")
		return repositories.NewMemoryProjectStore(database.FixtureProjects()...), func() {}, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		if closeErr := database.Close(db); closeErr != nil {
			log.Printf("Failed to close database: %v", closeErr)
		}
		return nil, nil, err
	}
	closeDB := func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
	return repositories.NewProjectRepository(db), closeDB, nil
}
