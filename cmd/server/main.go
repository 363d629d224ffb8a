package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/mpetrov/chathub/internal/auth"
	"github.com/mpetrov/chathub/internal/config"
	"github.com/mpetrov/chathub/internal/db"
	"github.com/mpetrov/chathub/internal/export"
	"github.com/mpetrov/chathub/internal/listing"
	"github.com/mpetrov/chathub/internal/middleware"
	"github.com/mpetrov/chathub/internal/repository"
)

func main() {
	// Create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load("./")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Setup database connection
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	// Run migrations
	if err := db.RunMigrations(cfg.Database, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	serverRepo := repository.NewServerRepository(conn.Pool)
	categoryRepo := repository.NewCategoryRepository(conn.Pool)

	exportService := export.NewService(serverRepo)

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Server.AllowedOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	authenticate := auth.Middleware([]byte(cfg.Auth.JWTSecret))

	mux := http.NewServeMux()
	mux.Handle("/api/servers/", listing.NewHTTPHandler(serverRepo))
	mux.Handle("/api/categories/", listing.NewCategoryHandler(categoryRepo))
	mux.Handle("/api/export/servers", export.NewHTTPHandler(exportService))

	handler := middleware.LoggingMiddleware(authenticate(corsHandler.Handler(mux)))

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		log.Printf("Server listing available at http://localhost%s/api/servers/", cfg.Server.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
