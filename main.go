package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"railway-reservation/config"
	"railway-reservation/database"
	"railway-reservation/handlers"
	"railway-reservation/services"
	"railway-reservation/store/memory"
	"railway-reservation/store/postgres"
)

// store combines the train and seat stores of one backend
type store interface {
	services.TrainStore
	services.SeatStore
}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Starting Railway Reservation System")
	log.Printf("Store driver: %s", cfg.StoreDriver)

	st, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	inventory := services.NewInventoryService(st)
	catalog := services.NewCatalogService(st, inventory)
	h := handlers.NewHandler(catalog, inventory)

	// Setup Gin router
	router := setupRouter(cfg, h)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// openStore returns the configured backend and a function releasing it
func openStore(cfg *config.Config) (store, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return memory.New(), func() {}, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := database.RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return postgres.New(db), func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}, nil
}

func setupRouter(cfg *config.Config, h *handlers.Handler) *gin.Engine {
	// Set Gin to release mode in production
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(handlers.RequestID())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// API routes
	h.RegisterRoutes(router.Group("/api"))

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
