// ================== cmd/api/main.go ==================
//
// @title Pet Reminder API
// @version 1.0
// @description A RESTful API for tracking recurring pet-care reminders
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KKaanaakk/pet-reminder/internal/config"
	"github.com/KKaanaakk/pet-reminder/internal/database"
	"github.com/KKaanaakk/pet-reminder/internal/middleware"
	"github.com/KKaanaakk/pet-reminder/internal/pkg/response"
	"github.com/KKaanaakk/pet-reminder/internal/routes"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/KKaanaakk/pet-reminder/docs"
)

func main() {
	// Load config
	cfg := config.Load()

	// Configure Swagger metadata at runtime
	docs.SwaggerInfo.Title = "Pet Reminder API"
	docs.SwaggerInfo.Description = "A RESTful API for tracking recurring pet-care reminders"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// The store connection is lazy: the manager connects on first Acquire
	// and rebuilds the handle when it goes stale.
	manager := database.NewManager(&database.Config{
		URI:            cfg.MongoURI,
		DBName:         cfg.MongoDB,
		ConnectTimeout: cfg.ConnectTimeout,
		MaxPoolSize:    cfg.MaxPoolSize,
		MinPoolSize:    cfg.MinPoolSize,
		IdleThreshold:  cfg.IdleThreshold,
	})
	defer manager.Close()

	// Setup Gin
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := manager.HealthCheck(c.Request.Context()); err != nil {
			status = "degraded"
		}
		response.Success(c, map[string]interface{}{
			"status": status,
			"time":   time.Now().Unix(),
		})
	})

	// Swagger documentation
	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
		),
	)

	// Register all routes
	routes.SetupRoutes(router, manager, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
