// ================== internal/routes/routes.go ==================
package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KKaanaakk/pet-reminder/internal/config"
	"github.com/KKaanaakk/pet-reminder/internal/database"
	"github.com/KKaanaakk/pet-reminder/internal/features/pets"
	"github.com/KKaanaakk/pet-reminder/internal/features/reminders"
	"github.com/KKaanaakk/pet-reminder/internal/pkg/ratelimit"
)

func SetupRoutes(router *gin.Engine, manager *database.Manager, cfg *config.Config) {
	limiter := ratelimit.New(100, time.Minute)
	limiter.StartCleanup(5 * time.Minute)

	api := router.Group("/api/v1")
	api.Use(ratelimit.Middleware(limiter))

	petRepo := pets.RegisterRoutes(api, manager, cfg)
	reminders.RegisterRoutes(api, manager, petRepo, cfg)
}
