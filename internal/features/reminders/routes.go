// ================== internal/features/reminders/routes.go ==================
package reminders

import (
	"github.com/gin-gonic/gin"

	"github.com/KKaanaakk/pet-reminder/internal/config"
	"github.com/KKaanaakk/pet-reminder/internal/database"
	"github.com/KKaanaakk/pet-reminder/internal/pkg/retry"
)

func RegisterRoutes(router *gin.RouterGroup, manager *database.Manager, petLookup PetLookup, cfg *config.Config) {
	repo := NewRepository(manager)
	service := NewService(repo, petLookup, retry.Policy{
		Attempts: cfg.ReadRetries,
		Delay:    cfg.ReadRetryDelay,
	})
	handler := NewHandler(service)

	group := router.Group("/reminders")
	{
		group.GET("", handler.List)
		group.GET("/grouped", handler.ListGrouped)
		group.POST("", handler.Create)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.PUT("/:id/toggle", handler.Toggle)
		group.DELETE("/:id", handler.Delete)
	}
}
