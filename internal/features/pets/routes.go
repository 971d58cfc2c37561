// ================== internal/features/pets/routes.go ==================
package pets

import (
	"github.com/gin-gonic/gin"

	"github.com/KKaanaakk/pet-reminder/internal/config"
	"github.com/KKaanaakk/pet-reminder/internal/database"
	"github.com/KKaanaakk/pet-reminder/internal/pkg/cloudinary"
	"github.com/KKaanaakk/pet-reminder/internal/pkg/logger"
)

func RegisterRoutes(router *gin.RouterGroup, manager *database.Manager, cfg *config.Config) *Repository {
	repo := NewRepository(manager)

	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "petreminder")
	if err != nil {
		logger.Warn("Avatar uploads disabled: %v", err)
		cld = nil
	}

	handler := NewHandler(repo, cld)

	group := router.Group("/pets")
	{
		group.GET("", handler.List)
		group.POST("", handler.Create)
		group.POST("/avatar", handler.UploadAvatar)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}

	return repo
}
