// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lanpartylabs/tournament_api/internal/config"
	"github.com/lanpartylabs/tournament_api/internal/middleware"
	"github.com/lanpartylabs/tournament_api/internal/team/handler"
	"github.com/lanpartylabs/tournament_api/internal/team/repository"
	"github.com/lanpartylabs/tournament_api/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.RegistrationConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/teams", h.Register)
	r.PATCH("/teams/:id/status", middleware.RequireAdmin(), h.UpdateStatus)
}
