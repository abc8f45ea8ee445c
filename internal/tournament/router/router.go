// Package router provides tournament module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lanpartylabs/tournament_api/internal/middleware"
	"github.com/lanpartylabs/tournament_api/internal/tournament/handler"
	"github.com/lanpartylabs/tournament_api/internal/tournament/repository"
	"github.com/lanpartylabs/tournament_api/internal/tournament/service"
)

// RegisterRoutes registers tournament module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/tournaments", h.List)
	r.GET("/tournaments/:id", h.Get)
	r.POST("/tournaments", middleware.RequireAdmin(), h.Create)
	r.PATCH("/tournaments/:id", middleware.RequireAdmin(), h.Update)
}
