// Package handler provides HTTP handlers for tournament endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lanpartylabs/tournament_api/internal/middleware"
	tournamentModel "github.com/lanpartylabs/tournament_api/internal/tournament/model"
	"github.com/lanpartylabs/tournament_api/internal/tournament/service"
)

// Handler handles HTTP requests for tournament endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new tournament handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /tournaments request.
func (h *Handler) List(c *gin.Context) {
	tournaments, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error fetching tournaments", "error", err)
		errorResponse(c, http.StatusInternalServerError, "Failed to fetch tournaments")
		return
	}

	c.JSON(http.StatusOK, tournaments)
}

// Get handles GET /tournaments/:id request.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, tournamentModel.ErrTournamentNotFound) {
			errorResponse(c, http.StatusNotFound, "Tournament not found")
			return
		}
		h.logger.Errorw("error fetching tournament", "tournament_id", id, "error", err)
		errorResponse(c, http.StatusInternalServerError, "Failed to fetch tournament")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create handles POST /tournaments request (admin only).
func (h *Handler) Create(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	var req tournamentModel.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tournament, err := h.service.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		var valErr *tournamentModel.ValidationError
		if errors.As(err, &valErr) {
			errorResponse(c, http.StatusBadRequest, valErr.Message)
			return
		}
		h.logger.Errorw("error creating tournament", "error", err)
		errorResponse(c, http.StatusInternalServerError, "Failed to create tournament")
		return
	}

	c.JSON(http.StatusCreated, tournament)
}

// Update handles PATCH /tournaments/:id request (admin only).
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req tournamentModel.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tournament, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, tournamentModel.ErrTournamentNotFound) {
			errorResponse(c, http.StatusNotFound, "Tournament not found")
			return
		}
		var valErr *tournamentModel.ValidationError
		if errors.As(err, &valErr) {
			errorResponse(c, http.StatusBadRequest, valErr.Message)
			return
		}
		h.logger.Errorw("error updating tournament", "tournament_id", id, "error", err)
		errorResponse(c, http.StatusInternalServerError, "Failed to update tournament")
		return
	}

	c.JSON(http.StatusOK, tournament)
}
