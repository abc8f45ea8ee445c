// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lanpartylabs/tournament_api/internal/middleware"
	teamModel "github.com/lanpartylabs/tournament_api/internal/team/model"
	"github.com/lanpartylabs/tournament_api/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /teams request.
func (h *Handler) Register(c *gin.Context) {
	var captainID string
	if user, ok := middleware.UserFromContext(c); ok {
		captainID = user.ID
	}

	var req teamModel.RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.service.Register(c.Request.Context(), captainID, &req)
	if err != nil {
		h.registrationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// registrationError maps the registration error taxonomy to HTTP responses.
func (h *Handler) registrationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, teamModel.ErrUnauthenticated):
		errorResponse(c, http.StatusUnauthorized, "Unauthenticated")
	case errors.Is(err, teamModel.ErrMissingFields):
		errorResponse(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, teamModel.ErrTournamentNotFound):
		errorResponse(c, http.StatusNotFound, "Tournament not found")
	case errors.Is(err, teamModel.ErrNotOpenForRegistration):
		errorResponse(c, http.StatusBadRequest, "Tournament is not open for registration")
	case errors.Is(err, teamModel.ErrTournamentFull):
		errorResponse(c, http.StatusBadRequest, "Tournament is full")
	case errors.Is(err, teamModel.ErrDeadlinePassed):
		errorResponse(c, http.StatusBadRequest, "Registration deadline has passed")
	case errors.Is(err, teamModel.ErrIncompletePlayerData):
		errorResponse(c, http.StatusBadRequest, "All player fields are required")
	default:
		var sizeErr *teamModel.WrongTeamSizeError
		if errors.As(err, &sizeErr) {
			errorResponse(c, http.StatusBadRequest,
				fmt.Sprintf("Team must have exactly %d players", sizeErr.Expected))
			return
		}
		h.logger.Errorw("error creating team", "error", err)
		errorResponse(c, http.StatusInternalServerError, "Failed to create team")
	}
}

// UpdateStatus handles PATCH /teams/:id/status request (admin only).
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req teamModel.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrTeamNotFound):
			errorResponse(c, http.StatusNotFound, "Team not found")
		case errors.Is(err, teamModel.ErrInvalidStatus):
			errorResponse(c, http.StatusBadRequest, "Invalid team status")
		case errors.Is(err, teamModel.ErrInvalidTransition):
			errorResponse(c, http.StatusBadRequest, "Invalid status transition")
		default:
			h.logger.Errorw("error updating team status", "team_id", id, "error", err)
			errorResponse(c, http.StatusInternalServerError, "Failed to update team")
		}
		return
	}

	c.JSON(http.StatusOK, team)
}
