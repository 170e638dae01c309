package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"hive-match.backend/internal/domain/entities"
	domainerrors "hive-match.backend/internal/domain/errors"
	"hive-match.backend/internal/interfaces/http/middleware"
	"hive-match.backend/internal/interfaces/http/response"
	"hive-match.backend/internal/usecases"
)

// MatchHandler handles like/pass and match endpoints
type MatchHandler struct {
	matchUsecase *usecases.MatchUsecase
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchUsecase *usecases.MatchUsecase) *MatchHandler {
	return &MatchHandler{matchUsecase: matchUsecase}
}

// Decide records a like/pass on another member's profile
// POST /api/v1/profiles/:id/decision
func (h *MatchHandler) Decide(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile id"))
		return
	}

	var input entities.DecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.matchUsecase.Decide(c.Request.Context(), actorID, recipientID, input.Liked)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ListMatches lists the caller's mutual matches
// GET /api/v1/matches
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	profiles, err := h.matchUsecase.ListMatches(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"matches": profiles})
}

// LikedCount returns how many members liked the caller
// GET /api/v1/matches/liked-count
func (h *MatchHandler) LikedCount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	count, err := h.matchUsecase.LikedCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"count": count})
}
