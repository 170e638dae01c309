package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"hive-match.backend/internal/domain/entities"
	domainerrors "hive-match.backend/internal/domain/errors"
	"hive-match.backend/internal/interfaces/http/middleware"
	"hive-match.backend/internal/interfaces/http/response"
	"hive-match.backend/internal/usecases"
)

// AdminHandler handles the verification workflow and the privileged
// password-set endpoint.
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// ListPendingProfiles lists profiles awaiting review
// GET /api/v1/admin/profiles/pending
func (h *AdminHandler) ListPendingProfiles(c *gin.Context) {
	profiles, err := h.adminUsecase.ListPendingProfiles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profiles": profiles})
}

// ReviewProfile verifies or rejects a pending profile
// PUT /api/v1/admin/profiles/:id/status
func (h *AdminHandler) ReviewProfile(c *gin.Context) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	targetUserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid profile id"))
		return
	}

	var input entities.ReviewProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.ReviewProfile(c.Request.Context(), reviewerID, targetUserID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Profile reviewed",
		"status":  input.Status,
	})
}

// SetPassword is the admin override for setting another user's password.
// Response shape is fixed: {"success":true} or {"error":<message>}.
// POST /api/v1/admin/set-password
func (h *AdminHandler) SetPassword(c *gin.Context) {
	var input entities.SetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetUserId, newPassword and adminUserId are required"})
		return
	}

	if err := h.adminUsecase.SetUserPassword(c.Request.Context(), &input); err != nil {
		var appErr *domainerrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Status, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
