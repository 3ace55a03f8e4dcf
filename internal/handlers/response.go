package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/investor_onboarding_app/internal/apperrors"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/SscSPs/investor_onboarding_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const internalErrorMessage = "An internal error occurred"

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.Envelope{
		Success:    status < http.StatusBadRequest,
		Message:    message,
		StatusCode: status,
		Data:       data,
	})
}

func respondError(c *gin.Context, status int, message string) {
	respond(c, status, message, nil)
}

// respondServiceError maps a core error to its status. Internal failures never leak their detail.
func respondServiceError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := apperrors.KindOf(err)
	status := kind.HTTPStatus()

	if kind == apperrors.KindInternal {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		respondError(c, status, internalErrorMessage)
		return
	}
	logger.Warn("Rejected request to "+action, slog.String("kind", string(kind)), slog.String("reason", err.Error()))
	respondError(c, status, err.Error())
}

// bindJSON binds the request body, answering 400 itself on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return false
	}
	return true
}

// idParam reads a UUID path parameter, answering 400 itself when it is malformed.
func idParam(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return "", false
	}
	return id.String(), true
}

// callerID returns the authenticated user, answering 401 itself when absent.
func callerID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}
