package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/SscSPs/investor_onboarding_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var knownRoles = []domain.Role{domain.RoleInvestor, domain.RoleAdvisor, domain.RoleOperationsTeam, domain.RoleAdmin}

func abortWithMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, dto.Envelope{Success: false, Message: msg, StatusCode: status})
}

// AuthMiddleware creates a Gin middleware handler that validates bearer JWT tokens
// and stores the caller's user id and role in the request context.
func AuthMiddleware(jwtSecret string, jwtIssuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortWithMessage(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			abortWithMessage(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret, jwtIssuer)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			abortWithMessage(c, http.StatusUnauthorized, msg)
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Warn("User ID (subject) missing from valid token")
			abortWithMessage(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		role := claims.Role
		if role == "" {
			role = domain.RoleInvestor
		}
		if !slices.Contains(knownRoles, role) {
			logger.Warn("Unknown role in token", slog.String("role", string(role)))
			abortWithMessage(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", userID), slog.String("role", string(role)))

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects callers whose token role is not one of roles.
// It must run after AuthMiddleware.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRoleFromContext(c)
		if !slices.Contains(roles, role) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted for route",
				slog.String("role", string(role)), slog.String("route", c.FullPath()))
			abortWithMessage(c, http.StatusForbidden, "You do not have permission to perform this action")
			return
		}
		c.Next()
	}
}
