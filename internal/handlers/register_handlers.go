package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/investor_onboarding_app/cmd/docs"
	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/middleware"
	"github.com/SscSPs/investor_onboarding_app/internal/platform/config"
	"github.com/SscSPs/investor_onboarding_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteOptions carries the optional cross-cutting middleware of the v1 group.
// A nil field disables that middleware.
type RouteOptions struct {
	RateLimiter *limiter.Limiter
	Analytics   *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouteOptions,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, opts)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	// Auth runs first so the limiter and analytics see the caller.
	chain := []gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)}
	if opts.RateLimiter != nil {
		chain = append(chain, middleware.RateLimit(opts.RateLimiter))
	}
	if opts.Analytics.IsInitialized() {
		chain = append(chain, middleware.PosthogMiddleware(opts.Analytics))
	}
	v1 := r.Group("/api/v1", chain...)

	registerProfileRoutes(v1, service.InvestorType)
	registerGeneralInfoRoutes(v1, service.GeneralInfo)
	registerBeneficiaryRoutes(v1, service.Beneficiary)
	registerAccreditationRoutes(v1, service.Accreditation, newDocumentPolicy(cfg))
}

func newDocumentPolicy(cfg *config.Config) documentPolicy {
	types := make([]string, len(cfg.AllowedDocumentTypes))
	for i, t := range cfg.AllowedDocumentTypes {
		types[i] = strings.ToLower(t)
	}
	return documentPolicy{maxSizeBytes: cfg.MaxDocumentSizeBytes, contentTypes: types}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
