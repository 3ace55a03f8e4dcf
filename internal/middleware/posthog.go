package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/investor_onboarding_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// onboardingSteps names the routes that complete an onboarding step.
// Other routes are tracked under a name derived from their path.
var onboardingSteps = map[string]string{
	"POST /api/v1/profiles":                                  "onboarding_investor_type_selected",
	"PUT /api/v1/profiles/:profileID/general-info":           "onboarding_general_info_saved",
	"POST /api/v1/general-info/:generalInfoID/parties":       "onboarding_party_added",
	"POST /api/v1/profiles/:profileID/beneficiaries":         "onboarding_beneficiary_added",
	"PUT /api/v1/profiles/:profileID/beneficiaries":          "onboarding_beneficiaries_replaced",
	"PUT /api/v1/profiles/:profileID/accreditation":          "onboarding_accreditation_submitted",
	"POST /api/v1/accreditations/:accreditationID/documents": "onboarding_accreditation_document_uploaded",
	"POST /api/v1/accreditations/:accreditationID/verify":    "accreditation_reviewed",
	"PUT /api/v1/profiles/:profileID/accreditation-status":   "onboarding_accreditation_flag_updated",
}

// EventNameFor returns the analytics event for a matched route, or "" when the route is unknown.
func EventNameFor(method, fullPath string) string {
	if fullPath == "" {
		return ""
	}
	if name, ok := onboardingSteps[method+" "+fullPath]; ok {
		return name
	}
	// e.g. "/api/v1/profiles/:profileID" -> "get_api_v1_profiles_profileID"
	name := strings.TrimPrefix(fullPath, "/")
	name = strings.ReplaceAll(name, ":", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return strings.ToLower(method) + "_" + name
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := EventNameFor(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
			"role":        string(GetRoleFromContext(c)),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
