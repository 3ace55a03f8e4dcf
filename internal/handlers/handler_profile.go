package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/SscSPs/investor_onboarding_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests related to investor profiles.
type profileHandler struct {
	investorTypeService portssvc.InvestorTypeSvcFacade
}

func newProfileHandler(s portssvc.InvestorTypeSvcFacade) *profileHandler {
	return &profileHandler{investorTypeService: s}
}

// registerProfileRoutes registers routes related to investor profiles.
func registerProfileRoutes(rg *gin.RouterGroup, investorTypeService portssvc.InvestorTypeSvcFacade) {
	h := newProfileHandler(investorTypeService)

	profiles := rg.Group("/profiles")
	{
		profiles.POST("", h.selectInvestorType)
		profiles.GET("/me", h.getMyProfile)
		profiles.GET("/:profileID", h.getProfile)
		profiles.PUT("/:profileID/accreditation-status", h.updateAccreditationStatus)
	}
}

// selectInvestorType godoc
// @Summary Create the caller's investor profile
// @Description Chooses the investor type and stores its type-specific details. A user has exactly one profile and its type cannot change.
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   profile body dto.SelectInvestorTypeRequest true "Investor type and details"
// @Success 201 {object} dto.Envelope{data=dto.ProfileResponse}
// @Failure 400 {object} dto.Envelope "Invalid input or profile already exists"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Internal error"
// @Security BearerAuth
// @Router /profiles [post]
func (h *profileHandler) selectInvestorType(c *gin.Context) {
	var req dto.SelectInvestorTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	profile, err := h.investorTypeService.SelectType(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "create investor profile")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Investor profile created", slog.String("profile_id", profile.ProfileID))
	respond(c, http.StatusCreated, "Investor profile created", dto.ToProfileResponse(profile))
}

// getMyProfile godoc
// @Summary Get the caller's investor profile
// @Tags profiles
// @Produce  json
// @Success 200 {object} dto.Envelope{data=dto.ProfileResponse}
// @Failure 404 {object} dto.Envelope "No profile yet"
// @Security BearerAuth
// @Router /profiles/me [get]
func (h *profileHandler) getMyProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	profile, err := h.investorTypeService.GetProfileByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "get investor profile")
		return
	}
	respond(c, http.StatusOK, "Investor profile retrieved", dto.ToProfileResponse(profile))
}

// getProfile godoc
// @Summary Get an investor profile
// @Tags profiles
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Success 200 {object} dto.Envelope{data=dto.ProfileResponse}
// @Failure 400 {object} dto.Envelope "Invalid profile ID"
// @Failure 404 {object} dto.Envelope "Profile not found"
// @Security BearerAuth
// @Router /profiles/{profileID} [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	profileID, ok := idParam(c, "profileID")
	if !ok {
		return
	}
	profile, err := h.investorTypeService.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		respondServiceError(c, err, "get investor profile")
		return
	}
	respond(c, http.StatusOK, "Investor profile retrieved", dto.ToProfileResponse(profile))
}

// updateAccreditationStatus godoc
// @Summary Update the profile-level accreditation claim
// @Description accreditationType is required when isAccredited is true; clearing the flag clears the type.
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Param   status body dto.UpdateAccreditationStatusRequest true "Accreditation claim"
// @Success 200 {object} dto.Envelope{data=dto.ProfileResponse}
// @Failure 400 {object} dto.Envelope "Invalid input"
// @Failure 404 {object} dto.Envelope "Profile not found"
// @Security BearerAuth
// @Router /profiles/{profileID}/accreditation-status [put]
func (h *profileHandler) updateAccreditationStatus(c *gin.Context) {
	profileID, ok := idParam(c, "profileID")
	if !ok {
		return
	}
	var req dto.UpdateAccreditationStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	profile, err := h.investorTypeService.UpdateAccreditationFlag(c.Request.Context(), profileID, req, userID)
	if err != nil {
		respondServiceError(c, err, "update accreditation status")
		return
	}
	respond(c, http.StatusOK, "Accreditation status updated", dto.ToProfileResponse(profile))
}
