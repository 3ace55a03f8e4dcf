package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// generalInfoHandler handles HTTP requests for general info and its child records.
type generalInfoHandler struct {
	generalInfoService portssvc.GeneralInfoSvcFacade
}

func newGeneralInfoHandler(s portssvc.GeneralInfoSvcFacade) *generalInfoHandler {
	return &generalInfoHandler{generalInfoService: s}
}

func registerGeneralInfoRoutes(rg *gin.RouterGroup, generalInfoService portssvc.GeneralInfoSvcFacade) {
	h := newGeneralInfoHandler(generalInfoService)

	rg.PUT("/profiles/:profileID/general-info", h.saveGeneralInfo)
	rg.GET("/profiles/:profileID/general-info", h.getGeneralInfo)
	rg.POST("/general-info/:generalInfoID/parties", h.addParty)
}

// saveGeneralInfo godoc
// @Summary Create or update general info
// @Description The attributes must match the profile's investor type (individual, joint, IRA, trust or entity fields).
// @Tags general-info
// @Accept  json
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Param   info body dto.SaveGeneralInfoRequest true "General info attributes"
// @Success 200 {object} dto.Envelope{data=dto.GeneralInfoResponse}
// @Failure 400 {object} dto.Envelope "Invalid input"
// @Failure 404 {object} dto.Envelope "Profile not found"
// @Security BearerAuth
// @Router /profiles/{profileID}/general-info [put]
func (h *generalInfoHandler) saveGeneralInfo(c *gin.Context) {
	profileID, ok := idParam(c, "profileID")
	if !ok {
		return
	}
	var req dto.SaveGeneralInfoRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	info, err := h.generalInfoService.SaveGeneralInfo(c.Request.Context(), profileID, req, userID)
	if err != nil {
		respondServiceError(c, err, "save general info")
		return
	}
	respond(c, http.StatusOK, "General info saved", dto.ToGeneralInfoResponse(info))
}

// getGeneralInfo godoc
// @Summary Get general info with its child records
// @Tags general-info
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Success 200 {object} dto.Envelope{data=dto.GeneralInfoResponse}
// @Failure 404 {object} dto.Envelope "Not found"
// @Security BearerAuth
// @Router /profiles/{profileID}/general-info [get]
func (h *generalInfoHandler) getGeneralInfo(c *gin.Context) {
	profileID, ok := idParam(c, "profileID")
	if !ok {
		return
	}
	info, err := h.generalInfoService.GetByProfileID(c.Request.Context(), profileID)
	if err != nil {
		respondServiceError(c, err, "get general info")
		return
	}
	respond(c, http.StatusOK, "General info retrieved", dto.ToGeneralInfoResponse(info))
}

// addParty godoc
// @Summary Add a joint account holder, trust grantor or entity equity owner
// @Description The record kind follows the parent's investor type. Equity owners may not exceed 100% ownership in total.
// @Tags general-info
// @Accept  json
// @Produce  json
// @Param   generalInfoID path string true "General info ID"
// @Param   party body dto.AddPartyRequest true "Child record"
// @Success 201 {object} dto.Envelope{data=dto.PartyResponse}
// @Failure 400 {object} dto.Envelope "Invalid input"
// @Failure 404 {object} dto.Envelope "General info not found"
// @Security BearerAuth
// @Router /general-info/{generalInfoID}/parties [post]
func (h *generalInfoHandler) addParty(c *gin.Context) {
	generalInfoID, ok := idParam(c, "generalInfoID")
	if !ok {
		return
	}
	var req dto.AddPartyRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	party, err := h.generalInfoService.AddChildRecord(c.Request.Context(), generalInfoID, req, userID)
	if err != nil {
		respondServiceError(c, err, "add general info party")
		return
	}
	respond(c, http.StatusCreated, "Record added", dto.ToPartyResponse(party))
}
