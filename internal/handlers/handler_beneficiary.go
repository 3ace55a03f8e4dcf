package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// beneficiaryHandler handles HTTP requests related to beneficiaries.
type beneficiaryHandler struct {
	beneficiaryService portssvc.BeneficiarySvcFacade
}

func newBeneficiaryHandler(s portssvc.BeneficiarySvcFacade) *beneficiaryHandler {
	return &beneficiaryHandler{beneficiaryService: s}
}

func registerBeneficiaryRoutes(rg *gin.RouterGroup, beneficiaryService portssvc.BeneficiarySvcFacade) {
	h := newBeneficiaryHandler(beneficiaryService)

	byProfile := rg.Group("/profiles/:profileID/beneficiaries")
	{
		byProfile.GET("", h.listBeneficiaries)
		byProfile.POST("", h.addBeneficiary)
		byProfile.PUT("", h.replaceBeneficiaries)
	}

	beneficiaries := rg.Group("/beneficiaries")
	{
		beneficiaries.PUT("/:beneficiaryID", h.updateBeneficiary)
		beneficiaries.DELETE("/:beneficiaryID", h.deleteBeneficiary)
	}
}

// listBeneficiaries godoc
// @Summary List beneficiaries grouped by type
// @Description Primary and contingent beneficiaries with their totals. isComplete is true once primaries total exactly 100.
// @Tags beneficiaries
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Success 200 {object} dto.Envelope{data=dto.BeneficiaryAllocationResponse}
// @Failure 404 {object} dto.Envelope "Profile not found"
// @Security BearerAuth
// @Router /profiles/{profileID}/beneficiaries [get]
func (h *beneficiaryHandler) listBeneficiaries(c *gin.Context) {
	profileID, ok := idParam(c, "profileID")
	if !ok {
		return
	}
	alloc, err := h.beneficiaryService.GetGrouped(c.Request.Context(), profileID)
	if err != nil {
		respondServiceError(c, err, "list beneficiaries")
		return
	}
	respond(c, http.StatusOK, "Beneficiaries retrieved", dto.ToBeneficiaryAllocationResponse(*alloc))
}

// addBeneficiary godoc
// @Summary Add a beneficiary
// @Description The beneficiary's type may not exceed a 100% total allocation.
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Param   beneficiary body dto.BeneficiaryRequest true "Beneficiary"
// @Success 201 {object} dto.Envelope{data=dto.BeneficiaryResponse}
// @Failure 400 {object} dto.Envelope "Invalid input or allocation above 100%"
// @Failure 404 {object} dto.Envelope "Profile not found"
// @Security BearerAuth
// @Router /profiles/{profileID}/beneficiaries [post]
func (h *beneficiaryHandler) addBeneficiary(c *gin.Context) {
	profileID, ok := idParam(c, "profileID")
	if !ok {
		return
	}
	var req dto.BeneficiaryRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	b, err := h.beneficiaryService.AddSingle(c.Request.Context(), profileID, req, userID)
	if err != nil {
		respondServiceError(c, err, "add beneficiary")
		return
	}
	respond(c, http.StatusCreated, "Beneficiary added", dto.ToBeneficiaryResponse(b))
}

// replaceBeneficiaries godoc
// @Summary Replace beneficiaries by type
// @Description Every type present in the batch is replaced and must total exactly 100%. Types absent from the batch are untouched.
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Param   batch body dto.ReplaceBeneficiariesRequest true "Replacement batch"
// @Success 200 {object} dto.Envelope{data=[]dto.BeneficiaryResponse}
// @Failure 400 {object} dto.Envelope "Invalid input or totals not 100%"
// @Failure 404 {object} dto.Envelope "Profile not found"
// @Security BearerAuth
// @Router /profiles/{profileID}/beneficiaries [put]
func (h *beneficiaryHandler) replaceBeneficiaries(c *gin.Context) {
	profileID, ok := idParam(c, "profileID")
	if !ok {
		return
	}
	var req dto.ReplaceBeneficiariesRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	saved, err := h.beneficiaryService.ReplaceByType(c.Request.Context(), profileID, req, userID)
	if err != nil {
		respondServiceError(c, err, "replace beneficiaries")
		return
	}
	respond(c, http.StatusOK, "Beneficiaries replaced", dto.ToListBeneficiaryResponse(saved))
}

// updateBeneficiary godoc
// @Summary Update a beneficiary
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   beneficiaryID path string true "Beneficiary ID"
// @Param   beneficiary body dto.UpdateBeneficiaryRequest true "Beneficiary"
// @Success 200 {object} dto.Envelope{data=dto.BeneficiaryResponse}
// @Failure 400 {object} dto.Envelope "Invalid input or allocation above 100%"
// @Failure 404 {object} dto.Envelope "Beneficiary not found"
// @Security BearerAuth
// @Router /beneficiaries/{beneficiaryID} [put]
func (h *beneficiaryHandler) updateBeneficiary(c *gin.Context) {
	beneficiaryID, ok := idParam(c, "beneficiaryID")
	if !ok {
		return
	}
	var req dto.UpdateBeneficiaryRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	b, err := h.beneficiaryService.Update(c.Request.Context(), beneficiaryID, req, userID)
	if err != nil {
		respondServiceError(c, err, "update beneficiary")
		return
	}
	respond(c, http.StatusOK, "Beneficiary updated", dto.ToBeneficiaryResponse(b))
}

// deleteBeneficiary godoc
// @Summary Delete a beneficiary
// @Description The remaining beneficiaries are not rebalanced.
// @Tags beneficiaries
// @Produce  json
// @Param   beneficiaryID path string true "Beneficiary ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "Beneficiary not found"
// @Security BearerAuth
// @Router /beneficiaries/{beneficiaryID} [delete]
func (h *beneficiaryHandler) deleteBeneficiary(c *gin.Context) {
	beneficiaryID, ok := idParam(c, "beneficiaryID")
	if !ok {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.beneficiaryService.Delete(c.Request.Context(), beneficiaryID, userID); err != nil {
		respondServiceError(c, err, "delete beneficiary")
		return
	}
	respond(c, http.StatusOK, "Beneficiary deleted", nil)
}
