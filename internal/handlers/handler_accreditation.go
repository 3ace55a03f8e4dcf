package handlers

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	portssvc "github.com/SscSPs/investor_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/investor_onboarding_app/internal/dto"
	"github.com/SscSPs/investor_onboarding_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentPolicy is the upload whitelist applied before metadata reaches the core.
type documentPolicy struct {
	maxSizeBytes int64
	contentTypes []string
}

func (p documentPolicy) check(req dto.UploadDocumentRequest) error {
	if p.maxSizeBytes > 0 && req.FileSize > p.maxSizeBytes {
		return fmt.Errorf("fileSize %d exceeds the %d byte limit", req.FileSize, p.maxSizeBytes)
	}
	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	if len(p.contentTypes) > 0 && !slices.Contains(p.contentTypes, contentType) {
		return fmt.Errorf("contentType %q is not allowed; use one of %s", req.ContentType, strings.Join(p.contentTypes, ", "))
	}
	return nil
}

// accreditationHandler handles HTTP requests for the accreditation workflow.
type accreditationHandler struct {
	accreditationService portssvc.AccreditationSvcFacade
	documents            documentPolicy
}

func newAccreditationHandler(s portssvc.AccreditationSvcFacade, documents documentPolicy) *accreditationHandler {
	return &accreditationHandler{accreditationService: s, documents: documents}
}

func registerAccreditationRoutes(rg *gin.RouterGroup, accreditationService portssvc.AccreditationSvcFacade, documents documentPolicy) {
	h := newAccreditationHandler(accreditationService, documents)

	rg.PUT("/profiles/:profileID/accreditation", h.saveAccreditation)
	rg.GET("/profiles/:profileID/accreditation", h.getAccreditation)

	accreditations := rg.Group("/accreditations/:accreditationID")
	{
		accreditations.POST("/documents", h.uploadDocument)
		accreditations.POST("/verify", middleware.RequireRoles(domain.ReviewerRoles...), h.verifyAccreditation)
	}

	rg.DELETE("/accreditation-documents/:documentID", h.deleteDocument)
}

// saveAccreditation godoc
// @Summary Submit or resubmit an accreditation
// @Description Any submission returns the record to SUBMITTED and clears prior verification. License number and state are required for SERIES_7, SERIES_65 and SERIES_82.
// @Tags accreditation
// @Accept  json
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Param   accreditation body dto.SaveAccreditationRequest true "Accreditation"
// @Success 200 {object} dto.Envelope{data=dto.AccreditationResponse}
// @Failure 400 {object} dto.Envelope "Invalid input"
// @Failure 404 {object} dto.Envelope "Profile not found"
// @Security BearerAuth
// @Router /profiles/{profileID}/accreditation [put]
func (h *accreditationHandler) saveAccreditation(c *gin.Context) {
	profileID, ok := idParam(c, "profileID")
	if !ok {
		return
	}
	var req dto.SaveAccreditationRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	acc, err := h.accreditationService.Save(c.Request.Context(), profileID, req, userID)
	if err != nil {
		respondServiceError(c, err, "save accreditation")
		return
	}
	respond(c, http.StatusOK, "Accreditation submitted for review", dto.ToAccreditationResponse(acc))
}

// getAccreditation godoc
// @Summary Get a profile's accreditation with its documents
// @Tags accreditation
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Success 200 {object} dto.Envelope{data=dto.AccreditationResponse}
// @Failure 404 {object} dto.Envelope "Not submitted"
// @Security BearerAuth
// @Router /profiles/{profileID}/accreditation [get]
func (h *accreditationHandler) getAccreditation(c *gin.Context) {
	profileID, ok := idParam(c, "profileID")
	if !ok {
		return
	}
	acc, err := h.accreditationService.Get(c.Request.Context(), profileID)
	if err != nil {
		respondServiceError(c, err, "get accreditation")
		return
	}
	respond(c, http.StatusOK, "Accreditation retrieved", dto.ToAccreditationResponse(acc))
}

// uploadDocument godoc
// @Summary Record a supporting document
// @Description The file is already stored; this records its metadata. PDF, PNG and JPEG only.
// @Tags accreditation
// @Accept  json
// @Produce  json
// @Param   accreditationID path string true "Accreditation ID"
// @Param   document body dto.UploadDocumentRequest true "Document metadata"
// @Success 201 {object} dto.Envelope{data=dto.AccreditationDocumentResponse}
// @Failure 400 {object} dto.Envelope "Invalid input"
// @Failure 404 {object} dto.Envelope "Accreditation not found"
// @Security BearerAuth
// @Router /accreditations/{accreditationID}/documents [post]
func (h *accreditationHandler) uploadDocument(c *gin.Context) {
	accreditationID, ok := idParam(c, "accreditationID")
	if !ok {
		return
	}
	var req dto.UploadDocumentRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.documents.check(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	doc, err := h.accreditationService.UploadDocument(c.Request.Context(), accreditationID, req, userID)
	if err != nil {
		respondServiceError(c, err, "upload accreditation document")
		return
	}
	respond(c, http.StatusCreated, "Document recorded", dto.ToAccreditationDocumentResponse(doc))
}

// verifyAccreditation godoc
// @Summary Verify or reject an accreditation
// @Description Advisors and the operations team only. Overwrites any previous decision and its notes.
// @Tags accreditation
// @Accept  json
// @Produce  json
// @Param   accreditationID path string true "Accreditation ID"
// @Param   decision body dto.VerifyAccreditationRequest true "Review decision"
// @Success 200 {object} dto.Envelope{data=dto.AccreditationResponse}
// @Failure 400 {object} dto.Envelope "Invalid input"
// @Failure 403 {object} dto.Envelope "Caller may not review accreditations"
// @Failure 404 {object} dto.Envelope "Accreditation not found"
// @Security BearerAuth
// @Router /accreditations/{accreditationID}/verify [post]
func (h *accreditationHandler) verifyAccreditation(c *gin.Context) {
	accreditationID, ok := idParam(c, "accreditationID")
	if !ok {
		return
	}
	var req dto.VerifyAccreditationRequest
	if !bindJSON(c, &req) {
		return
	}
	verifierID, ok := callerID(c)
	if !ok {
		return
	}

	acc, err := h.accreditationService.Verify(c.Request.Context(), accreditationID, req, verifierID)
	if err != nil {
		respondServiceError(c, err, "verify accreditation")
		return
	}
	respond(c, http.StatusOK, "Accreditation reviewed", dto.ToAccreditationResponse(acc))
}

// deleteDocument godoc
// @Summary Delete a supporting document record
// @Tags accreditation
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "Document not found"
// @Security BearerAuth
// @Router /accreditation-documents/{documentID} [delete]
func (h *accreditationHandler) deleteDocument(c *gin.Context) {
	documentID, ok := idParam(c, "documentID")
	if !ok {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.accreditationService.DeleteDocument(c.Request.Context(), documentID, userID); err != nil {
		respondServiceError(c, err, "delete accreditation document")
		return
	}
	respond(c, http.StatusOK, "Document deleted", nil)
}
