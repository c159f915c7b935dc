package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/usecase"
	"github.com/Yamlte/VSK-Insurance-API-Handler/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler is the secondary entry point: fetch a policy print form by
// the policy number in the trailing path segment.

type DocumentHandler struct {
	orchestrator usecase.IInsuranceOrchestrator
}

func NewDocumentHandler(orchestrator usecase.IInsuranceOrchestrator) *DocumentHandler {
	return &DocumentHandler{orchestrator: orchestrator}
}

func (h *DocumentHandler) GetByPolicyNumber(c *gin.Context) {
	policyNumber := c.Param("policy_number")
	log.Printf("[document][handler] get start policy_number=%q", policyNumber)

	raw, err := h.orchestrator.PolicyDocument(c.Request.Context(), policyNumber)
	if err != nil {
		log.Printf("[document][handler] get failed policy_number=%q err=%v", policyNumber, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[document][handler] get success policy_number=%q bytes=%d", policyNumber, len(raw))
	writePDF(c, policyNumber, raw)
}

func mapDocumentError(err error) *pkg.AppError {
	var upstream *pkg.UpstreamError
	switch {
	case errors.Is(err, usecase.ErrMissingPolicyNumber):
		return pkg.NewDomainErrorSimple("POLICY_MISSING", "policy missing", http.StatusBadRequest)
	case errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound:
		return pkg.NewDomainError("DOCUMENT_NOT_FOUND", "Document not found", err, http.StatusNotFound)
	case errors.As(err, &upstream):
		return pkg.NewDomainError("UPSTREAM_ERROR", "Upstream call failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
