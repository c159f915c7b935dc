package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "github.com/Yamlte/VSK-Insurance-API-Handler/internal/adapter/http/dto/request"
	response "github.com/Yamlte/VSK-Insurance-API-Handler/internal/adapter/http/dto/response"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/usecase"
	"github.com/Yamlte/VSK-Insurance-API-Handler/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ActionCalc   = "calc"
	ActionPay    = "pay"
	ActionSample = "sample"
	ActionPdf    = "pdf"
)

var (
	errActionMissing = pkg.NewDomainErrorSimple("ACTION_MISSING", "action missing", http.StatusBadRequest)
	errUnknownAction = pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Unknown action", http.StatusBadRequest)
)

// ActionHandler is the primary entry point: one POST carrying an action
// discriminant that selects the orchestration flow.

type ActionHandler struct {
	orchestrator usecase.IInsuranceOrchestrator
}

func NewActionHandler(orchestrator usecase.IInsuranceOrchestrator) *ActionHandler {
	return &ActionHandler{orchestrator: orchestrator}
}

func (h *ActionHandler) Handle(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[action][handler] read body failed err=%v", err)
		c.JSON(errActionMissing.HTTPStatus, errActionMissing.ToHTTPError())
		return
	}

	req, err := request.DecodeActionRequest(raw)
	if err != nil {
		log.Printf("[action][handler] decode failed err=%v", err)
		c.JSON(errActionMissing.HTTPStatus, errActionMissing.ToHTTPError())
		return
	}

	action := req.ResolveAction()
	log.Printf("[action][handler] dispatch action=%q", action)
	switch action {
	case "":
		c.JSON(errActionMissing.HTTPStatus, errActionMissing.ToHTTPError())
	case ActionCalc:
		res, err := h.orchestrator.Calc(c.Request.Context(), req.ToQuoteInput())
		if err != nil {
			h.fail(c, action, err)
			return
		}
		c.JSON(http.StatusOK, response.FromCalcResult(res))
	case ActionPay:
		res, err := h.orchestrator.Pay(c.Request.Context(), req.ToQuoteInput())
		if err != nil {
			h.fail(c, action, err)
			return
		}
		c.JSON(http.StatusOK, response.FromPayResult(res))
	case ActionSample:
		res, err := h.orchestrator.Sample(c.Request.Context(), req.ToQuoteInput())
		if err != nil {
			h.fail(c, action, err)
			return
		}
		c.JSON(http.StatusOK, response.FromSampleResult(res))
	case ActionPdf:
		raw, err := h.orchestrator.PolicyDocument(c.Request.Context(), req.ResolvePolicyNumber())
		if err != nil {
			h.fail(c, action, err)
			return
		}
		writePDF(c, req.ResolvePolicyNumber(), raw)
	default:
		log.Printf("[action][handler] unknown action=%q", action)
		c.JSON(errUnknownAction.HTTPStatus, errUnknownAction.ToHTTPError())
	}
}

func (h *ActionHandler) fail(c *gin.Context, action string, err error) {
	log.Printf("[action][handler] action=%s failed err=%v", action, err)
	appErr := mapActionError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapActionError is the single place usecase errors become transport codes.
func mapActionError(err error) *pkg.AppError {
	var upstream *pkg.UpstreamError
	switch {
	case errors.Is(err, usecase.ErrMissingPolicyNumber):
		return pkg.NewDomainErrorSimple("POLICY_MISSING", "policy missing", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingRequiredField), errors.Is(err, usecase.ErrInvalidSumInsured):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartnerAuth):
		return pkg.NewDomainError("PARTNER_AUTH_FAILED", "Partner authentication failed", err, http.StatusBadGateway)
	case errors.As(err, &upstream):
		msg := "Upstream call failed"
		if upstream.StatusCode != 0 {
			msg = fmt.Sprintf("Upstream call failed (status %d)", upstream.StatusCode)
		}
		return pkg.NewDomainError("UPSTREAM_ERROR", msg, err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrRecordFailed):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Transaction could not be recorded", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrArchiveFailed):
		return pkg.NewDomainError("STORAGE_ERROR", "Document could not be archived", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writePDF(c *gin.Context, policyNumber string, raw []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", policyNumber))
	c.Data(http.StatusOK, "application/pdf", raw)
}
