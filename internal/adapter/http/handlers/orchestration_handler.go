package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lavaja/internal/adapter/http/dto/request"
	"lavaja/internal/adapter/http/dto/response"
	"lavaja/internal/config"
	"lavaja/internal/usecase"
	"lavaja/pkg"
)

// OrchestrationHandler turns confirmed payments into liberation cycles and
// serves machine price quotes.

type OrchestrationHandler struct {
	orchestrator usecase.IOrchestratorUseCase
	pricing      usecase.IPricingUseCase
	cfg          config.Config
}

func NewOrchestrationHandler(orchestrator usecase.IOrchestratorUseCase, pricing usecase.IPricingUseCase, cfg config.Config) *OrchestrationHandler {
	return &OrchestrationHandler{orchestrator: orchestrator, pricing: pricing, cfg: cfg}
}

// Issue creates (or replays) the cycle+command pair for a confirmed payment.
func (h *OrchestrationHandler) Issue(c *gin.Context) {
	var req request.OrchestrationIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[orchestration][handler] issue invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tenant := tenantFrom(c, h.cfg)
	log.Printf("[orchestration][handler] issue start tenant=%s payment_id=%s machine_id=%s idem_key=%s", tenant, req.PaymentID, req.MachineID, req.IdempotencyKey)

	result, err := h.orchestrator.Issue(c.Request.Context(), usecase.IssueInput{
		TenantID:       tenant,
		PaymentID:      req.PaymentID,
		MachineID:      req.MachineID,
		IdempotencyKey: req.IdempotencyKey,
		Channel:        req.Channel,
		Origin:         req.Origin,
	})
	if err != nil {
		log.Printf("[orchestration][handler] issue failed payment_id=%s err=%v", req.PaymentID, err)
		appErr := mapOrchestrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orchestration][handler] issue success cycle_id=%s command_id=%s replayed=%t", result.CycleID, result.CommandID, result.Replay)

	status := http.StatusCreated
	if result.Replay {
		status = http.StatusOK
	}
	c.JSON(status, response.FromIssueResult(result))
}

// Quote returns the price and availability of a machine.
func (h *OrchestrationHandler) Quote(c *gin.Context) {
	machineID := c.Param("machine_id")
	log.Printf("[orchestration][handler] quote start machine_id=%s", machineID)

	quote, err := h.pricing.Quote(c.Request.Context(), machineID)
	if err != nil {
		log.Printf("[orchestration][handler] quote failed machine_id=%s err=%v", machineID, err)
		appErr := mapOrchestrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapOrchestrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIssueInput), errors.Is(err, usecase.ErrInvalidMachineID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotConfirmed):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_CONFIRMED", "Payment is not confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentMachineMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_MACHINE_MISMATCH", "Payment belongs to another machine", http.StatusConflict)
	case errors.Is(err, usecase.ErrMachineInactive):
		return pkg.NewDomainErrorSimple("MACHINE_INACTIVE", "Machine is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrMachineInUse):
		return pkg.NewDomainErrorSimple("MACHINE_IN_USE", "Machine already has an open cycle", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnreachable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNREACHABLE", "Machine gateway is not available", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
