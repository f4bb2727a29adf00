package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lavaja/internal/adapter/http/dto/request"
	"lavaja/internal/adapter/http/dto/response"
	"lavaja/internal/config"
	"lavaja/internal/usecase"
	"lavaja/pkg"
)

// PaymentHandler handles HTTP requests for the payment ledger.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	cfg     config.Config
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{usecase: uc, cfg: cfg}
}

// Authorize creates (or replays) a payment intent for a machine.
func (h *PaymentHandler) Authorize(c *gin.Context) {
	var req request.PaymentAuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] authorize invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tenant := tenantFrom(c, h.cfg)
	log.Printf("[payment][handler] authorize start tenant=%s machine_id=%s idem_key=%s", tenant, req.MachineID, req.IdempotencyKey)

	payment, replayed, err := h.usecase.Authorize(c.Request.Context(), usecase.AuthorizeInput{
		TenantID:        tenant,
		MachineID:       req.MachineID,
		Method:          req.Method,
		Channel:         req.Channel,
		IdempotencyKey:  req.IdempotencyKey,
		ProviderPayload: req.ProviderPayload,
	})
	if err != nil {
		log.Printf("[payment][handler] authorize failed machine_id=%s err=%v", req.MachineID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] authorize success payment_id=%s status=%s replayed=%t", payment.ID, payment.Status, replayed)

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	c.JSON(status, response.FromPayment(payment, replayed))
}

// Confirm applies a provider confirmation (approved or declined).
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req request.PaymentConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] confirm invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tenant := tenantFrom(c, h.cfg)
	log.Printf("[payment][handler] confirm start tenant=%s payment_id=%s provider=%s ref=%s", tenant, req.PaymentID, req.Provider, req.ExternalRef)

	result, err := h.usecase.Confirm(c.Request.Context(), usecase.ConfirmInput{
		TenantID:    tenant,
		Provider:    req.Provider,
		ExternalRef: req.ExternalRef,
		PaymentID:   req.PaymentID,
		Approved:    req.Approved != nil && *req.Approved,
		PaidAt:      req.PaidAt,
	})
	if err != nil {
		log.Printf("[payment][handler] confirm failed payment_id=%s err=%v", req.PaymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm success payment_id=%s status=%s replayed=%t", result.Payment.ID, result.Payment.Status, result.Replayed)

	c.JSON(http.StatusOK, response.FromPayment(result.Payment, result.Replayed))
}

// GetByID returns a single payment.
func (h *PaymentHandler) GetByID(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] get start payment_id=%s", paymentID)

	payment, err := h.usecase.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment, false))
}

func tenantFrom(c *gin.Context, cfg config.Config) string {
	if t := strings.TrimSpace(c.GetHeader("X-Tenant-ID")); t != "" {
		return t
	}
	return cfg.DefaultTenant
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInput), errors.Is(err, usecase.ErrInvalidMachineID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMachineUnavailable):
		return pkg.NewDomainErrorSimple("MACHINE_UNAVAILABLE", "Machine is busy or out of service", http.StatusConflict)
	case errors.Is(err, usecase.ErrProviderRefConflict):
		return pkg.NewDomainErrorSimple("PROVIDER_REF_CONFLICT", "Provider reference already bound to another payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentWrongState):
		return pkg.NewDomainErrorSimple("PAYMENT_WRONG_STATE", "Payment is not in a confirmable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentProviderFailure):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_FAILURE", "Payment provider rejected the request", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
