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

// KitHandler exposes the operational kit lifecycle: forced reconciles and
// location transfers.

type KitHandler struct {
	usecase usecase.IKitUseCase
	cfg     config.Config
}

func NewKitHandler(uc usecase.IKitUseCase, cfg config.Config) *KitHandler {
	return &KitHandler{usecase: uc, cfg: cfg}
}

// Reconcile forces an expiry sweep over a kit and records the reset audit row.
func (h *KitHandler) Reconcile(c *gin.Context) {
	var req request.KitReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[kit][handler] reconcile invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tenant := tenantFrom(c, h.cfg)
	log.Printf("[kit][handler] reconcile start tenant=%s pos_device_id=%s gateway_id=%s", tenant, req.PosDeviceID, req.GatewayID)

	result, err := h.usecase.Reconcile(c.Request.Context(), usecase.KitReconcileInput{
		TenantID:     tenant,
		CondominioID: req.CondominioID,
		PosDeviceID:  req.PosDeviceID,
		GatewayID:    req.GatewayID,
		Reason:       req.Reason,
		Actor:        req.Actor,
	})
	if err != nil {
		log.Printf("[kit][handler] reconcile failed pos_device_id=%s gateway_id=%s err=%v", req.PosDeviceID, req.GatewayID, err)
		appErr := mapKitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[kit][handler] reconcile success reset_id=%s commands_expired=%d cycles_expired=%d", result.Report.ID, result.Report.CommandsExpired, result.Report.CyclesExpired)

	c.JSON(http.StatusOK, response.FromKitReset(result.Report))
}

// Transfer moves a kit to another condominio, compensating on partial failure.
func (h *KitHandler) Transfer(c *gin.Context) {
	var req request.KitTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[kit][handler] transfer invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tenant := tenantFrom(c, h.cfg)
	log.Printf("[kit][handler] transfer start tenant=%s pos_device_id=%s gateway_id=%s to=%s", tenant, req.PosDeviceID, req.GatewayID, req.ToCondominioID)

	transfer, err := h.usecase.Transfer(c.Request.Context(), usecase.KitTransferInput{
		TenantID:             tenant,
		PosDeviceID:          req.PosDeviceID,
		GatewayID:            req.GatewayID,
		ToCondominioID:       req.ToCondominioID,
		Reason:               req.Reason,
		Actor:                req.Actor,
		AutoReconcileExpired: req.AutoReconcileExpired,
	})
	if err != nil {
		log.Printf("[kit][handler] transfer failed pos_device_id=%s gateway_id=%s err=%v", req.PosDeviceID, req.GatewayID, err)
		appErr := mapKitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[kit][handler] transfer success transfer_id=%s result=%s", transfer.ID, transfer.Result)

	c.JSON(http.StatusOK, response.FromKitTransfer(transfer))
}

func mapKitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidKitInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPosDeviceNotFound):
		return pkg.NewDomainErrorSimple("POS_DEVICE_NOT_FOUND", "POS device not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotFound):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_FOUND", "Gateway not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCondominioNotFound):
		return pkg.NewDomainErrorSimple("CONDOMINIO_NOT_FOUND", "Condominio not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrKitNotCohesive):
		return pkg.NewDomainErrorSimple("KIT_NOT_COHESIVE", "POS device and gateway are not at the same location", http.StatusConflict)
	case errors.Is(err, usecase.ErrKitAttachedToMachines):
		return pkg.NewDomainErrorSimple("KIT_ATTACHED_TO_MACHINES", "Machines still reference this kit", http.StatusConflict)
	case errors.Is(err, usecase.ErrPendingActiveCommand):
		return pkg.NewDomainErrorSimple("PENDING_ACTIVE_COMMAND", "Kit has a pending command inside its TTL", http.StatusConflict)
	case errors.Is(err, usecase.ErrPendingExpiredCommand):
		return pkg.NewDomainErrorSimple("PENDING_EXPIRED_COMMAND", "Kit has TTL-expired commands; reconcile first", http.StatusConflict)
	case errors.Is(err, usecase.ErrPendingActiveCycle):
		return pkg.NewDomainErrorSimple("PENDING_ACTIVE_CYCLE", "Kit has an active or in-use cycle", http.StatusConflict)
	case errors.Is(err, usecase.ErrPendingExpiredCycle):
		return pkg.NewDomainErrorSimple("PENDING_EXPIRED_CYCLE", "Kit has TTL-expired pre-use cycles; reconcile first", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransferSameLocation):
		return pkg.NewDomainErrorSimple("TRANSFER_SAME_LOCATION", "Kit is already at the destination", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransferLostRace):
		return pkg.NewDomainErrorSimple("TRANSFER_LOST_RACE", "Kit location changed concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransferCompensated):
		return pkg.NewDomainErrorSimple("TRANSFER_COMPENSATED", "Gateway move failed and the POS location was rolled back", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
