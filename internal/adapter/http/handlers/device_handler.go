package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lavaja/internal/adapter/http/dto/request"
	"lavaja/internal/adapter/http/dto/response"
	"lavaja/internal/adapter/http/middleware"
	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase"
	"lavaja/pkg"
)

// DeviceHandler serves the gateway wire protocol: poll, ack and telemetry
// events. Every route expects the HMAC middleware to have authenticated the
// gateway first.

type DeviceHandler struct {
	usecase usecase.IGatewayProtocolUseCase
}

func NewDeviceHandler(uc usecase.IGatewayProtocolUseCase) *DeviceHandler {
	return &DeviceHandler{usecase: uc}
}

// Poll claims and returns pending commands for the calling gateway.
func (h *DeviceHandler) Poll(c *gin.Context) {
	gw, ok := gatewayFromContext(c)
	if !ok {
		return
	}

	var req request.DevicePollRequest
	// An empty body means "default batch size".
	_ = c.ShouldBindJSON(&req)

	cmds, err := h.usecase.Poll(c.Request.Context(), gw, req.Max)
	if err != nil {
		log.Printf("[device][handler] poll failed gateway_id=%s err=%v", gw.ID, err)
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCommandDeliveries(cmds))
}

// Ack records the gateway's execution outcome for a delivered command.
func (h *DeviceHandler) Ack(c *gin.Context) {
	gw, ok := gatewayFromContext(c)
	if !ok {
		return
	}

	var req request.DeviceAckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[device][handler] ack invalid payload gateway_id=%s err=%v", gw.ID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status, err := h.usecase.Ack(c.Request.Context(), gw, usecase.AckInput{
		CmdID:     req.CmdID,
		OK:        req.OK != nil && *req.OK,
		ClientTS:  req.ClientTS,
		MachineID: req.MachineID,
		Code:      req.Code,
	})
	if err != nil {
		log.Printf("[device][handler] ack failed gateway_id=%s cmd_id=%s err=%v", gw.ID, req.CmdID, err)
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[device][handler] ack processed gateway_id=%s cmd_id=%s status=%s", gw.ID, req.CmdID, status)

	c.JSON(http.StatusOK, response.DeviceAckResponse{CmdID: req.CmdID, Status: string(status)})
}

// Event ingests machine telemetry (PULSE, BUSY_ON, BUSY_OFF).
func (h *DeviceHandler) Event(c *gin.Context) {
	gw, ok := gatewayFromContext(c)
	if !ok {
		return
	}

	var req request.DeviceEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[device][handler] event invalid payload gateway_id=%s err=%v", gw.ID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	err := h.usecase.HandleEvent(c.Request.Context(), gw, usecase.EventInput{
		Type:      usecase.EventType(req.Type),
		CmdID:     req.CmdID,
		MachineID: req.MachineID,
		ClientTS:  req.ClientTS,
	})
	if err != nil {
		log.Printf("[device][handler] event failed gateway_id=%s type=%s err=%v", gw.ID, req.Type, err)
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[device][handler] event processed gateway_id=%s type=%s machine_id=%s", gw.ID, req.Type, req.MachineID)

	c.JSON(http.StatusOK, response.DeviceEventResponse{Accepted: true})
}

func gatewayFromContext(c *gin.Context) (entities.Gateway, bool) {
	v, exists := c.Get(middleware.ContextGatewayKey)
	if !exists {
		appErr := pkg.NewDomainErrorSimple("DEVICE_UNAUTHORIZED", "Missing device authentication", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.Gateway{}, false
	}
	gw, ok := v.(entities.Gateway)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.Gateway{}, false
	}
	return gw, true
}

func mapDeviceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCommandNotFound):
		return pkg.NewDomainErrorSimple("COMMAND_NOT_FOUND", "Command not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotRegistered):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_REGISTERED", "Gateway is not bound to a location", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownEventType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unknown event type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoOpenCycle):
		return pkg.NewDomainErrorSimple("NO_OPEN_CYCLE", "No open cycle for this machine", http.StatusConflict)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
