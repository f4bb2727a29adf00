package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"lavaja/internal/adapter/http/handlers/mocks"
	"lavaja/internal/adapter/http/middleware"
	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// deviceTestRouter injects an authenticated gateway the way the HMAC
// middleware would.
func deviceTestRouter(uc usecase.IGatewayProtocolUseCase, gw entities.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDeviceHandler(uc)
	r := gin.New()
	device := r.Group("/v1/device")
	device.Use(func(c *gin.Context) {
		c.Set(middleware.ContextGatewayKey, gw)
	})
	device.POST("/poll", h.Poll)
	device.POST("/ack", h.Ack)
	device.POST("/evento", h.Event)
	return r
}

func TestDeviceHandler_Poll(t *testing.T) {
	gw := entities.Gateway{ID: "gw-1", CondominioID: "cond-1", Active: true}

	t.Run("returns claimed commands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayProtocolUseCase(ctrl)

		uc.EXPECT().Poll(gomock.Any(), gw, 3).Return([]usecase.CommandDelivery{
			{CmdID: "wire-1", Type: entities.CommandTypePulse, Payload: json.RawMessage(`{"pulse_ms":1500}`)},
		}, nil)

		w := doJSON(deviceTestRouter(uc, gw), http.MethodPost, "/v1/device/poll", `{"max":3}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"cmd_id":"wire-1"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("empty body defaults the batch size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayProtocolUseCase(ctrl)

		uc.EXPECT().Poll(gomock.Any(), gw, 0).Return(nil, nil)

		w := doJSON(deviceTestRouter(uc, gw), http.MethodPost, "/v1/device/poll", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing gateway in context is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayProtocolUseCase(ctrl)

		gin.SetMode(gin.TestMode)
		h := NewDeviceHandler(uc)
		r := gin.New()
		r.POST("/v1/device/poll", h.Poll)

		w := doJSON(r, http.MethodPost, "/v1/device/poll", `{"max":3}`, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestDeviceHandler_Ack(t *testing.T) {
	gw := entities.Gateway{ID: "gw-1", CondominioID: "cond-1", Active: true}

	t.Run("ok=false is a valid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayProtocolUseCase(ctrl)

		uc.EXPECT().Ack(gomock.Any(), gw, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Gateway, in usecase.AckInput) (entities.CommandStatus, error) {
				if in.OK {
					t.Fatalf("expected failed ack")
				}
				if in.Code != "RELAY_FAULT" {
					t.Fatalf("unexpected code %q", in.Code)
				}
				return entities.CommandStatusFalhou, nil
			})

		w := doJSON(deviceTestRouter(uc, gw), http.MethodPost, "/v1/device/ack",
			`{"cmd_id":"wire-1","ok":false,"code":"RELAY_FAULT"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"status":"FALHOU"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown command maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayProtocolUseCase(ctrl)

		uc.EXPECT().Ack(gomock.Any(), gw, gomock.Any()).Return(entities.CommandStatus(""), usecase.ErrCommandNotFound)

		w := doJSON(deviceTestRouter(uc, gw), http.MethodPost, "/v1/device/ack",
			`{"cmd_id":"wire-x","ok":true}`, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing cmd_id is rejected before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayProtocolUseCase(ctrl)

		w := doJSON(deviceTestRouter(uc, gw), http.MethodPost, "/v1/device/ack", `{"ok":true}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDeviceHandler_Event(t *testing.T) {
	gw := entities.Gateway{ID: "gw-1", CondominioID: "cond-1", Active: true}

	t.Run("accepted telemetry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayProtocolUseCase(ctrl)

		uc.EXPECT().HandleEvent(gomock.Any(), gw, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Gateway, in usecase.EventInput) error {
				if in.Type != usecase.EventTypeBusyOn || in.MachineID != "maq-1" {
					t.Fatalf("unexpected input %+v", in)
				}
				return nil
			})

		w := doJSON(deviceTestRouter(uc, gw), http.MethodPost, "/v1/device/evento",
			`{"type":"BUSY_ON","machine_id":"maq-1"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"accepted":true`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unregistered gateway maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayProtocolUseCase(ctrl)

		uc.EXPECT().HandleEvent(gomock.Any(), gw, gomock.Any()).Return(usecase.ErrGatewayNotRegistered)

		w := doJSON(deviceTestRouter(uc, gw), http.MethodPost, "/v1/device/evento",
			`{"type":"PULSE","cmd_id":"wire-1"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "GATEWAY_NOT_REGISTERED") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("no open cycle maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayProtocolUseCase(ctrl)

		uc.EXPECT().HandleEvent(gomock.Any(), gw, gomock.Any()).Return(usecase.ErrNoOpenCycle)

		w := doJSON(deviceTestRouter(uc, gw), http.MethodPost, "/v1/device/evento",
			`{"type":"BUSY_OFF","machine_id":"maq-1"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "NO_OPEN_CYCLE") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}
