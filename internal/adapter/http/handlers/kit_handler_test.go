package handlers

import (
	"net/http"
	"strings"
	"testing"

	"lavaja/internal/adapter/http/handlers/mocks"
	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func kitTestRouter(uc usecase.IKitUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewKitHandler(uc, testCfg())
	r := gin.New()
	r.POST("/v1/kits/reconcile", h.Reconcile)
	r.POST("/v1/kits/transfer", h.Transfer)
	return r
}

func TestKitHandler_Reconcile(t *testing.T) {
	t.Run("returns the sweep report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKitUseCase(ctrl)

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.KitReconcileInput) (usecase.KitReconcileResult, error) {
				if in.PosDeviceID != "pos-1" || in.GatewayID != "gw-1" {
					t.Fatalf("unexpected input %+v", in)
				}
				return usecase.KitReconcileResult{Report: entities.KitReset{ID: "reset-1", CommandsExpired: 2, CyclesExpired: 1}}, nil
			})

		w := doJSON(kitTestRouter(uc), http.MethodPost, "/v1/kits/reconcile",
			`{"pos_device_id":"pos-1","gateway_id":"gw-1","reason":"suporte"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"commands_expired":2`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("split kit maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKitUseCase(ctrl)

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(usecase.KitReconcileResult{}, usecase.ErrKitNotCohesive)

		w := doJSON(kitTestRouter(uc), http.MethodPost, "/v1/kits/reconcile",
			`{"pos_device_id":"pos-1","gateway_id":"gw-1"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "KIT_NOT_COHESIVE") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("missing ids are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKitUseCase(ctrl)

		w := doJSON(kitTestRouter(uc), http.MethodPost, "/v1/kits/reconcile", `{"reason":"suporte"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestKitHandler_Transfer(t *testing.T) {
	body := `{"pos_device_id":"pos-1","gateway_id":"gw-1","to_condominio_id":"cond-2","auto_reconcile_expired":true}`

	t.Run("successful move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKitUseCase(ctrl)

		uc.EXPECT().Transfer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.KitTransferInput) (entities.KitTransfer, error) {
				if in.ToCondominioID != "cond-2" || !in.AutoReconcileExpired {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.KitTransfer{ID: "tr-1", Result: entities.KitTransferResultSucesso, FromCondominioID: "cond-1", ToCondominioID: "cond-2"}, nil
			})

		w := doJSON(kitTestRouter(uc), http.MethodPost, "/v1/kits/transfer", body, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"result":"SUCESSO"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("each pendency maps to its own code", func(t *testing.T) {
		cases := []struct {
			err  error
			code string
		}{
			{usecase.ErrPendingActiveCommand, "PENDING_ACTIVE_COMMAND"},
			{usecase.ErrPendingExpiredCommand, "PENDING_EXPIRED_COMMAND"},
			{usecase.ErrPendingActiveCycle, "PENDING_ACTIVE_CYCLE"},
			{usecase.ErrPendingExpiredCycle, "PENDING_EXPIRED_CYCLE"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIKitUseCase(ctrl)
			uc.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(entities.KitTransfer{}, tc.err)

			w := doJSON(kitTestRouter(uc), http.MethodPost, "/v1/kits/transfer", body, nil)
			if w.Code != http.StatusConflict {
				t.Fatalf("%s: expected 409, got %d", tc.code, w.Code)
			}
			if !strings.Contains(w.Body.String(), tc.code) {
				t.Fatalf("expected code %s, got body %s", tc.code, w.Body.String())
			}
			ctrl.Finish()
		}
	})

	t.Run("compensated transfer maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIKitUseCase(ctrl)

		uc.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(entities.KitTransfer{}, usecase.ErrTransferCompensated)

		w := doJSON(kitTestRouter(uc), http.MethodPost, "/v1/kits/transfer", body, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "TRANSFER_COMPENSATED") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}
