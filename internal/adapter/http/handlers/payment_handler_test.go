package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lavaja/internal/adapter/http/handlers/mocks"
	"lavaja/internal/config"
	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func testCfg() config.Config {
	return config.Config{DefaultTenant: "default"}
}

func paymentTestRouter(uc usecase.IPaymentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(uc, testCfg())
	r := gin.New()
	r.POST("/v1/payments", h.Authorize)
	r.POST("/v1/payments/confirm", h.Confirm)
	r.GET("/v1/payments/:payment_id", h.GetByID)
	return r
}

func doJSON(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_Authorize(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		w := doJSON(paymentTestRouter(uc), http.MethodPost, "/v1/payments", `{"machine_id":"maq-1"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("fresh authorization returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		uc.EXPECT().Authorize(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.AuthorizeInput) (entities.Payment, bool, error) {
				if in.TenantID != "condo-brasil" {
					t.Fatalf("expected tenant from header, got %q", in.TenantID)
				}
				if in.MachineID != "maq-1" || in.IdempotencyKey != "idem-1" {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Payment{ID: "pay-1", MachineID: "maq-1", AmountCents: 1500, Status: entities.PaymentStatusCriado}, false, nil
			})

		w := doJSON(paymentTestRouter(uc), http.MethodPost, "/v1/payments",
			`{"machine_id":"maq-1","idempotency_key":"idem-1","method":"pix"}`,
			map[string]string{"X-Tenant-ID": "condo-brasil"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"payment_id":"pay-1"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("replayed authorization returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		uc.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(
			entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCriado}, true, nil)

		w := doJSON(paymentTestRouter(uc), http.MethodPost, "/v1/payments",
			`{"machine_id":"maq-1","idempotency_key":"idem-1"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"replayed":true`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("busy machine maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		uc.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(entities.Payment{}, false, usecase.ErrMachineUnavailable)

		w := doJSON(paymentTestRouter(uc), http.MethodPost, "/v1/payments",
			`{"machine_id":"maq-1","idempotency_key":"idem-1"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "MACHINE_UNAVAILABLE") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("provider failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		uc.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(entities.Payment{}, false, usecase.ErrPaymentProviderFailure)

		w := doJSON(paymentTestRouter(uc), http.MethodPost, "/v1/payments",
			`{"machine_id":"maq-1","idempotency_key":"idem-1"}`, nil)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Confirm(t *testing.T) {
	t.Run("approved=false is a valid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		uc.EXPECT().Confirm(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.ConfirmInput) (usecase.ConfirmResult, error) {
				if in.Approved {
					t.Fatalf("expected declined confirmation")
				}
				return usecase.ConfirmResult{Payment: entities.Payment{ID: in.PaymentID, Status: entities.PaymentStatusFalhou}}, nil
			})

		w := doJSON(paymentTestRouter(uc), http.MethodPost, "/v1/payments/confirm",
			`{"provider":"mercadopago","external_ref":"mp-1","payment_id":"pay-1","approved":false}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), string(entities.PaymentStatusFalhou)) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("missing approved field is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		w := doJSON(paymentTestRouter(uc), http.MethodPost, "/v1/payments/confirm",
			`{"provider":"mercadopago","external_ref":"mp-1","payment_id":"pay-1"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ref conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		uc.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(usecase.ConfirmResult{}, usecase.ErrProviderRefConflict)

		w := doJSON(paymentTestRouter(uc), http.MethodPost, "/v1/payments/confirm",
			`{"provider":"mercadopago","external_ref":"mp-1","payment_id":"pay-1","approved":true}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "PROVIDER_REF_CONFLICT") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPago}, nil)

		w := doJSON(paymentTestRouter(uc), http.MethodGet, "/v1/payments/pay-1", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		uc.EXPECT().GetByID(gomock.Any(), "pay-x").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		w := doJSON(paymentTestRouter(uc), http.MethodGet, "/v1/payments/pay-x", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
