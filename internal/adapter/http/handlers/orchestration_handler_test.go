package handlers

import (
	"net/http"
	"strings"
	"testing"

	"lavaja/internal/adapter/http/handlers/mocks"
	"lavaja/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func orchestrationTestRouter(orchestrator usecase.IOrchestratorUseCase, pricing usecase.IPricingUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrchestrationHandler(orchestrator, pricing, testCfg())
	r := gin.New()
	r.POST("/v1/orchestrations", h.Issue)
	r.GET("/v1/machines/:machine_id/quote", h.Quote)
	return r
}

func TestOrchestrationHandler_Issue(t *testing.T) {
	t.Run("fresh issue returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orchestrator := mocks.NewMockIOrchestratorUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)

		orchestrator.EXPECT().Issue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.IssueInput) (usecase.IssueResult, error) {
				if in.PaymentID != "pay-1" || in.MachineID != "maq-1" || in.IdempotencyKey != "idem-1" {
					t.Fatalf("unexpected input %+v", in)
				}
				return usecase.IssueResult{CycleID: "cyc-1", CommandID: "cmd-1"}, nil
			})

		w := doJSON(orchestrationTestRouter(orchestrator, pricing), http.MethodPost, "/v1/orchestrations",
			`{"payment_id":"pay-1","machine_id":"maq-1","idempotency_key":"idem-1"}`, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"cycle_id":"cyc-1"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("replay returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orchestrator := mocks.NewMockIOrchestratorUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)

		orchestrator.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(
			usecase.IssueResult{CycleID: "cyc-1", CommandID: "cmd-1", Replay: true}, nil)

		w := doJSON(orchestrationTestRouter(orchestrator, pricing), http.MethodPost, "/v1/orchestrations",
			`{"payment_id":"pay-1","machine_id":"maq-1","idempotency_key":"idem-1"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"replayed":true`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unconfirmed payment maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orchestrator := mocks.NewMockIOrchestratorUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)

		orchestrator.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(usecase.IssueResult{}, usecase.ErrPaymentNotConfirmed)

		w := doJSON(orchestrationTestRouter(orchestrator, pricing), http.MethodPost, "/v1/orchestrations",
			`{"payment_id":"pay-1","machine_id":"maq-1","idempotency_key":"idem-1"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "PAYMENT_NOT_CONFIRMED") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("reserved machine maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orchestrator := mocks.NewMockIOrchestratorUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)

		orchestrator.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(usecase.IssueResult{}, usecase.ErrMachineInUse)

		w := doJSON(orchestrationTestRouter(orchestrator, pricing), http.MethodPost, "/v1/orchestrations",
			`{"payment_id":"pay-1","machine_id":"maq-1","idempotency_key":"idem-1"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "MACHINE_IN_USE") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestOrchestrationHandler_Quote(t *testing.T) {
	t.Run("available machine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orchestrator := mocks.NewMockIOrchestratorUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)

		pricing.EXPECT().Quote(gomock.Any(), "maq-1").Return(usecase.Quote{MachineID: "maq-1", PriceCents: 1200, Available: true}, nil)

		w := doJSON(orchestrationTestRouter(orchestrator, pricing), http.MethodGet, "/v1/machines/maq-1/quote", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"price_cents":1200`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown machine maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orchestrator := mocks.NewMockIOrchestratorUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)

		pricing.EXPECT().Quote(gomock.Any(), "maq-x").Return(usecase.Quote{}, usecase.ErrMachineNotFound)

		w := doJSON(orchestrationTestRouter(orchestrator, pricing), http.MethodGet, "/v1/machines/maq-x/quote", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
