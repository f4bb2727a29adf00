package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoNotConfigured = errors.New("mercado pago provider not configured")

// MercadoPagoProvider opens charges with Mercado Pago on behalf of the
// payment ledger. Mock mode (PAYMENT_PROVIDER_MOCK) approves everything
// locally so the release pipeline can run without provider credentials.

type MercadoPagoProvider struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoProvider(accessToken string) (*MercadoPagoProvider, error) {
	if isProviderMockEnabled() {
		log.Printf("[payment][provider] mock mode enabled")
		return &MercadoPagoProvider{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][provider] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][provider] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][provider] Mercado Pago client initialized")

	return &MercadoPagoProvider{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoProvider) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][provider] provider not configured")
		return "", "", nil, ErrMercadoPagoNotConfigured
	}
	log.Printf("[payment][provider] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][provider] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][provider] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][provider] response marshal failed err=%v", err)
		return "", "", nil, err
	}

	id := fmt.Sprintf("%d", resp.ID)
	log.Printf("[payment][provider] create success provider_payment_id=%s provider_status=%s", id, resp.Status)
	return id, resp.Status, b, nil
}

func (g *MercadoPagoProvider) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Printf("[payment][provider] mock create start payload_len=%d", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][provider] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[payment][provider] mock create success provider_payment_id=%s provider_status=approved", id)
	return id, "approved", b, nil
}

func isProviderMockEnabled() bool {
	for _, key := range []string{"PAYMENT_PROVIDER_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
