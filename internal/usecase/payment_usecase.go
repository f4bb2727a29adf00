package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"lavaja/internal/domain/entities"
	"lavaja/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentInput    = errors.New("invalid payment input")
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrMachineUnavailable     = errors.New("machine unavailable")
	ErrProviderRefConflict    = errors.New("provider reference already bound to another payment")
	ErrPaymentWrongState      = errors.New("payment is not in a state that allows this transition")
	ErrPaymentProviderFailure = errors.New("payment provider failure")
)

const EventPaymentConfirmed = "payment.confirmed"

// AuthorizeInput is what a POS kiosk or the mobile app sends to open a
// payment for one machine release. Channel is free-form ("pos", "app",
// "manual"); ProviderPayload is forwarded to the provider untouched apart
// from amount/reference enrichment.

type AuthorizeInput struct {
	TenantID        string
	MachineID       string
	Method          string
	Channel         string
	IdempotencyKey  string
	ProviderPayload json.RawMessage
}

// ConfirmInput is the channel-agnostic provider confirmation: the provider
// name plus its payment reference, resolved to our payment id by the caller
// (providers echo it back as external_reference).

type ConfirmInput struct {
	TenantID    string
	Provider    string
	ExternalRef string
	PaymentID   string
	Approved    bool
	PaidAt      time.Time
}

type ConfirmResult struct {
	Payment  entities.Payment
	Replayed bool
}

// IPaymentUseCase is the payment ledger: it records intents and provider
// confirmations. It never talks to gateways; releasing the machine is the
// orchestrator's job.

type IPaymentUseCase interface {
	Authorize(ctx context.Context, in AuthorizeInput) (entities.Payment, bool, error)
	Confirm(ctx context.Context, in ConfirmInput) (ConfirmResult, error)
	MarkVoided(ctx context.Context, paymentID string, status entities.PaymentStatus) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	pricing  IPricingUseCase
	provider interfaces.IPaymentProvider
	notifier interfaces.INotifier
	provName string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, pricing IPricingUseCase, provider interfaces.IPaymentProvider, notifier interfaces.INotifier, providerName string) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, pricing: pricing, provider: provider, notifier: notifier, provName: providerName}
}

// Authorize quotes the machine, reserves the idempotency key and records a
// payment intent. The boolean result reports a replay: the key was already
// bound to an earlier payment, which is returned unchanged.
func (u *PaymentUseCase) Authorize(ctx context.Context, in AuthorizeInput) (entities.Payment, bool, error) {
	in.MachineID = strings.TrimSpace(in.MachineID)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)
	if in.MachineID == "" || in.IdempotencyKey == "" {
		return entities.Payment{}, false, ErrInvalidPaymentInput
	}
	log.Printf("[payment][usecase] authorize start machine_id=%s key=%s channel=%s", in.MachineID, in.IdempotencyKey, in.Channel)

	q, err := u.pricing.Quote(ctx, in.MachineID)
	if err != nil {
		return entities.Payment{}, false, err
	}
	if !q.Available {
		log.Printf("[payment][usecase] machine unavailable machine_id=%s", in.MachineID)
		return entities.Payment{}, false, ErrMachineUnavailable
	}

	paymentID := uuid.NewString()
	ownerID, claimed, err := u.repo.ClaimIdempotencyKey(ctx, in.TenantID, in.IdempotencyKey, paymentID)
	if err != nil {
		return entities.Payment{}, false, err
	}
	if !claimed {
		existing, err := u.repo.GetByID(ctx, ownerID)
		if err != nil {
			return entities.Payment{}, false, err
		}
		if existing.ID != "" {
			log.Printf("[payment][usecase] authorize replay key=%s payment_id=%s", in.IdempotencyKey, existing.ID)
			return existing, true, nil
		}
		// The claim exists but the payment row never landed: a previous call
		// died between claim and create. Resume under the claimed id.
		paymentID = ownerID
		log.Printf("[payment][usecase] authorize resume half-finished claim key=%s payment_id=%s", in.IdempotencyKey, paymentID)
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:             paymentID,
		TenantID:       in.TenantID,
		MachineID:      in.MachineID,
		AmountCents:    q.PriceCents,
		Method:         in.Method,
		Provider:       u.provName,
		Status:         entities.PaymentStatusCriado,
		IdempotencyKey: in.IdempotencyKey,
		Channel:        in.Channel,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if u.provider != nil {
		payload, err := u.buildProviderPayload(in, p, q)
		if err != nil {
			return entities.Payment{}, false, err
		}
		providerPaymentID, providerStatus, _, err := u.provider.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[payment][usecase] provider create failed payment_id=%s err=%v", paymentID, err)
			return entities.Payment{}, false, fmt.Errorf("%w: %v", ErrPaymentProviderFailure, err)
		}
		p.ExternalRef = providerPaymentID
		p.Status = entities.PaymentStatusPendente
		log.Printf("[payment][usecase] provider create success payment_id=%s external_ref=%s provider_status=%s", paymentID, providerPaymentID, providerStatus)

		// Bind the provider ref now so a later confirmation callback can be
		// checked against this payment.
		if _, _, err := u.repo.ClaimProviderRef(ctx, in.TenantID, u.provName, providerPaymentID, paymentID); err != nil {
			return entities.Payment{}, false, err
		}
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] create failed payment_id=%s err=%v", paymentID, err)
		return entities.Payment{}, false, err
	}
	log.Printf("[payment][usecase] authorize success payment_id=%s amount_cents=%d status=%s", created.ID, created.AmountCents, created.Status)
	return created, false, nil
}

func (u *PaymentUseCase) buildProviderPayload(in AuthorizeInput, p entities.Payment, q Quote) (json.RawMessage, error) {
	reqMap := map[string]any{}
	if len(in.ProviderPayload) > 0 && json.Valid(in.ProviderPayload) {
		if err := json.Unmarshal(in.ProviderPayload, &reqMap); err != nil {
			return nil, ErrInvalidPaymentInput
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = p.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Machine %s release", p.MachineID)
	}
	// The ledger, not the caller, is the source of truth for the amount.
	reqMap["transaction_amount"] = float64(q.PriceCents) / 100.0
	return json.Marshal(reqMap)
}

// Confirm applies a provider confirmation. The (tenant, provider, external
// ref) triple is reserved on first processing; duplicate callbacks replay the
// recorded outcome instead of double-processing. A terminal payment never
// regresses.
func (u *PaymentUseCase) Confirm(ctx context.Context, in ConfirmInput) (ConfirmResult, error) {
	in.ExternalRef = strings.TrimSpace(in.ExternalRef)
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	in.Provider = strings.TrimSpace(in.Provider)
	if in.ExternalRef == "" || in.PaymentID == "" || in.Provider == "" {
		return ConfirmResult{}, ErrInvalidPaymentInput
	}
	log.Printf("[payment][usecase] confirm start payment_id=%s provider=%s external_ref=%s approved=%t", in.PaymentID, in.Provider, in.ExternalRef, in.Approved)

	ownerID, claimed, err := u.repo.ClaimProviderRef(ctx, in.TenantID, in.Provider, in.ExternalRef, in.PaymentID)
	if err != nil {
		return ConfirmResult{}, err
	}
	if !claimed && ownerID != in.PaymentID {
		log.Printf("[payment][usecase] provider ref conflict external_ref=%s owner=%s payment_id=%s", in.ExternalRef, ownerID, in.PaymentID)
		return ConfirmResult{}, ErrProviderRefConflict
	}

	p, err := u.repo.GetByID(ctx, in.PaymentID)
	if err != nil {
		return ConfirmResult{}, err
	}
	if p.ID == "" {
		return ConfirmResult{}, ErrPaymentNotFound
	}
	if p.Status.Terminal() {
		log.Printf("[payment][usecase] confirm replay payment_id=%s status=%s", p.ID, p.Status)
		return ConfirmResult{Payment: p, Replayed: true}, nil
	}

	target := entities.PaymentStatusPago
	var paidAt *time.Time
	if in.Approved {
		at := in.PaidAt
		if at.IsZero() {
			at = time.Now().UTC()
		}
		paidAt = &at
	} else {
		target = entities.PaymentStatusFalhou
	}

	applied, err := u.repo.UpdateStatusIf(ctx, p.ID, []entities.PaymentStatus{entities.PaymentStatusCriado, entities.PaymentStatusPendente}, target, paidAt)
	if err != nil {
		return ConfirmResult{}, err
	}
	if !applied {
		// Lost the race against another confirmation; replay whatever won.
		p, err = u.repo.GetByID(ctx, p.ID)
		if err != nil {
			return ConfirmResult{}, err
		}
		log.Printf("[payment][usecase] confirm lost race payment_id=%s status=%s", p.ID, p.Status)
		return ConfirmResult{Payment: p, Replayed: true}, nil
	}

	p.Status = target
	p.ExternalRef = in.ExternalRef
	p.PaidAt = paidAt
	log.Printf("[payment][usecase] confirm success payment_id=%s status=%s", p.ID, p.Status)

	if u.notifier != nil {
		if err := u.notifier.Publish(ctx, EventPaymentConfirmed, p); err != nil {
			log.Printf("[payment][usecase] notify failed payment_id=%s err=%v", p.ID, err)
		}
	}
	return ConfirmResult{Payment: p}, nil
}

// MarkVoided applies a compensation outcome. EXPIRADO/CANCELADO are allowed
// from pre-confirmation states only; ESTORNADO (refund) only from PAGO.
func (u *PaymentUseCase) MarkVoided(ctx context.Context, paymentID string, status entities.PaymentStatus) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	var from []entities.PaymentStatus
	switch status {
	case entities.PaymentStatusExpirado, entities.PaymentStatusCancelado:
		from = []entities.PaymentStatus{entities.PaymentStatusCriado, entities.PaymentStatusPendente}
	case entities.PaymentStatusEstornado:
		from = []entities.PaymentStatus{entities.PaymentStatusPago}
	default:
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	applied, err := u.repo.UpdateStatusIf(ctx, paymentID, from, status, nil)
	if err != nil {
		return entities.Payment{}, err
	}
	if !applied {
		return entities.Payment{}, ErrPaymentWrongState
	}

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	log.Printf("[payment][usecase] voided payment_id=%s status=%s", p.ID, p.Status)
	return p, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}
