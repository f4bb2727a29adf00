package entities

import "time"

// CycleStatus represents one paid attempt to run a machine.
//
// AGUARDANDO_LIBERACAO and LIBERADO are pre-use states and may be expired by
// the TTL reconciler. EM_USO means the machine is physically running and is
// only ever closed by a BUSY_OFF telemetry event.

type CycleStatus string

const (
	CycleStatusAguardandoLiberacao CycleStatus = "AGUARDANDO_LIBERACAO"
	CycleStatusLiberado            CycleStatus = "LIBERADO"
	CycleStatusEmUso               CycleStatus = "EM_USO"
	CycleStatusFinalizado          CycleStatus = "FINALIZADO"
	CycleStatusAbortado            CycleStatus = "ABORTADO"
)

// Open reports whether the cycle still holds the machine reservation.
func (s CycleStatus) Open() bool {
	switch s {
	case CycleStatusAguardandoLiberacao, CycleStatusLiberado, CycleStatusEmUso:
		return true
	}
	return false
}

// PreUse reports whether the cycle may still be expired by the reconciler.
func (s CycleStatus) PreUse() bool {
	return s == CycleStatusAguardandoLiberacao || s == CycleStatusLiberado
}

// Cycle is one machine session from reservation to completion/abort.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (machine_id-index): machine_id
//   - the "at most one open cycle per machine" invariant is a separate lock
//     item keyed by machine_id, written in the same transaction that creates
//     the cycle.

type Cycle struct {
	ID          string      `json:"id"`
	TenantID    string      `json:"tenant_id"`
	MachineID   string      `json:"machine_id"`
	PaymentID   string      `json:"payment_id,omitempty"`
	Status      CycleStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	PulseSentAt *time.Time  `json:"pulse_sent_at,omitempty"`
	BusyOnAt    *time.Time  `json:"busy_on_at,omitempty"`
	BusyOffAt   *time.Time  `json:"busy_off_at,omitempty"`
	EtaFreeAt   *time.Time  `json:"eta_free_at,omitempty"`
}
