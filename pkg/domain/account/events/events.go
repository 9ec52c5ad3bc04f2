// Package events defines the events an ATM session emits. They describe what
// happened to the account and are consumed for logging only; no event ever
// carries a PIN.
package events

import (
	"time"

	"github.com/amirasaad/atm/pkg/domain"
	"github.com/google/uuid"
)

// Event type keys.
const (
	PinGeneratedType          = "PinGenerated"
	PinChangedType            = "PinChanged"
	PinVerificationFailedType = "PinVerificationFailed"
	BalanceCheckedType        = "BalanceChecked"
	DepositedType             = "Deposited"
	WithdrawnType             = "Withdrawn"
)

// Meta is embedded in every session event.
type Meta struct {
	EventID   uuid.UUID
	AccountID uuid.UUID
	SessionID uuid.UUID
	Timestamp time.Time
}

// NewMeta stamps a new event for the given account and session.
func NewMeta(accountID, sessionID uuid.UUID) Meta {
	return Meta{
		EventID:   uuid.New(),
		AccountID: accountID,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
	}
}

// PinGenerated is emitted when the first PIN is set.
type PinGenerated struct {
	Meta
}

func (PinGenerated) Type() string { return PinGeneratedType }

// PinChanged is emitted when an existing PIN is replaced.
type PinChanged struct {
	Meta
}

func (PinChanged) Type() string { return PinChangedType }

// PinVerificationFailed is emitted when a PIN-gated operation is refused.
// Reason is the error text, either no pin set or incorrect pin.
type PinVerificationFailed struct {
	Meta
	Operation string
	Reason    string
}

func (PinVerificationFailed) Type() string { return PinVerificationFailedType }

// BalanceChecked is emitted when the balance is disclosed to the user.
type BalanceChecked struct {
	Meta
	Balance int64
}

func (BalanceChecked) Type() string { return BalanceCheckedType }

// Deposited is emitted after a successful deposit.
type Deposited struct {
	Meta
	Amount  int64
	Balance int64
}

func (Deposited) Type() string { return DepositedType }

// Withdrawn is emitted after a successful withdrawal.
type Withdrawn struct {
	Meta
	Amount  int64
	Balance int64
}

func (Withdrawn) Type() string { return WithdrawnType }

var (
	_ domain.Event = PinGenerated{}
	_ domain.Event = PinChanged{}
	_ domain.Event = PinVerificationFailed{}
	_ domain.Event = BalanceChecked{}
	_ domain.Event = Deposited{}
	_ domain.Event = Withdrawn{}
)
