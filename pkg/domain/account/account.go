package account

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// PinLength is the exact number of ASCII digits a PIN must have.
	PinLength = 4
	// Denomination is the smallest note the machine dispenses or accepts.
	// Every deposit and withdrawal must be a multiple of it.
	Denomination = 100
)

var (
	// ErrInvalidPinFormat is returned when a PIN candidate is not exactly four ASCII digits.
	ErrInvalidPinFormat = errors.New("pin must be exactly 4 digits")
	// ErrPinMismatch is returned when the PIN confirmation differs from the candidate.
	ErrPinMismatch = errors.New("pin confirmation does not match")
	// ErrPinAlreadySet is returned when generating a PIN for an account that already has one.
	ErrPinAlreadySet = errors.New("pin already set")
	// ErrNoPinSet is returned when a PIN-gated operation runs before a PIN exists.
	ErrNoPinSet = errors.New("no pin set")
	// ErrIncorrectPin is returned when the supplied PIN does not match the stored one.
	ErrIncorrectPin = errors.New("incorrect pin")

	// ErrInvalidAmount is returned when an amount cannot be parsed as an integer.
	ErrInvalidAmount = errors.New("amount is not a valid integer")
	// ErrAmountOutOfRange is returned by ParseAmount for a positive multiple of
	// Denomination too large for an int64. Such an amount exceeds any balance.
	ErrAmountOutOfRange = errors.New("amount is out of range")
	// ErrNonPositiveAmount is returned when an amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	// ErrNotMultipleOf100 is returned when an amount is not a multiple of Denomination.
	ErrNotMultipleOf100 = errors.New("amount must be a multiple of 100")
	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAmountExceedsMaxSafeInt is returned when a deposit would overflow the balance.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")
)

// Account is the single account served by an ATM session.
//
// Invariants:
//   - the PIN is either unset or exactly PinLength ASCII digits;
//   - the balance is never negative and always a multiple of Denomination;
//   - only the PIN methods change the PIN and only Deposit/Withdraw change the balance.
type Account struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	pin     string
	balance int64
}

// New returns a fresh account with no PIN and a zero balance.
func New() *Account {
	now := time.Now().UTC()
	return &Account{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasPin reports whether a PIN has been generated.
func (a *Account) HasPin() bool {
	return a.pin != ""
}

// Balance returns the current balance in whole currency units.
func (a *Account) Balance() int64 {
	return a.balance
}

// ValidatePin checks the PIN format without touching account state.
func ValidatePin(candidate string) error {
	if len(candidate) != PinLength {
		return ErrInvalidPinFormat
	}
	for i := 0; i < len(candidate); i++ {
		if !isDigit(candidate[i]) {
			return ErrInvalidPinFormat
		}
	}
	return nil
}

// GeneratePin sets the first PIN of the account.
func (a *Account) GeneratePin(candidate, confirm string) error {
	if a.HasPin() {
		return ErrPinAlreadySet
	}
	return a.setPin(candidate, confirm)
}

// VerifyPin compares pin against the stored PIN by exact string equality.
// There is no attempt counter: every call is independent.
func (a *Account) VerifyPin(pin string) error {
	if !a.HasPin() {
		return ErrNoPinSet
	}
	if pin != a.pin {
		return ErrIncorrectPin
	}
	return nil
}

// ChangePin verifies current and then replaces the PIN with candidate.
func (a *Account) ChangePin(current, candidate, confirm string) error {
	if err := a.VerifyPin(current); err != nil {
		return err
	}
	return a.setPin(candidate, confirm)
}

func (a *Account) setPin(candidate, confirm string) error {
	if err := ValidatePin(candidate); err != nil {
		return err
	}
	if candidate != confirm {
		return ErrPinMismatch
	}
	a.pin = candidate
	a.touch()
	return nil
}

// ValidateWithdraw runs the withdrawal checks in order; the first failure wins.
func (a *Account) ValidateWithdraw(amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	return nil
}

// Withdraw removes amount from the balance if ValidateWithdraw passes.
func (a *Account) Withdraw(amount int64) error {
	if err := a.ValidateWithdraw(amount); err != nil {
		return err
	}
	a.balance -= amount
	a.touch()
	return nil
}

// ValidateDeposit runs the deposit checks in order; there is no upper bound
// other than the int64 range of the balance.
func (a *Account) ValidateDeposit(amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount > math.MaxInt64-a.balance {
		return ErrAmountExceedsMaxSafeInt
	}
	return nil
}

// Deposit adds amount to the balance if ValidateDeposit passes.
func (a *Account) Deposit(amount int64) error {
	if err := a.ValidateDeposit(amount); err != nil {
		return err
	}
	a.balance += amount
	a.touch()
	return nil
}

func validateAmount(amount int64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount%Denomination != 0 {
		return ErrNotMultipleOf100
	}
	return nil
}

// ParseAmount parses a typed amount. Surrounding whitespace, a leading sign and
// single underscores between digits (1_000) are accepted; anything else yields
// ErrInvalidAmount.
//
// Integers outside the int64 range still go through the amount checks in
// order: a negative one comes back as math.MinInt64, one that is not a
// multiple of Denomination as math.MaxInt64, and the rest as
// ErrAmountOutOfRange.
func ParseAmount(text string) (int64, error) {
	s := strings.TrimSpace(text)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	digits, ok := amountDigits(s)
	if !ok {
		return 0, ErrInvalidAmount
	}
	amount, err := strconv.ParseInt(sign+digits, 10, 64)
	switch {
	case err == nil:
		return amount, nil
	case !errors.Is(err, strconv.ErrRange):
		return 0, ErrInvalidAmount
	case sign == "-":
		return math.MinInt64, nil
	case !strings.HasSuffix(digits, "00"):
		return math.MaxInt64, nil
	default:
		return 0, ErrAmountOutOfRange
	}
}

// amountDigits returns s with its grouping underscores removed, or false if s
// is not a non-empty run of ASCII digits.
func amountDigits(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isDigit(c):
			b.WriteByte(c)
		case c == '_' && i > 0 && i < len(s)-1 && isDigit(s[i-1]) && isDigit(s[i+1]):
		default:
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (a *Account) touch() {
	a.UpdatedAt = time.Now().UTC()
}
