package session

import (
	"errors"

	"github.com/amirasaad/atm/pkg/domain/account"
)

// Operation names a user-facing ATM operation.
type Operation string

// Operations, as reported in rejections, logs and events.
const (
	// OpGeneratePin sets the first PIN.
	OpGeneratePin Operation = "generate_pin"
	// OpChangePin replaces the PIN.
	OpChangePin Operation = "change_pin"
	// OpCheckBalance shows the balance.
	OpCheckBalance Operation = "check_balance"
	// OpWithdraw removes money from the balance.
	OpWithdraw Operation = "withdraw"
	// OpDeposit adds money to the balance.
	OpDeposit Operation = "deposit"
)

const (
	promptNewPin        = "Enter a 4-digit PIN: "
	promptConfirmPin    = "Confirm your PIN: "
	promptConfirmNewPin = "Confirm your new PIN: "
	promptCurrentPin    = "Enter your current PIN: "
	promptWithdraw      = "Enter the amount to withdraw (multiple of 100): "
	promptDeposit       = "Enter the amount to deposit (multiple of 100): "

	msgPinSet     = "PIN set successfully!"
	msgPinChanged = "PIN changed successfully!"
	msgBalance    = "Your current balance is: $%d"
	msgWithdrawn  = "Withdrawn $%d. Current balance: $%d"
	msgDeposited  = "Deposited $%d. Current balance: $%d"
)

var rejectionMessages = map[error]string{
	account.ErrInvalidPinFormat:        "Invalid PIN format. Please ensure it's a 4-digit number.",
	account.ErrPinAlreadySet:           "PIN is already set. Use the 'Change PIN' option to modify it.",
	account.ErrNoPinSet:                "No PIN is set. Please generate a PIN first.",
	account.ErrIncorrectPin:            "Incorrect PIN.",
	account.ErrInvalidAmount:           "Invalid input. Please enter a numeric value.",
	account.ErrNotMultipleOf100:        "Amount must be a multiple of 100.",
	account.ErrInsufficientFunds:       "Insufficient balance.",
	account.ErrAmountExceedsMaxSafeInt: "Deposit amount exceeds the maximum balance.",
}

// rejectionMessage returns the line shown to the user when op fails with err.
// Mismatch and non-positive amounts are worded per operation.
func rejectionMessage(op Operation, err error) string {
	switch {
	case errors.Is(err, account.ErrPinMismatch) && op == OpChangePin:
		return "PINs do not match. PIN change failed."
	case errors.Is(err, account.ErrPinMismatch):
		return "PINs do not match. PIN generation failed."
	case errors.Is(err, account.ErrNonPositiveAmount) && op == OpDeposit:
		return "Deposit amount must be greater than zero."
	case errors.Is(err, account.ErrNonPositiveAmount):
		return "Withdrawal amount must be greater than zero."
	}
	for sentinel, msg := range rejectionMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return "Operation failed."
}
