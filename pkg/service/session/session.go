// Package session implements the ATM account session: the five account
// operations offered by the menu and the PIN verification step they share.
//
// Every operation runs to completion or stops at its first failure. A failure
// is reported to the user where it is detected and returned as a *Rejection;
// the session state is left exactly as it was. Only input failures (end of
// input, cancellation) are returned unwrapped, and they end the session.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/atm/pkg/config"
	"github.com/amirasaad/atm/pkg/domain"
	"github.com/amirasaad/atm/pkg/domain/account"
	"github.com/amirasaad/atm/pkg/domain/account/events"
	"github.com/amirasaad/atm/pkg/eventbus"
	"github.com/google/uuid"
)

// Prompter is the console the session talks through.
type Prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
	PromptSecret(ctx context.Context, label string) (string, error)
	Println(msg string)
	Success(msg string)
	Failure(msg string)
}

// Rejection is an operation refused by the account rules.
// The user has already been told why when it is returned.
type Rejection struct {
	Op  Operation
	Err error
}

func (r *Rejection) Error() string { return fmt.Sprintf("%s: %v", r.Op, r.Err) }

func (r *Rejection) Unwrap() error { return r.Err }

// Service is one ATM session over a single in-memory account.
type Service struct {
	id       uuid.UUID
	account  *account.Account
	prompter Prompter
	eventBus eventbus.Bus
	logger   *slog.Logger
}

// NewService starts a session with a fresh account: no PIN, zero balance.
func NewService(prompter Prompter, deps config.Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	acc := account.New()
	id := uuid.New()
	return &Service{
		id:       id,
		account:  acc,
		prompter: prompter,
		eventBus: deps.EventBus,
		logger:   logger.With("session_id", id, "account_id", acc.ID),
	}
}

// ID returns the session identifier used in logs and events.
func (s *Service) ID() uuid.UUID { return s.id }

// Account returns the session account.
func (s *Service) Account() *account.Account { return s.account }

// GeneratePin sets the first PIN after a format check and a confirmation prompt.
func (s *Service) GeneratePin(ctx context.Context) error {
	if s.account.HasPin() {
		return s.reject(ctx, OpGeneratePin, account.ErrPinAlreadySet)
	}
	candidate, confirm, err := s.readNewPin(ctx, OpGeneratePin, promptConfirmPin)
	if err != nil {
		return err
	}
	if err := s.account.GeneratePin(candidate, confirm); err != nil {
		return s.reject(ctx, OpGeneratePin, err)
	}
	s.prompter.Success(msgPinSet)
	s.emit(ctx, events.PinGenerated{Meta: s.meta()})
	return nil
}

// ChangePin replaces the PIN once the current one has been verified.
func (s *Service) ChangePin(ctx context.Context) error {
	current, err := s.verify(ctx, OpChangePin)
	if err != nil {
		return err
	}
	candidate, confirm, err := s.readNewPin(ctx, OpChangePin, promptConfirmNewPin)
	if err != nil {
		return err
	}
	if err := s.account.ChangePin(current, candidate, confirm); err != nil {
		return s.reject(ctx, OpChangePin, err)
	}
	s.prompter.Success(msgPinChanged)
	s.emit(ctx, events.PinChanged{Meta: s.meta()})
	return nil
}

// CheckBalance shows the balance once the PIN has been verified.
func (s *Service) CheckBalance(ctx context.Context) error {
	if _, err := s.verify(ctx, OpCheckBalance); err != nil {
		return err
	}
	balance := s.account.Balance()
	s.prompter.Println(fmt.Sprintf(msgBalance, balance))
	s.emit(ctx, events.BalanceChecked{Meta: s.meta(), Balance: balance})
	return nil
}

// Withdraw reads an amount and removes it from the balance.
func (s *Service) Withdraw(ctx context.Context) error {
	amount, err := s.readAmount(ctx, OpWithdraw, promptWithdraw, account.ErrInsufficientFunds)
	if err != nil {
		return err
	}
	if err := s.account.Withdraw(amount); err != nil {
		return s.reject(ctx, OpWithdraw, err)
	}
	balance := s.account.Balance()
	s.prompter.Success(fmt.Sprintf(msgWithdrawn, amount, balance))
	s.emit(ctx, events.Withdrawn{Meta: s.meta(), Amount: amount, Balance: balance})
	return nil
}

// Deposit reads an amount and adds it to the balance.
func (s *Service) Deposit(ctx context.Context) error {
	amount, err := s.readAmount(ctx, OpDeposit, promptDeposit, account.ErrAmountExceedsMaxSafeInt)
	if err != nil {
		return err
	}
	if err := s.account.Deposit(amount); err != nil {
		return s.reject(ctx, OpDeposit, err)
	}
	balance := s.account.Balance()
	s.prompter.Success(fmt.Sprintf(msgDeposited, amount, balance))
	s.emit(ctx, events.Deposited{Meta: s.meta(), Amount: amount, Balance: balance})
	return nil
}

// verify is the PIN check shared by every gated operation. It returns the
// PIN that was accepted. Without a stored PIN it fails before prompting.
func (s *Service) verify(ctx context.Context, op Operation) (string, error) {
	if !s.account.HasPin() {
		return "", s.refuse(ctx, op, account.ErrNoPinSet)
	}
	pin, err := s.prompter.PromptSecret(ctx, promptCurrentPin)
	if err != nil {
		return "", err
	}
	if err := s.account.VerifyPin(pin); err != nil {
		return "", s.refuse(ctx, op, err)
	}
	return pin, nil
}

// readNewPin prompts for a candidate PIN, rejects a bad format before asking
// for the confirmation, and returns both entries.
func (s *Service) readNewPin(ctx context.Context, op Operation, confirmLabel string) (string, string, error) {
	candidate, err := s.prompter.PromptSecret(ctx, promptNewPin)
	if err != nil {
		return "", "", err
	}
	if err := account.ValidatePin(candidate); err != nil {
		return "", "", s.reject(ctx, op, err)
	}
	confirm, err := s.prompter.PromptSecret(ctx, confirmLabel)
	if err != nil {
		return "", "", err
	}
	return candidate, confirm, nil
}

// readAmount verifies the PIN, then reads and parses the amount. An amount
// too large to represent is refused with tooLarge, the error op would give
// for it after the sign and multiple checks.
func (s *Service) readAmount(ctx context.Context, op Operation, label string, tooLarge error) (int64, error) {
	if _, err := s.verify(ctx, op); err != nil {
		return 0, err
	}
	text, err := s.prompter.Prompt(ctx, label)
	if err != nil {
		return 0, err
	}
	amount, err := account.ParseAmount(text)
	if errors.Is(err, account.ErrAmountOutOfRange) {
		err = fmt.Errorf("%w: %w", tooLarge, err)
	}
	if err != nil {
		return 0, s.reject(ctx, op, err)
	}
	return amount, nil
}

// refuse rejects a failed PIN check and records it on the bus.
func (s *Service) refuse(ctx context.Context, op Operation, err error) error {
	s.emit(ctx, events.PinVerificationFailed{Meta: s.meta(), Operation: string(op), Reason: err.Error()})
	return s.reject(ctx, op, err)
}

func (s *Service) reject(ctx context.Context, op Operation, err error) error {
	s.prompter.Failure(rejectionMessage(op, err))
	s.logger.DebugContext(ctx, "operation rejected", "op", op, "error", err)
	return &Rejection{Op: op, Err: err}
}

func (s *Service) meta() events.Meta {
	return events.NewMeta(s.account.ID, s.id)
}

func (s *Service) emit(ctx context.Context, e domain.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(ctx, e); err != nil {
		s.logger.WarnContext(ctx, "failed to emit event", "event", e.Type(), "error", err)
	}
}
