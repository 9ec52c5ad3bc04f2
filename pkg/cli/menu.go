// Package cli runs the interactive ATM menu.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/amirasaad/atm/pkg/service/session"
)

// ErrInvalidMenuChoice is logged when the selection matches no menu entry.
var ErrInvalidMenuChoice = errors.New("invalid menu choice")

const (
	menuTitle    = "--- ATM Menu ---"
	promptSelect = "Select an option: "
	choiceExit   = "6"

	msgInvalidChoice = "Invalid option. Please try again."
	msgFarewell      = "Exiting... Thank you for using the ATM."
)

var menuItems = []string{
	"1. Generate PIN",
	"2. Change PIN",
	"3. Check Balance",
	"4. Withdraw",
	"5. Deposit",
	"6. Exit",
}

// Terminal is the console the menu draws on.
type Terminal interface {
	session.Prompter
	Title(msg string)
}

// Menu dispatches menu selections to the session operations.
type Menu struct {
	term    Terminal
	actions map[string]func(context.Context) error
	logger  *slog.Logger
}

// NewMenu builds the dispatch table for svc.
func NewMenu(term Terminal, svc *session.Service, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{
		term: term,
		actions: map[string]func(context.Context) error{
			"1": svc.GeneratePin,
			"2": svc.ChangePin,
			"3": svc.CheckBalance,
			"4": svc.Withdraw,
			"5": svc.Deposit,
		},
		logger: logger.With("session_id", svc.ID()),
	}
}

// Run shows the menu until the user exits. Rejected operations return to the
// menu. Running out of input ends the session normally; any other input
// failure is returned.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.InfoContext(ctx, "session started")
	for {
		m.render()
		choice, err := m.term.Prompt(ctx, promptSelect)
		if err != nil {
			return m.stop(ctx, err)
		}
		if choice == choiceExit {
			m.term.Println(msgFarewell)
			m.logger.InfoContext(ctx, "session ended")
			return nil
		}
		action, ok := m.actions[choice]
		if !ok {
			m.term.Println(msgInvalidChoice)
			m.logger.DebugContext(ctx, "menu selection rejected", "error", ErrInvalidMenuChoice)
			continue
		}
		if err := action(ctx); err != nil {
			var rejection *session.Rejection
			if errors.As(err, &rejection) {
				continue
			}
			return m.stop(ctx, err)
		}
	}
}

func (m *Menu) render() {
	m.term.Println("")
	m.term.Title(menuTitle)
	for _, item := range menuItems {
		m.term.Println(item)
	}
}

func (m *Menu) stop(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		m.logger.InfoContext(ctx, "input closed, session ended")
		return nil
	}
	m.logger.ErrorContext(ctx, "session aborted", "error", err)
	return err
}
