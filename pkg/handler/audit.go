// Package handler contains the event handlers wired onto the session bus.
package handler

import (
	"context"
	"log/slog"

	"github.com/amirasaad/atm/pkg/domain"
	"github.com/amirasaad/atm/pkg/domain/account/events"
	"github.com/amirasaad/atm/pkg/eventbus"
)

// AuditLog returns a handler that writes one structured log line per session
// event. Refused PIN checks are logged at warn level, everything else at info.
func AuditLog(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e domain.Event) error {
		switch ev := e.(type) {
		case events.PinGenerated:
			logger.InfoContext(ctx, "pin generated", metaAttrs(ev.Meta, ev.Type())...)
		case events.PinChanged:
			logger.InfoContext(ctx, "pin changed", metaAttrs(ev.Meta, ev.Type())...)
		case events.PinVerificationFailed:
			attrs := append(metaAttrs(ev.Meta, ev.Type()), "op", ev.Operation, "reason", ev.Reason)
			logger.WarnContext(ctx, "pin verification failed", attrs...)
		case events.BalanceChecked:
			attrs := append(metaAttrs(ev.Meta, ev.Type()), "balance", ev.Balance)
			logger.InfoContext(ctx, "balance checked", attrs...)
		case events.Deposited:
			attrs := append(metaAttrs(ev.Meta, ev.Type()), "amount", ev.Amount, "balance", ev.Balance)
			logger.InfoContext(ctx, "deposit completed", attrs...)
		case events.Withdrawn:
			attrs := append(metaAttrs(ev.Meta, ev.Type()), "amount", ev.Amount, "balance", ev.Balance)
			logger.InfoContext(ctx, "withdrawal completed", attrs...)
		default:
			logger.DebugContext(ctx, "unhandled event", "event", e.Type())
		}
		return nil
	}
}

// RegisterAuditLog subscribes AuditLog to every session event type.
func RegisterAuditLog(bus eventbus.Bus, logger *slog.Logger) {
	h := AuditLog(logger.With("component", "audit"))
	for _, t := range []string{
		events.PinGeneratedType,
		events.PinChangedType,
		events.PinVerificationFailedType,
		events.BalanceCheckedType,
		events.DepositedType,
		events.WithdrawnType,
	} {
		bus.Register(t, h)
	}
}

func metaAttrs(m events.Meta, eventType string) []any {
	return []any{
		"event", eventType,
		"event_id", m.EventID,
		"account_id", m.AccountID,
		"session_id", m.SessionID,
	}
}
