package handler_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	infra_eventbus "github.com/amirasaad/atm/infra/eventbus"
	"github.com/amirasaad/atm/pkg/domain/account/events"
	"github.com/amirasaad/atm/pkg/handler"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogWritesOneLinePerEvent(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	bus := infra_eventbus.NewWithMemory(logger)
	handler.RegisterAuditLog(bus, logger)

	meta := events.NewMeta(uuid.New(), uuid.New())
	ctx := context.Background()
	require.NoError(t, bus.Emit(ctx, events.Deposited{Meta: meta, Amount: 500, Balance: 500}))
	require.NoError(t, bus.Emit(ctx, events.PinVerificationFailed{Meta: meta, Operation: "withdraw", Reason: "incorrect pin"}))

	out := logs.String()
	assert.Contains(t, out, "level=INFO msg=\"deposit completed\"")
	assert.Contains(t, out, "amount=500")
	assert.Contains(t, out, "session_id="+meta.SessionID.String())
	assert.Contains(t, out, "level=WARN msg=\"pin verification failed\"")
	assert.Contains(t, out, "reason=\"incorrect pin\"")
	assert.Contains(t, out, "component=audit")
}

func TestAuditLogIgnoresUnknownEvents(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := handler.AuditLog(logger)(context.Background(), unknownEvent{})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "unhandled event")
}

type unknownEvent struct{}

func (unknownEvent) Type() string { return "Unknown" }
