package ui_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/amirasaad/atm/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptReadsOneLinePerCall(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	c := ui.New(strings.NewReader("1\r\n 500 \nlast"), &out)
	ctx := context.Background()

	first, err := c.Prompt(ctx, "Select an option: ")
	require.NoError(t, err)
	assert.Equal(t, "1", first)

	second, err := c.Prompt(ctx, "Amount: ")
	require.NoError(t, err)
	assert.Equal(t, " 500 ", second, "only the line terminator is stripped")

	third, err := c.Prompt(ctx, "Again: ")
	require.NoError(t, err)
	assert.Equal(t, "last", third, "a final unterminated line is still returned")

	_, err = c.Prompt(ctx, "Gone: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Select an option: Amount: Again: Gone: ", out.String())
}

func TestPromptHonoursCancelledContext(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	c := ui.New(strings.NewReader("1\n"), &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Prompt(ctx, "Select an option: ")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestPromptSecretFallsBackOffTerminal(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	c := ui.New(strings.NewReader("1234\n"), &out, ui.WithMaskedInput(true))

	pin, err := c.PromptSecret(context.Background(), "Enter your current PIN: ")
	require.NoError(t, err)
	assert.Equal(t, "1234", pin)
	assert.Equal(t, "Enter your current PIN: ", out.String())
}

func TestOutputIsPlainOffTerminal(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	c := ui.New(strings.NewReader(""), &out, ui.WithColor(true))

	c.Title("--- ATM Menu ---")
	c.Success("PIN set successfully!")
	c.Failure("Incorrect PIN.")
	c.Println("6. Exit")

	assert.Equal(t, "--- ATM Menu ---\nPIN set successfully!\nIncorrect PIN.\n6. Exit\n", out.String())
}
