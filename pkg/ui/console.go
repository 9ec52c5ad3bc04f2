// Package ui is the text console the ATM talks through: one line of input per
// prompt, plain text lines out. Colors and PIN masking only apply when the
// underlying streams are terminals, so redirected sessions stay plain text.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/term"
)

type fileDescriptor interface {
	Fd() uintptr
}

// Console reads prompts from in and writes messages to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	inFd    int
	inTerm  bool
	maskPin bool
	color   bool

	title   lipgloss.Style
	success *color.Color
	failure *color.Color
}

// Option customizes a Console.
type Option func(*Console)

// WithMaskedInput toggles hidden echo for secret prompts. It only has an
// effect when the input is a terminal.
func WithMaskedInput(enabled bool) Option {
	return func(c *Console) { c.maskPin = enabled }
}

// WithColor toggles colored output. It only has an effect when the output is a terminal.
func WithColor(enabled bool) Option {
	return func(c *Console) { c.color = enabled && isTerminal(c.out) }
}

// New creates a Console. Masking and color default to on and are
// downgraded automatically for non-terminal streams.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		maskPin: true,
		color:   isTerminal(out),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	if f, ok := in.(fileDescriptor); ok {
		c.inFd = int(f.Fd())
		c.inTerm = term.IsTerminal(c.inFd)
	}
	c.title = lipgloss.NewRenderer(out).NewStyle().Bold(true)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Prompt writes label and returns the next input line without its terminator.
// A final line without a newline is returned as is; io.EOF is returned only
// when no input is left.
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// PromptSecret is Prompt with echo disabled when reading from a terminal.
// It falls back to Prompt when typed-ahead input is already buffered.
func (c *Console) PromptSecret(ctx context.Context, label string) (string, error) {
	if !c.maskPin || !c.inTerm || c.in.Buffered() > 0 {
		return c.Prompt(ctx, label)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, label)
	secret, err := term.ReadPassword(c.inFd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(secret), nil
}

// Println writes msg as a plain line.
func (c *Console) Println(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Title writes msg as a bold heading line.
func (c *Console) Title(msg string) {
	if c.color {
		msg = c.title.Render(msg)
	}
	fmt.Fprintln(c.out, msg)
}

// Success writes msg as a completed-operation line.
func (c *Console) Success(msg string) {
	if c.color {
		c.success.Fprintln(c.out, msg)
		return
	}
	fmt.Fprintln(c.out, msg)
}

// Failure writes msg as a rejected-operation line.
func (c *Console) Failure(msg string) {
	if c.color {
		c.failure.Fprintln(c.out, msg)
		return
	}
	fmt.Fprintln(c.out, msg)
}
