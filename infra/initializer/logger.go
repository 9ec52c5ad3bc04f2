package initializer

import (
	"io"
	"log/slog"

	"github.com/amirasaad/atm/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

// setupLogger builds a slog.Logger backed by a charmbracelet/log handler
// writing to w. The session transcript owns stdout, so w is stderr in main.
func setupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	styles := log.DefaultStyles()
	levelStyle := func(label string, c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().SetString(label).Bold(true).Padding(0, 1).Foreground(c)
	}
	styles.Levels[log.ErrorLevel] = levelStyle("ERRO", errorTxtColor)
	styles.Levels[log.WarnLevel] = levelStyle("WARN", warnTxtColor)
	styles.Levels[log.InfoLevel] = levelStyle("INFO", infoTxtColor)
	styles.Levels[log.DebugLevel] = levelStyle("DEBU", debugTxtColor)

	styles.Keys["error"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["op"] = lipgloss.NewStyle().Foreground(infoTxtColor)
	styles.Keys["session_id"] = lipgloss.NewStyle().Foreground(debugTxtColor)
	styles.Keys["account_id"] = lipgloss.NewStyle().Foreground(debugTxtColor)

	formatter := log.TextFormatter
	if f, ok := formatters[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	return slog.New(logger)
}
