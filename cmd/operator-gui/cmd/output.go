package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/operator-gui/internal/adapters/web"
	"github.com/corey/operator-gui/internal/app"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

// formatHealth formats a HealthResult for terminal display.
func formatHealth(h *web.HealthResult) string {
	path := h.CommandPath
	if path == "" {
		path = fmt.Sprintf("%snot found on PATH%s", colorYellow, colorReset)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%soperator-gui%s\n", colorBold, colorReset))
	sb.WriteString(fmt.Sprintf("  Status:    %s%s%s\n", colorGreen, h.Status, colorReset))
	sb.WriteString(fmt.Sprintf("  Uptime:    %s\n", h.Uptime))
	sb.WriteString(fmt.Sprintf("  In flight: %d\n", h.Inflight))
	sb.WriteString(fmt.Sprintf("  Command:   %s (%s)\n", h.Command, path))
	return sb.String()
}

// formatConfig formats the resolved configuration for terminal display.
func formatConfig(cfg app.Config, running bool) string {
	status := fmt.Sprintf("%s✗ not running%s", colorYellow, colorReset)
	if running {
		status = fmt.Sprintf("%s✓ running%s", colorGreen, colorReset)
	}
	page := cfg.PagePath
	if !app.PageExists(page) {
		page += fmt.Sprintf(" %s(missing)%s", colorYellow, colorReset)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%soperator-gui config%s\n", colorBold, colorReset))
	sb.WriteString(fmt.Sprintf("  Command:   %s\n", cfg.Command))
	sb.WriteString(fmt.Sprintf("  Page:      %s\n", page))
	sb.WriteString(fmt.Sprintf("  Log level: %s\n", cfg.LogLevel))
	sb.WriteString(fmt.Sprintf("  Port:      %d\n", cfg.Port))
	sb.WriteString(fmt.Sprintf("  Server:    %s\n", status))
	return sb.String()
}
