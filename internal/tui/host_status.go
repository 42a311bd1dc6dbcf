// internal/tui/host_status.go
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/localingo/internal/models"
)

// hostStatus represents what the startup check learned about the Ollama host.
type hostStatus string

const (
	// hostStatusChecking means the host check has not answered yet.
	hostStatusChecking hostStatus = "checking"
	// hostStatusReady means the configured model is installed on the host.
	hostStatusReady hostStatus = "ready"
	// hostStatusMissing means the host answered but the model is not installed.
	hostStatusMissing hostStatus = "missing"
	// hostStatusUnreachable means the host could not be queried.
	hostStatusUnreachable hostStatus = "unreachable"
)

// deriveHostStatus determines the badge state from the installed model list.
func deriveHostStatus(model string, installed []string, err error) hostStatus {
	if err != nil {
		return hostStatusUnreachable
	}
	for _, name := range installed {
		if models.Matches(name, model) {
			return hostStatusReady
		}
	}
	return hostStatusMissing
}

// formatHostIndicator returns a human-readable string for the given host status.
func formatHostIndicator(status hostStatus) string {
	switch status {
	case hostStatusReady:
		return "Ollama: ready"
	case hostStatusMissing:
		return "Ollama: model not installed"
	case hostStatusUnreachable:
		return "Ollama: unreachable"
	default:
		return "Ollama: checking…"
	}
}

// renderHostBadge returns a Lipgloss-styled badge string for the host status.
func renderHostBadge(status hostStatus) string {
	background := lipgloss.Color("229")
	switch status {
	case hostStatusReady:
		background = lipgloss.Color("114")
	case hostStatusMissing, hostStatusUnreachable:
		background = lipgloss.Color("203")
	}
	badgeStyle := lipgloss.NewStyle().Background(background).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
	return badgeStyle.Render(formatHostIndicator(status))
}
