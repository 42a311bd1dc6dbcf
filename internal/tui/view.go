// internal/tui/view.go
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/localingo/internal/pipeline"
	"github.com/mwiater/localingo/internal/util"
)

var (
	headerStyle      = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	labelStyle       = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("255")).Padding(0, 1)
	paneTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	focusedPane      = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("135")).Padding(0, 1)
	normalPane       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	placeholderStyle = lipgloss.NewStyle().Faint(true)
	errorTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	selectedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	alertStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Padding(0, 1)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	metricsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// maxPaneWidth keeps lines readable on very wide terminals.
const maxPaneWidth = 120

const helpText = "ctrl+s run · tab focus · ↑/↓ pick variant · ctrl+y copy · ctrl+x clear · ctrl+q quit"

// View renders the whole screen.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	innerWidth := util.Min(util.Max(m.width-4, 10), maxPaneWidth)
	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("localingo"),
		headerStyle.MarginLeft(1).Render("Model: "+m.config.ModelName()),
		renderHostBadge(m.host),
	))
	b.WriteString("\n")

	b.WriteString(m.pane(focusContext, "Context", m.contextArea.View(), innerWidth))
	b.WriteString("\n")
	b.WriteString(m.pane(focusOriginal, "English", m.originalArea.View(), innerWidth))
	b.WriteString("\n")
	b.WriteString(m.pane(focusCorrected, "Corrected", renderRegion(m.corrected, innerWidth), innerWidth))
	b.WriteString("\n")
	b.WriteString(m.pane(focusJapanese, "日本語", renderRegion(m.japanese, innerWidth), innerWidth))
	b.WriteString("\n")
	b.WriteString(m.pane(focusVariants, "Variants", m.renderVariants(innerWidth), innerWidth))
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(util.TruncateToWidth(helpText, m.width)))

	if m.config.Debug && m.metrics != nil {
		b.WriteString("\n")
		b.WriteString(metricsStyle.Render(util.TruncateToWidth("  >>> "+m.metrics.Snapshot().Summary(), m.width)))
	}

	return b.String()
}

func (m *model) pane(area focusArea, title, body string, width int) string {
	style := normalPane
	if m.focus == area {
		style = focusedPane
	}
	return style.Width(width).Render(paneTitleStyle.Render(title) + "\n" + body)
}

// renderRegion renders a single-value output region wrapped to width.
func renderRegion(r region, width int) string {
	switch r.kind {
	case regionGenerating:
		return placeholderStyle.Render(pipeline.PlaceholderGen)
	case regionError:
		return errorTextStyle.Render(pipeline.PlaceholderErr)
	case regionReady:
		return util.WrapToWidth(r.text, width-2)
	default:
		return placeholderStyle.Render("—")
	}
}

func (m *model) renderVariants(width int) string {
	if m.variants.kind != regionReady {
		return renderRegion(m.variants, width)
	}
	if len(m.candidates) == 0 {
		return placeholderStyle.Render(pipeline.PlaceholderNone)
	}
	lines := make([]string, 0, len(m.candidates))
	for i, c := range m.candidates {
		line := util.WrapToWidth(fmt.Sprintf("%d. %s", i+1, c), width-4)
		if m.focus == focusVariants && i == m.selected {
			lines = append(lines, selectedStyle.Render("▸ "+line))
			continue
		}
		lines = append(lines, "  "+line)
	}
	return strings.Join(lines, "\n")
}

func (m *model) statusLine() string {
	text := util.TruncateToWidth(m.status, util.Max(m.width-4, 1))
	var line string
	if m.statusTone == pipeline.ToneAlert {
		line = alertStyle.Render(text)
	} else {
		line = statusStyle.Render(text)
	}
	if m.running {
		line = m.spinner.View() + " " + line + statusStyle.Render(" ["+m.state.String()+"]")
	}
	return line
}
