package governance

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/intelliflow-os/intelliflow-core/contracts"
	"github.com/intelliflow-os/intelliflow-core/helpers"
)

// Panel rendering styles. Adaptive colors keep the output readable on
// both light and dark terminals.
var (
	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleCaption = lipgloss.NewStyle().Faint(true)
	styleEntry   = lipgloss.NewStyle().Bold(true)
	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#66bb6a"})
	styleFailure = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ef5350"})
)

const defaultPanelTitle = "Governance Log"

// Panel renders governance log entries as a styled terminal block,
// newest first. It is one replaceable presentation of the log; the
// adapter itself has no display dependency on it.
type Panel struct {
	// Title is shown above the entries. Empty means "Governance Log".
	Title string

	// MaxEntries caps how many entries are shown; 0 means all.
	MaxEntries int

	// DetailsMaxLength truncates each entry's details line; 0 means 100.
	DetailsMaxLength int
}

// Render returns the panel for a newest-first entry view, such as the
// one produced by Log.Snapshot.
func (p Panel) Render(entries []contracts.GovernanceLogEntry) string {
	title := p.Title
	if title == "" {
		title = defaultPanelTitle
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(styleCaption.Render("No governance events recorded yet."))
		return b.String()
	}

	shown := entries
	if p.MaxEntries > 0 && len(shown) > p.MaxEntries {
		shown = shown[:p.MaxEntries]
	}

	caption := fmt.Sprintf("Showing %d event(s)", len(shown))
	if len(shown) < len(entries) {
		caption = fmt.Sprintf("Showing %d of %d event(s)", len(shown), len(entries))
	}
	b.WriteString(styleCaption.Render(caption))
	b.WriteString("\n")

	for _, entry := range shown {
		b.WriteString("\n")
		b.WriteString(p.renderEntry(entry))
	}
	return b.String()
}

func (p Panel) renderEntry(entry contracts.GovernanceLogEntry) string {
	status := styleSuccess.Render("✅")
	if !entry.Success {
		status = styleFailure.Render("❌")
	}

	line := fmt.Sprintf("%s %s  %s · %s",
		status,
		styleCaption.Render(helpers.FormatTimestampShort(entry.Timestamp)),
		styleEntry.Render(entry.Component),
		entry.Action)

	if entry.Details == "" {
		return line + "\n"
	}

	maxLen := p.DetailsMaxLength
	if maxLen <= 0 {
		maxLen = 100
	}
	details := helpers.TruncateText(entry.Details, maxLen)
	return line + "\n" + styleCaption.Render("   ↳ "+details) + "\n"
}
