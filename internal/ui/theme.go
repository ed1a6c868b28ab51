// Package ui holds the terminal presentation helpers of the guard:
// color theme, TTY detection and the scan spinner.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles used by the CLI output.
type Theme struct {
	NoColor bool

	Primary lipgloss.Style
	Border  lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme creates the default adaptive-color theme. With noColor set,
// every style renders as plain text.
func NewTheme(noColor bool) *Theme {
	t := &Theme{NoColor: noColor}
	if noColor {
		plain := lipgloss.NewStyle()
		t.Primary, t.Border, t.Success, t.Failure, t.Muted = plain, plain, plain, plain, plain
		return t
	}
	t.Primary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C4453C", Dark: "#DA6A56"})
	t.Border = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	t.Failure = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	return t
}

// Card renders content inside a rounded border box with a styled title.
func (t *Theme) Card(title, content string) string {
	titleLine := t.Primary.Bold(true).Render(title)
	body := titleLine + "\n\n" + content
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border.GetForeground()).
		Padding(0, 2).
		Render(body)
}
