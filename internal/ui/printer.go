// Package ui provides terminal output and prompting for the CLI.
// Color mode is an explicit value carried by the Printer rather than
// ambient global state, so output is deterministic under test.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles for categorized terminal output.
var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	stylePrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"})
	styleBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

// Printer writes categorized status messages. Every message carries a
// distinguishable marker; color is applied only when enabled.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

// Out returns the underlying writer.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Color reports whether color mode is enabled.
func (p *Printer) Color() bool {
	return p.color
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Info prints an informational message.
func (p *Printer) Infof(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, p.render(styleMuted, fmt.Sprintf(format, args...)))
}

// Successf prints a success message with a check marker.
func (p *Printer) Successf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.render(styleSuccess, "✓"), fmt.Sprintf(format, args...))
}

// Warnf prints a warning message with a warning marker.
func (p *Printer) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.render(styleWarn, "! Warning:"), fmt.Sprintf(format, args...))
}

// Errorf prints an error message with an error marker.
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.render(styleError, "✗ Error:"), fmt.Sprintf(format, args...))
}

// SuccessCard renders a bordered summary card with a title line and
// optional detail lines.
func (p *Printer) SuccessCard(title string, details ...string) string {
	content := p.render(stylePrimary, title)
	for _, d := range details {
		content += "\n" + d
	}
	if !p.color {
		return content
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleBorder.GetForeground()).
		Padding(0, 2)
	return box.Render(content)
}
