package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pipecheck/pipecheck/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	passTagStyle  = lipgloss.NewStyle().Foreground(success).Bold(true)
	failTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func glyph(o domain.Outcome) string {
	switch o {
	case domain.OutcomePass:
		return passStyle.Render("✓")
	case domain.OutcomeWarn:
		return warnStyle.Render("⚠")
	default:
		return failStyle.Render("✗")
	}
}

func verdictStyle(v domain.Verdict) lipgloss.Style {
	switch {
	case v.Fail > 0:
		return failTagStyle
	case v.Warn > 0:
		return warnTagStyle
	default:
		return passTagStyle
	}
}

// RenderRun renders the full run record followed by the totals summary and
// verdict line. Purely a projection; counts come from the verdict as-is.
func RenderRun(run *domain.Run, verdict domain.Verdict) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("pipecheck") + "  " +
		dimStyle.Render("update pipeline preflight") + "\n\n")

	for _, check := range run.Checks {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			titleStyle.Render(check.Title),
			dimStyle.Render("("+check.ID+")"),
		))
		for _, a := range check.Assertions {
			b.WriteString(fmt.Sprintf("    %s %s", glyph(a.Outcome), a.Description))
			if a.Detail != "" && a.Outcome != domain.OutcomePass {
				b.WriteString("  " + dimStyle.Render(a.Detail))
			} else if a.Detail != "" {
				b.WriteString("  " + faintStyle.Render(a.Detail))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + separatorLine + "\n")
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		passTagStyle.Render(fmt.Sprintf("%d passed", verdict.Pass)),
		warnTagStyle.Render(fmt.Sprintf("%d warnings", verdict.Warn)),
		failTagStyle.Render(fmt.Sprintf("%d failed", verdict.Fail)),
	))
	b.WriteString("  " + verdictStyle(verdict).Render(verdict.Label()) + "\n")

	return b.String()
}
