package history

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/grindbot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// Totals appends an aggregate block after the sessions when set.
	Totals *domain.SessionRecord
}

const winBarWidth = 20

func renderView(records []domain.SessionRecord, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Grind Sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No archived sessions."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, s.section.Render(renderSession(record, opts, s)))
	}

	if opts.Totals != nil {
		lines = append(lines, s.section.Render(renderTotals(*opts.Totals, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSession(r domain.SessionRecord, opts RenderOptions, s styles) string {
	reason := s.meta.Render("stopped: " + reasonLabel(r.StopReason))
	if r.StopReason == domain.StopReasonBudget {
		reason = s.warning.Render("stopped: error budget exceeded")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.session.Render(sessionTitle(r, opts.Now)),
		s.detail.Render(fmt.Sprintf("cycles: %d  errors: %d", r.Cycles, r.Errors)),
		s.detail.Render(fmt.Sprintf("rewards: %d exp, %d currency", r.Experience, r.Currency)),
		battleLine(r, s),
		reason,
	)
}

func renderTotals(total domain.SessionRecord, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Totals"),
		s.detail.Render(fmt.Sprintf("cycles: %d  battles: %d  rewards: %d exp, %d currency",
			total.Cycles, total.Battles(), total.Experience, total.Currency)),
	)
}

func battleLine(r domain.SessionRecord, s styles) string {
	label := s.key.Render("battles:")
	if r.Battles() == 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.meta.Render("none"))
	}

	rate := winRate(r)
	rateStyle := lipgloss.NewStyle().Foreground(interpolateColor(rate, 0, 100))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		renderProgressBar(rate, winBarWidth, s),
		" ",
		rateStyle.Render(fmt.Sprintf("%3.0f%% won", rate)),
		" ",
		s.meta.Render(fmt.Sprintf("(%d/%d)", r.BattlesWon, r.Battles())),
	)
}

func winRate(r domain.SessionRecord) float64 {
	if r.Battles() == 0 {
		return 0
	}
	return float64(r.BattlesWon) * 100 / float64(r.Battles())
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func sessionTitle(r domain.SessionRecord, now time.Time) string {
	id := r.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s  %s, ran %s", id, formatEnded(r.EndedAt, now), formatDuration(r.Duration()))
}

func formatEnded(endedAt, now time.Time) string {
	if endedAt.IsZero() {
		return "ended at unknown time"
	}
	if now.IsZero() || endedAt.After(now) {
		return "ended " + endedAt.Format("15:04 on 02 Jan")
	}

	ago := now.Sub(endedAt)
	switch {
	case ago < time.Minute:
		return "ended just now"
	case ago < time.Hour:
		return fmt.Sprintf("ended %d min ago", int(ago.Minutes()))
	case ago < 2*time.Hour:
		return "ended 1 hour ago"
	case ago < 24*time.Hour:
		return fmt.Sprintf("ended %d hours ago", int(ago.Hours()))
	default:
		return "ended " + endedAt.Format("15:04 on 02 Jan")
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
}

func reasonLabel(reason domain.StopReason) string {
	switch reason {
	case domain.StopReasonOperator:
		return "by operator"
	case domain.StopReasonShutdown:
		return "process shutdown"
	case "":
		return "unknown"
	default:
		return string(reason)
	}
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}
