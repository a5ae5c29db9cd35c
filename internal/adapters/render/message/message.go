// Package message formats bot replies and notifications as plain text.
package message

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/grindbot/internal/domain"
)

const helpText = `Available commands:
/grind - start or stop grinding
/status - show session statistics
/pause - pause the running session
/resume - resume a paused session
/reset - zero the statistics (idle only)
/help - show this list`

func Help() string {
	return helpText
}

func Welcome() string {
	return "🤖 Auto-grind bot ready.\n\n" + helpText
}

func Onboarding() string {
	return "👋 You are registered as the operator. Use /grind to start."
}

func Unauthorized() string {
	return "⛔ Access denied."
}

func UnknownCommand() string {
	return "ℹ️ Use /help for the list of commands."
}

func Summary(s domain.SessionSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cycles: %d\n", s.CycleCount)
	fmt.Fprintf(&b, "Experience: %d\n", s.TotalExperience)
	fmt.Fprintf(&b, "Currency: %d\n", s.TotalCurrency)
	fmt.Fprintf(&b, "Last action: %s", s.LastAction)
	return b.String()
}

func Status(s domain.SessionSummary) string {
	return fmt.Sprintf("%s %s\n\n%s", labelIcon(s.Label()), s.Label(), Summary(s))
}

func Toggled(s domain.SessionSummary) string {
	if s.IsActive {
		return "▶️ Grinding started.\n\n" + Summary(s)
	}
	return "⏹ Stopping after the current cycle.\n\n" + Summary(s)
}

func Paused() string {
	return "⏸ Grinding paused."
}

func Resumed() string {
	return "▶️ Grinding resumed."
}

func Reset() string {
	return "🧹 Statistics reset."
}

// Error renders a command failure. State errors are informational.
func Error(err error) string {
	var stateErr *domain.StateError
	if errors.As(err, &stateErr) {
		return "ℹ️ " + capitalize(stateErr.Reason) + "."
	}
	return "❌ " + err.Error()
}

func Notification(n domain.Notification) string {
	switch n.Kind {
	case domain.NotificationStarted:
		return "▶️ Grind session started."
	case domain.NotificationStopped:
		return "⏹ Grind session stopped.\n\n" + Summary(n.Summary)
	case domain.NotificationBattleWon:
		if n.Reward == nil {
			return "⚔️ Battle won."
		}
		return fmt.Sprintf("⚔️ Battle won: +%d exp, +%d currency\nTotal: %d exp, %d currency",
			n.Reward.Experience, n.Reward.Currency, n.Summary.TotalExperience, n.Summary.TotalCurrency)
	case domain.NotificationBattleLost:
		return fmt.Sprintf("💀 Battle lost (errors in a row: %d)", n.ConsecutiveErrors)
	case domain.NotificationBudgetExceeded:
		return fmt.Sprintf("🚨 Too many errors (%d, limit %d), grinding stopped.\n\n%s",
			n.ConsecutiveErrors, n.MaxRetries, Summary(n.Summary))
	case domain.NotificationOnboarding:
		return Onboarding()
	default:
		return string(n.Kind)
	}
}

func labelIcon(label domain.StateLabel) string {
	switch label {
	case domain.LabelGrinding:
		return "🟢"
	case domain.LabelPaused:
		return "🟡"
	default:
		return "⚪"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
