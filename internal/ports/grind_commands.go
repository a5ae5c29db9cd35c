package ports

import "github.com/bnema/grindbot/internal/domain"

// GrindCommands is the operator-facing surface of a grind session.
type GrindCommands interface {
	Toggle() (domain.SessionSummary, error)
	Pause() (domain.SessionSummary, error)
	Resume() (domain.SessionSummary, error)
	Status() domain.SessionSummary
	Reset() (domain.SessionSummary, error)
}
