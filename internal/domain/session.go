package domain

import "fmt"

type SessionState int

const (
	StateIdle SessionState = iota
	StateRunning
	StatePaused
	StateShuttingDown
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateShuttingDown:
		return "shutting_down"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Action string

const (
	ActionNone    Action = "none"
	ActionExplore Action = "explore"
	ActionBattle  Action = "battle"
)

// Session is the live grinding session. It is owned by a single controller and
// never persisted.
type Session struct {
	State             SessionState
	CycleCount        int
	TotalExperience   int
	TotalCurrency     int
	LastAction        Action
	ConsecutiveErrors int
}

func NewSession() Session {
	return Session{State: StateIdle, LastAction: ActionNone}
}

func (s Session) IsActive() bool {
	return s.State == StateRunning || s.State == StatePaused
}

func (s Session) IsPaused() bool {
	return s.State == StatePaused
}

func (s *Session) ResetCounters() {
	s.CycleCount = 0
	s.TotalExperience = 0
	s.TotalCurrency = 0
	s.LastAction = ActionNone
}

func (s Session) Summary() SessionSummary {
	return SessionSummary{
		CycleCount:      s.CycleCount,
		TotalExperience: s.TotalExperience,
		TotalCurrency:   s.TotalCurrency,
		LastAction:      s.LastAction,
		IsActive:        s.IsActive(),
		IsPaused:        s.IsPaused(),
	}
}

type StateLabel string

const (
	LabelGrinding StateLabel = "GRINDING"
	LabelPaused   StateLabel = "PAUSED"
	LabelIdle     StateLabel = "IDLE"
)

type SessionSummary struct {
	CycleCount      int    `json:"cycle_count" yaml:"cycle_count"`
	TotalExperience int    `json:"total_experience" yaml:"total_experience"`
	TotalCurrency   int    `json:"total_currency" yaml:"total_currency"`
	LastAction      Action `json:"last_action" yaml:"last_action"`
	IsActive        bool   `json:"is_active" yaml:"is_active"`
	IsPaused        bool   `json:"is_paused" yaml:"is_paused"`
}

func (s SessionSummary) Label() StateLabel {
	switch {
	case s.IsPaused:
		return LabelPaused
	case s.IsActive:
		return LabelGrinding
	default:
		return LabelIdle
	}
}
