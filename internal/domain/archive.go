package domain

import "time"

type StopReason string

const (
	StopReasonOperator StopReason = "operator"
	StopReasonBudget   StopReason = "budget"
	StopReasonShutdown StopReason = "shutdown"
)

// SessionRecord summarizes one finished grinding run. Counters are deltas for
// the run, independent of the resettable session totals.
type SessionRecord struct {
	ID          string     `json:"id" yaml:"id"`
	StartedAt   time.Time  `json:"started_at" yaml:"started_at"`
	EndedAt     time.Time  `json:"ended_at" yaml:"ended_at"`
	Cycles      int        `json:"cycles" yaml:"cycles"`
	BattlesWon  int        `json:"battles_won" yaml:"battles_won"`
	BattlesLost int        `json:"battles_lost" yaml:"battles_lost"`
	Experience  int        `json:"experience" yaml:"experience"`
	Currency    int        `json:"currency" yaml:"currency"`
	Errors      int        `json:"errors" yaml:"errors"`
	StopReason  StopReason `json:"stop_reason" yaml:"stop_reason"`
}

func (r SessionRecord) Battles() int {
	return r.BattlesWon + r.BattlesLost
}

func (r SessionRecord) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
