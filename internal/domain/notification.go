package domain

type NotificationKind string

const (
	NotificationStarted        NotificationKind = "started"
	NotificationStopped        NotificationKind = "stopped"
	NotificationBattleWon      NotificationKind = "battle_won"
	NotificationBattleLost     NotificationKind = "battle_lost"
	NotificationBudgetExceeded NotificationKind = "budget_exceeded"
	NotificationOnboarding     NotificationKind = "onboarding"
)

type Notification struct {
	Kind    NotificationKind
	Summary SessionSummary
	// Reward is set for NotificationBattleWon only.
	Reward            *BattleReward
	ConsecutiveErrors int
	MaxRetries        int
}

// Important reports whether the operator should be alerted audibly.
func (n Notification) Important() bool {
	switch n.Kind {
	case NotificationStarted, NotificationStopped, NotificationBudgetExceeded:
		return true
	default:
		return false
	}
}
