package domain

import "errors"

var (
	ErrInvalidState         = errors.New("invalid session state")
	ErrTransientAction      = errors.New("transient action failure")
	ErrErrorBudgetExceeded  = errors.New("error budget exceeded")
	ErrNotificationDelivery = errors.New("notification delivery failed")
	ErrUnauthorized         = errors.New("sender is not the operator")
	ErrSecretNotFound       = errors.New("secret not found")
)

// StateError is returned when a command does not apply to the current state.
// It matches ErrInvalidState with errors.Is.
type StateError struct {
	Op     string
	State  SessionState
	Reason string
}

func (e *StateError) Error() string {
	return e.Op + ": " + e.Reason
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}
