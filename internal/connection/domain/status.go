package domain

import "time"

type State string

const (
	StateConnected    State = "connected"
	StateNotConnected State = "not_connected"
	StateError        State = "error"
)

// ReasonNotConnected is the sentinel reason for "no connection yet". The UI
// treats it as the expected initial state, never as a visible error.
const (
	ReasonNotConnected = "not_connected"
	ReasonNoToken      = "no_token"
)

// AccessToken is held only long enough to answer the current request.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// Status is the resolved connection state for a user. Token is set only when
// State is StateConnected.
type Status struct {
	State  State
	Reason string
	Token  *AccessToken
}

func (s Status) IsConnected() bool {
	return s.State == StateConnected
}
