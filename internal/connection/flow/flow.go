// Package flow models the client-side Gmail connect flow as an explicit state
// machine. The embedding UI forwards its lifecycle moments as discrete events
// (mounted, connect clicked, widget closed), which keeps the transition table
// testable without any rendering environment.
package flow

import (
	"context"
	"errors"
)

type State string

const (
	StateLoading      State = "loading"
	StateDisconnected State = "disconnected"
	StateConnected    State = "connected"
	StateWidgetOpen   State = "widget_open"
)

// checkFailedError is shown when the status endpoint itself could not be
// reached, as opposed to the endpoint reporting a disconnected account.
const checkFailedError = "Failed to check status"

// reasonNotConnected is the expected initial state, never rendered as an error.
const reasonNotConnected = "not_connected"

type StatusResult struct {
	IsConnected bool
	Error       string
}

// StatusChecker is the status endpoint as seen from the client.
type StatusChecker interface {
	CheckStatus(ctx context.Context) (StatusResult, error)
}

// SessionTokenFunc fetches a fresh session token on demand. This is the
// short-lived session credential the embedded widget authorizes with, not the
// Gmail access token.
type SessionTokenFunc func(ctx context.Context) (string, error)

type Flow struct {
	state        State
	lastError    string
	checker      StatusChecker
	sessionToken SessionTokenFunc
}

func New(checker StatusChecker, sessionToken SessionTokenFunc) *Flow {
	return &Flow{
		state:        StateLoading,
		checker:      checker,
		sessionToken: sessionToken,
	}
}

func (f *Flow) State() State {
	return f.state
}

// LastError returns the error code from the most recent status check, empty
// when the last check succeeded or reported a connected account.
func (f *Flow) LastError() string {
	return f.lastError
}

// ShouldShowError reports whether the current error deserves a visible
// failure callout. The not_connected sentinel is the expected state for a
// user who simply has not connected yet and stays silent.
func (f *Flow) ShouldShowError() bool {
	return f.state == StateDisconnected &&
		f.lastError != "" &&
		f.lastError != reasonNotConnected
}

// HandleMounted runs the initial status check.
func (f *Flow) HandleMounted(ctx context.Context) State {
	f.state = StateLoading
	return f.check(ctx)
}

// HandleConnectRequested opens the embedded connection widget. Only valid
// while disconnected; Connected has no outgoing transitions in this flow.
func (f *Flow) HandleConnectRequested() error {
	if f.state != StateDisconnected {
		return errors.New("connect is only available while disconnected")
	}
	f.state = StateWidgetOpen
	return nil
}

// HandleWidgetClosed re-checks status after the widget is dismissed. The
// widget performs the OAuth handshake out-of-band, so the close event is the
// one moment something may have changed.
func (f *Flow) HandleWidgetClosed(ctx context.Context) (State, error) {
	if f.state != StateWidgetOpen {
		return f.state, errors.New("widget is not open")
	}
	f.state = StateLoading
	return f.check(ctx), nil
}

// WidgetAuthToken lazily fetches the session token the open widget needs.
func (f *Flow) WidgetAuthToken(ctx context.Context) (string, error) {
	if f.state != StateWidgetOpen {
		return "", errors.New("widget is not open")
	}
	token, err := f.sessionToken(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", errors.New("no session token available")
	}
	return token, nil
}

func (f *Flow) check(ctx context.Context) State {
	result, err := f.checker.CheckStatus(ctx)
	if err != nil {
		f.state = StateDisconnected
		f.lastError = checkFailedError
		return f.state
	}

	if result.IsConnected {
		f.state = StateConnected
		f.lastError = ""
		return f.state
	}

	f.state = StateDisconnected
	f.lastError = result.Error
	return f.state
}
