package usecase

import (
	"context"

	connectiondomain "umi-backend/internal/connection/domain"
)

// connectionUsecase implements ConnectionUsecase
type connectionUsecase struct {
	provider TokenProvider
}

func NewConnectionUsecase(provider TokenProvider) ConnectionUsecase {
	return &connectionUsecase{provider: provider}
}

// Resolve maps the provider response to a connection status.
//
// An unreachable or failing provider is reported as not connected rather than
// as an error: a user who has never connected looks the same as one hitting
// transient upstream trouble, and the UI must not alarm the latter.
func (u *connectionUsecase) Resolve(ctx context.Context, userID string) connectiondomain.Status {
	resp, err := u.provider.GetGoogleToken(ctx, userID)
	if err != nil {
		return connectiondomain.Status{
			State:  connectiondomain.StateNotConnected,
			Reason: connectiondomain.ReasonNotConnected,
		}
	}

	// Both conditions are required: an active connection with a missing or
	// empty token is an incomplete payload, not a connected account.
	if !resp.Active || resp.AccessToken == nil || resp.AccessToken.Token == "" {
		reason := connectiondomain.ReasonNoToken
		if resp.Error != "" {
			reason = resp.Error
		}
		return connectiondomain.Status{
			State:  connectiondomain.StateNotConnected,
			Reason: reason,
		}
	}

	return connectiondomain.Status{
		State: connectiondomain.StateConnected,
		Token: &connectiondomain.AccessToken{
			Token:     resp.AccessToken.Token,
			ExpiresAt: resp.AccessToken.ExpiresAt,
		},
	}
}
