package usecase

import (
	"context"

	connectiondomain "umi-backend/internal/connection/domain"

	"umi-backend/pkg/pipes"
)

// TokenProvider is the single upstream call the resolver depends on.
// Implemented by pipes.Client.
type TokenProvider interface {
	GetGoogleToken(ctx context.Context, userID string) (*pipes.TokenResponse, error)
}

// ConnectionUsecase resolves the Gmail connection state for a user. Every
// call re-derives the state from upstream, nothing is cached between calls.
type ConnectionUsecase interface {
	Resolve(ctx context.Context, userID string) connectiondomain.Status
}
