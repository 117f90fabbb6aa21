package usecase

import (
	"context"

	authdomain "umi-backend/internal/auth/domain"
	cleanupdto "umi-backend/internal/cleanup/dto"

	"umi-backend/pkg/audit"
	"umi-backend/pkg/fcm"
	"umi-backend/pkg/gmail"
)

// GmailService is the slice of the Gmail client the cleanup pass needs.
// Implemented by gmail.Service.
type GmailService interface {
	ListCleanupCandidates(ctx context.Context, accessToken string, maxResults int64) ([]*gmail.Candidate, error)
	Archive(ctx context.Context, accessToken string, messageIDs []string) error
	Trash(ctx context.Context, accessToken string, messageIDs []string) error
}

// Notifier sends the completion push. Implemented by fcm.Client; may be
// absent when Firebase is not configured.
type Notifier interface {
	SendToDevice(ctx context.Context, token string, notification fcm.NotificationData) error
}

// AuditEmitter records audit events. Implemented by audit.Emitter.
type AuditEmitter interface {
	Emit(ctx context.Context, event audit.Event)
}

type CleanupUsecase interface {
	// Scan lists cleanup candidates, with the user's protected senders
	// already filtered out.
	Scan(ctx context.Context, session *authdomain.Session) (*cleanupdto.ScanResponse, error)
	// Cleanup re-derives the candidate set and archives or trashes it
	// according to the user's aggressiveness preference.
	Cleanup(ctx context.Context, session *authdomain.Session, deviceToken string) (*cleanupdto.CleanupResponse, error)
}
