package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	authdomain "umi-backend/internal/auth/domain"
	cleanupdto "umi-backend/internal/cleanup/dto"
	connectionUsecase "umi-backend/internal/connection/usecase"
	preferencesdomain "umi-backend/internal/preferences/domain"
	preferencesUsecase "umi-backend/internal/preferences/usecase"

	"umi-backend/pkg/audit"
	"umi-backend/pkg/fcm"
	"umi-backend/pkg/gmail"
)

// ErrNotConnected means the user has no active Gmail connection to act with.
var ErrNotConnected = errors.New("gmail is not connected")

const maxScanResults = 100

// cleanupUsecase implements CleanupUsecase
type cleanupUsecase struct {
	connection  connectionUsecase.ConnectionUsecase
	preferences preferencesUsecase.PreferencesUsecase
	gmail       GmailService
	audit       AuditEmitter
	notifier    Notifier
}

func NewCleanupUsecase(connection connectionUsecase.ConnectionUsecase, preferences preferencesUsecase.PreferencesUsecase, gmailService GmailService, auditEmitter AuditEmitter, notifier Notifier) CleanupUsecase {
	return &cleanupUsecase{
		connection:  connection,
		preferences: preferences,
		gmail:       gmailService,
		audit:       auditEmitter,
		notifier:    notifier,
	}
}

func (u *cleanupUsecase) Scan(ctx context.Context, session *authdomain.Session) (*cleanupdto.ScanResponse, error) {
	candidates, _, _, err := u.scan(ctx, session)
	if err != nil {
		return nil, err
	}

	u.audit.Emit(ctx, audit.Event{
		Action:         audit.ActionScanCompleted,
		ActorID:        session.UserID,
		ActorName:      session.Email,
		OrganizationID: session.OrgID,
		Metadata:       map[string]interface{}{"candidates": len(candidates)},
	})

	return &cleanupdto.ScanResponse{
		Candidates: candidates,
		Total:      len(candidates),
	}, nil
}

func (u *cleanupUsecase) Cleanup(ctx context.Context, session *authdomain.Session, deviceToken string) (*cleanupdto.CleanupResponse, error) {
	// Re-derive the candidate set at execution time; a prior scan result
	// may be stale.
	candidates, prefs, accessToken, err := u.scan(ctx, session)
	if err != nil {
		return nil, err
	}

	var action string
	var targetIDs []string
	skipped := 0

	switch prefs.Aggressiveness {
	case preferencesdomain.AggressivenessConservative:
		// Conservative only touches mail the user has already read.
		action = "archive"
		for _, c := range candidates {
			if c.Unread {
				skipped++
				continue
			}
			targetIDs = append(targetIDs, c.ID)
		}
	case preferencesdomain.AggressivenessModerate:
		action = "archive"
		for _, c := range candidates {
			targetIDs = append(targetIDs, c.ID)
		}
	default:
		action = "trash"
		for _, c := range candidates {
			targetIDs = append(targetIDs, c.ID)
		}
	}

	if action == "trash" {
		err = u.gmail.Trash(ctx, accessToken, targetIDs)
	} else {
		err = u.gmail.Archive(ctx, accessToken, targetIDs)
	}
	if err != nil {
		return nil, err
	}

	u.audit.Emit(ctx, audit.Event{
		Action:         audit.ActionCleanupExecuted,
		ActorID:        session.UserID,
		ActorName:      session.Email,
		OrganizationID: session.OrgID,
		Metadata: map[string]interface{}{
			"action":  action,
			"cleaned": len(targetIDs),
			"skipped": skipped,
		},
	})

	u.notifyComplete(ctx, prefs, deviceToken, len(targetIDs))

	return &cleanupdto.CleanupResponse{
		Action:  action,
		Cleaned: len(targetIDs),
		Skipped: skipped,
	}, nil
}

// scan fetches the candidate set with protected senders filtered out, plus
// the preferences and access token it derived along the way.
func (u *cleanupUsecase) scan(ctx context.Context, session *authdomain.Session) ([]cleanupdto.Candidate, *preferencesdomain.UserPreferences, string, error) {
	status := u.connection.Resolve(ctx, session.UserID)
	if !status.IsConnected() {
		return nil, nil, "", ErrNotConnected
	}

	prefs, err := u.preferences.Get(session.UserID)
	if err != nil {
		return nil, nil, "", err
	}

	u.audit.Emit(ctx, audit.Event{
		Action:         audit.ActionScanStarted,
		ActorID:        session.UserID,
		ActorName:      session.Email,
		OrganizationID: session.OrgID,
	})

	messages, err := u.gmail.ListCleanupCandidates(ctx, status.Token.Token, maxScanResults)
	if err != nil {
		return nil, nil, "", err
	}

	candidates := make([]cleanupdto.Candidate, 0, len(messages))
	for _, m := range messages {
		if isProtectedSender(m.From, prefs.ProtectedSenders) {
			continue
		}
		candidates = append(candidates, cleanupdto.Candidate{
			ID:      m.ID,
			From:    m.From,
			Subject: m.Subject,
			Unread:  m.Unread,
		})
	}

	return candidates, prefs, status.Token.Token, nil
}

func (u *cleanupUsecase) notifyComplete(ctx context.Context, prefs *preferencesdomain.UserPreferences, deviceToken string, cleaned int) {
	if !prefs.NotifyOnComplete || deviceToken == "" || u.notifier == nil {
		return
	}

	err := u.notifier.SendToDevice(ctx, deviceToken, fcm.NotificationData{
		Title: "Inbox cleanup complete",
		Body:  fmt.Sprintf("%d messages cleaned up", cleaned),
		Data:  map[string]string{"type": "cleanup_complete"},
	})
	if err != nil {
		log.Printf("[WARN] Failed to send cleanup notification: %v", err)
	}
}

func isProtectedSender(from string, protectedSenders []string) bool {
	lowered := strings.ToLower(from)
	for _, sender := range protectedSenders {
		if sender == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(sender)) {
			return true
		}
	}
	return false
}

var _ GmailService = (*gmail.Service)(nil)
