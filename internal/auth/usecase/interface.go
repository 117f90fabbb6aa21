package usecase

import (
	"time"

	authdomain "umi-backend/internal/auth/domain"
)

type AuthUsecase interface {
	// ValidateToken checks a session token and returns the session it proves.
	ValidateToken(tokenString string) (*authdomain.Session, error)
	// IssueWidgetToken mints a short-lived session token for the embedded
	// connection widget. This is session auth, not the Gmail access token.
	IssueWidgetToken(session *authdomain.Session) (string, time.Time, error)
}
