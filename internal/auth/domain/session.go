package domain

// Session is the authenticated identity attached to each request. Identity
// itself is owned by the external auth provider; this backend only validates
// the session token and reads the claims out of it.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	// OrgID is empty for personal accounts. Audit events are only emitted
	// for organizational accounts.
	OrgID string `json:"org_id,omitempty"`
}
