package domain

import "time"

// Session is the server-side record behind the opaque identifier a client
// carries in its cookie. A session is either fully authenticated (flag set,
// snapshot present) or not authenticated at all; there is no partial state.
type Session struct {
	ID            string       `json:"id"`
	Authenticated bool         `json:"authenticated"`
	User          UserSnapshot `json:"user"`
	CreatedAt     time.Time    `json:"created_at"`
	ExpiresAt     time.Time    `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
