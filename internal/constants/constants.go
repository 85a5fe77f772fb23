package constants

import "time"

const (
	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength = 6

	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "session"

	// SessionTTL bounds how long a session is accepted after creation.
	// The check is strict: a session aged exactly SessionTTL is rejected.
	SessionTTL = 7 * 24 * time.Hour
)

// Session value keys and the gin context key for the resolved user.
const (
	SessionKeyUserID    = "user_id"
	SessionKeyCreatedAt = "created_at"
	ContextKeyUserID    = "user_id"
)
