package constants

// Gin context keys set by the session middleware.
const (
	CtxKeyUserID  = "user_id"
	CtxKeyEmail   = "email"
	CtxKeyRole    = "role"
	CtxKeyAccount = "account"
	CtxKeySession = "session_claims"
)
