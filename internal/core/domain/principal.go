package domain

// Principal is the authenticated identity derived from a verified session
// token. It lives for a single request and is never persisted.
type Principal struct {
	UserID string
}
