package ports

import (
	"time"

	"github.com/inkwellhq/blog-api/internal/core/domain"
)

// PasswordHasher is a one-way, salted password transform with a configurable
// work factor.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. It fails only on underlying
	// entropy or resource exhaustion (domain.ErrHashingFailure).
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A mismatch is never
	// an error, only false.
	Verify(plaintext, hash string) bool
}

// TokenService issues and verifies signed, time-bounded session tokens.
type TokenService interface {
	Issue(subjectID string, now time.Time) (string, error)
	// Verify checks the signature before trusting any claim, then the
	// structure and expiry, and returns the principal the token was issued to.
	Verify(token string, now time.Time) (domain.Principal, error)
}
