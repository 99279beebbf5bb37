package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/inkwellhq/blog-api/internal/core/domain"
)

// BcryptHasher hashes passwords with bcrypt. The salt is generated per call
// and embedded in the hash blob; comparison is constant-time inside bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given work factor. Out-of-range
// costs fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHashingFailure, err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
