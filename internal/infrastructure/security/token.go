package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwellhq/blog-api/internal/core/domain"
)

var ErrTokenExpired = errors.New("token expired")
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")

const defaultTokenTTL = time.Hour

// JWTTokenService issues and verifies HS256-signed session tokens. The
// signing key is set once at construction; rotating it invalidates every
// previously issued token.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for subjectID with issued-at now and expiry now+TTL.
func (s *JWTTokenService) Issue(subjectID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses the token, checks the signature against the process key, and
// validates structure and expiry relative to now. The library verifies the
// signature before claims validation, so no field is trusted unverified.
func (s *JWTTokenService) Verify(token string, now time.Time) (domain.Principal, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Principal{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Principal{}, ErrTokenSignatureInvalid
		default:
			return domain.Principal{}, ErrTokenMalformed
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.Principal{}, ErrTokenMalformed
	}
	return domain.Principal{UserID: claims.Subject}, nil
}
