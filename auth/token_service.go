package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the fixed validity window policy.
const DefaultTokenTTL = time.Hour

// TokenService is the claims codec: it encodes a profile into a signed,
// time-bounded HS256 token and decodes a presented token back into
// claims. It holds the process-wide signing key, which is immutable
// after construction and safe for concurrent use.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	logger     Logger
}

// NewTokenService creates a new TokenService instance. A non-positive ttl
// falls back to DefaultTokenTTL.
func NewTokenService(signingKey []byte, ttl time.Duration, logger Logger) *TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		signingKey: signingKey,
		ttl:        ttl,
		logger:     logger,
	}
}

// Issue stamps issued-at and expiry on a fresh claims set built from the
// profile and signs it.
func (ts *TokenService) Issue(profile Profile) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
		UID:       profile.ID,
		Firstname: profile.Firstname,
		Lastname:  profile.Lastname,
		Email:     profile.Email,
		Active:    profile.Active,
		Admin:     profile.Admin,
	}

	ensureTokenID(&claims.RegisteredClaims)

	return ts.SignClaims(claims)
}

// SignClaims signs arbitrary claims using the configured signing key.
func (ts *TokenService) SignClaims(claims *Claims) (string, error) {
	if claims == nil {
		return "", errors.New("claims must not be nil", errors.CategoryInternal)
	}

	if len(ts.signingKey) == 0 {
		ts.logger.Error("token service has no signing key configured")
		return "", ErrMissingSigningKey
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign JWT")
	}

	return signed, nil
}

// Decode splits and verifies the signature, rejects any non-HMAC signing
// method (including "none"), and returns the claims. Expiry is validated
// here during parsing, so callers can rely on a returned claims set being
// inside its validity window.
func (ts *TokenService) Decode(tokenString string) (*Claims, error) {
	if len(ts.signingKey) == 0 {
		// verification against a missing key fails closed
		ts.logger.Error("token decode attempted without a signing key")
		return nil, ErrMissingSigningKey
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("token decode encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithCode(ErrTokenMalformed.Code).
			WithTextCode(ErrTokenMalformed.TextCode)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		ts.logger.Error("token decode could not recover claims")
		return nil, ErrTokenMalformed
	}

	if !claims.complete() {
		return nil, errors.Wrap(ErrTokenMalformed, ErrTokenMalformed.Category, "token claims are incomplete").
			WithCode(ErrTokenMalformed.Code).
			WithTextCode(ErrTokenMalformed.TextCode)
	}

	return claims, nil
}

// TTL exposes the configured validity window.
func (ts *TokenService) TTL() time.Duration {
	return ts.ttl
}

func ensureTokenID(rc *jwt.RegisteredClaims) {
	if rc.ID == "" {
		rc.ID = uuid.NewString()
	}
}
