package auth

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// Verification-path errors are terminal for the request: retrying with the
// same token cannot succeed. Every var carries the HTTP status in Code so
// the outer error handler never has to inspect the kind.
var (
	// ErrMissingSigningKey is a configuration fault, not a client error.
	// Issuance and verification both fail closed on it.
	ErrMissingSigningKey = errors.New("signing key is not configured", errors.CategoryInternal).
				WithCode(errors.CodeInternal).
				WithTextCode("MISSING_SIGNING_KEY")

	// ErrTokenMalformed covers bad signatures and structurally invalid tokens.
	ErrTokenMalformed = errors.New("invalid authentication token", errors.CategoryAuth).
				WithCode(errors.CodeUnauthorized).
				WithTextCode("TOKEN_MALFORMED")

	ErrTokenExpired = errors.New("authentication token has expired", errors.CategoryAuth).
			WithCode(errors.CodeUnauthorized).
			WithTextCode("TOKEN_EXPIRED")

	ErrInactiveUser = errors.New("user account is inactive", errors.CategoryAuth).
			WithCode(errors.CodeUnauthorized).
			WithTextCode("INACTIVE_USER")

	ErrInsufficientRole = errors.New("insufficient role for this resource", errors.CategoryAuthz).
				WithCode(errors.CodeForbidden).
				WithTextCode("INSUFFICIENT_ROLE")

	ErrMissingCredentials = errors.New("authorization header missing", errors.CategoryAuth).
				WithCode(errors.CodeBadRequest).
				WithTextCode("MISSING_CREDENTIALS")

	ErrMalformedCredentials = errors.New("invalid authorization header format", errors.CategoryAuth).
				WithCode(errors.CodeBadRequest).
				WithTextCode("MALFORMED_CREDENTIALS")

	// ErrAuthenticationFailed is deliberately generic: it never distinguishes
	// a wrong password from an unknown account.
	ErrAuthenticationFailed = errors.New("invalid credentials", errors.CategoryAuth).
				WithCode(errors.CodeUnauthorized).
				WithTextCode("AUTHENTICATION_FAILED")

	ErrRegistrationFailed = errors.New("unable to register account", errors.CategoryBadInput).
				WithCode(errors.CodeBadRequest).
				WithTextCode("REGISTRATION_FAILED")

	ErrProfileNotFound = errors.New("no stored profile for account", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound).
				WithTextCode("PROFILE_NOT_FOUND")

	// ErrCompensationFailed is logged, never surfaced: it marks an orphaned
	// provider credential that needs manual reconciliation.
	ErrCompensationFailed = errors.New("failed to roll back identity provider account", errors.CategoryInternal).
				WithCode(errors.CodeInternal).
				WithTextCode("COMPENSATION_FAILED")
)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenExpired) {
		return true
	}
	if textCode(err) == ErrTokenExpired.TextCode {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenMalformed) {
		return true
	}
	if textCode(err) == ErrTokenMalformed.TextCode {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed")
}

func textCode(err error) string {
	var rich *errors.Error
	if errors.As(err, &rich) {
		return rich.TextCode
	}
	return ""
}
