package auth

// TokenVerifier is the single verification contract consumed by the gate
// for both capability tiers.
type TokenVerifier interface {
	VerifyUser(token string) (*Principal, error)
	VerifyAdmin(token string) (*Principal, error)
}

// Verifier layers policy on top of the claims codec: expired, inactive,
// and (for admin paths) non-admin principals are rejected. Verification
// is stateless and order-independent across requests.
type Verifier struct {
	codec  *TokenService
	logger Logger
}

var _ TokenVerifier = (*Verifier)(nil)

// NewVerifier returns a Verifier over the given codec.
func NewVerifier(codec *TokenService, logger Logger) *Verifier {
	if logger == nil {
		logger = defLogger{}
	}
	return &Verifier{codec: codec, logger: logger}
}

// VerifyUser checks, in order and short-circuiting: signature/structure,
// expiry (both inside Decode), then the account's active flag.
func (v *Verifier) VerifyUser(token string) (*Principal, error) {
	claims, err := v.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	if !claims.Active {
		v.logger.Warn("verification rejected inactive account", "user_id", claims.UserID())
		return nil, ErrInactiveUser
	}

	return newPrincipal(claims), nil
}

// VerifyAdmin runs the user checks plus the admin-flag check. Activity
// dominates role: an inactive admin fails with ErrInactiveUser and never
// reaches the role check.
func (v *Verifier) VerifyAdmin(token string) (*Principal, error) {
	principal, err := v.VerifyUser(token)
	if err != nil {
		return nil, err
	}

	if !principal.Admin {
		v.logger.Warn("verification rejected non-admin account", "user_id", principal.ID)
		return nil, ErrInsufficientRole
	}

	return principal, nil
}
