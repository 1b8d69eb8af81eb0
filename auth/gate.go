package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the fiber locals key the gate binds the verified
// principal under.
const PrincipalKey = "principal"

// Gate is the request-boundary enforcement point: it extracts the bearer
// credential, dispatches to the verifier for the required tier, and
// either binds the principal to the request or rejects the request
// before any business handler runs. It mutates only per-request state.
type Gate struct {
	verifier TokenVerifier
	logger   Logger
}

// NewGate returns a Gate over the given verifier.
func NewGate(verifier TokenVerifier, logger Logger) *Gate {
	if logger == nil {
		logger = defLogger{}
	}
	return &Gate{verifier: verifier, logger: logger}
}

// RequireUser gates a route on a valid token for an active account.
func (g *Gate) RequireUser() fiber.Handler {
	return g.gate(RoleUser)
}

// RequireAdmin gates a route on a valid token for an active admin account.
func (g *Gate) RequireAdmin() fiber.Handler {
	return g.gate(RoleAdmin)
}

func (g *Gate) gate(requiredRole Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := bearerFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		var principal *Principal
		if requiredRole == RoleAdmin {
			principal, err = g.verifier.VerifyAdmin(raw)
		} else {
			principal, err = g.verifier.VerifyUser(raw)
		}

		if err != nil {
			g.logger.Info("request rejected at gate",
				"path", c.Path(),
				"required_role", requiredRole,
				"error", err.Error(),
			)
			return err
		}

		c.Locals(PrincipalKey, principal)
		c.SetUserContext(WithPrincipal(c.UserContext(), principal))

		return c.Next()
	}
}

// PrincipalFromFiber reads the principal the gate bound to the request.
func PrincipalFromFiber(c *fiber.Ctx) (*Principal, bool) {
	principal, ok := c.Locals(PrincipalKey).(*Principal)
	return principal, ok && principal != nil
}

// bearerFromHeader requires exactly the scheme token "Bearer"
// (case-insensitive) followed by one token string.
func bearerFromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingCredentials
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMalformedCredentials
	}

	return parts[1], nil
}
