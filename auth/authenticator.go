package auth

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Authenticator orchestrates the credential boundary: password
// verification and account creation live with the external identity
// provider, stored profiles live in the document store, and tokens are
// minted by the claims codec on success.
type Authenticator struct {
	provider IdentityProvider
	profiles ProfileStore
	tokens   *TokenService
	logger   Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, profiles ProfileStore, tokens *TokenService) *Authenticator {
	return &Authenticator{
		provider: provider,
		profiles: profiles,
		tokens:   tokens,
		logger:   defLogger{},
	}
}

func (a *Authenticator) WithLogger(logger Logger) *Authenticator {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Login verifies the password with the identity provider, loads the
// stored profile, and issues a token. Provider rejections surface as the
// generic ErrAuthenticationFailed: the response never distinguishes a
// wrong password from an unknown account.
func (a *Authenticator) Login(ctx context.Context, email, password string) (string, error) {
	if err := a.provider.VerifyPassword(ctx, email, password); err != nil {
		a.logger.Warn("login rejected by identity provider", "email", email, "error", err.Error())
		return "", ErrAuthenticationFailed
	}

	profile, err := a.profiles.FindProfileByEmail(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "profile lookup failed").
			WithCode(errors.CodeInternal)
	}

	if profile == nil {
		// provider knows the account but the profile store does not:
		// inconsistent state between the two collaborators
		a.logger.Error("authenticated account has no stored profile", "email", email)
		return "", ErrProfileNotFound
	}

	token, err := a.tokens.Issue(*profile)
	if err != nil {
		return "", err
	}

	a.logger.Info("login succeeded", "user_id", profile.ID)
	return token, nil
}

// RegisterInput carries the fields a new account registers with.
type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
	Admin     bool
}

// Register creates the account with the identity provider and persists
// the profile. If persistence fails the provider account is rolled back;
// the caller receives ErrRegistrationFailed regardless of the rollback
// outcome, and a failed rollback is logged as an orphaned credential
// needing manual reconciliation.
func (a *Authenticator) Register(ctx context.Context, input RegisterInput) (*Profile, error) {
	providerID, err := a.provider.CreateAccount(ctx, input.Email, input.Password)
	if err != nil {
		a.logger.Warn("identity provider rejected account creation", "email", input.Email, "error", err.Error())
		return nil, ErrRegistrationFailed
	}

	profile := &Profile{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Email:     input.Email,
		Active:    true,
		Admin:     input.Admin,
	}

	id, err := a.profiles.InsertProfile(ctx, profile)
	if err != nil {
		a.logger.Error("profile persistence failed during registration", "email", input.Email, "error", err.Error())

		if derr := a.provider.DeleteAccount(ctx, providerID); derr != nil {
			a.logger.Error(ErrCompensationFailed.Message,
				"text_code", ErrCompensationFailed.TextCode,
				"provider_id", providerID,
				"error", derr.Error(),
			)
		}

		return nil, ErrRegistrationFailed
	}

	profile.ID = id
	a.logger.Info("registration succeeded", "user_id", id)
	return profile, nil
}
