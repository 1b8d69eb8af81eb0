// Package firebase implements auth.IdentityProvider against the Firebase
// Identity Toolkit REST API. Firebase owns the password credential; this
// service only keeps the profile document.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/altuslab/challenges-api/auth"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// IdentityProvider calls the Identity Toolkit accounts endpoints. All
// requests carry the project API key as a query parameter, which is how
// the toolkit authenticates unprivileged clients.
type IdentityProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  auth.Logger
}

// Option configures the provider.
type Option func(*IdentityProvider)

// WithBaseURL overrides the API endpoint, mainly for tests and the
// Firebase emulator.
func WithBaseURL(url string) Option {
	return func(p *IdentityProvider) {
		p.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *IdentityProvider) {
		if client != nil {
			p.client = client
		}
	}
}

// WithLogger overrides the logger.
func WithLogger(logger auth.Logger) Option {
	return func(p *IdentityProvider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewIdentityProvider creates a Firebase-backed identity provider.
func NewIdentityProvider(apiKey string, opts ...Option) (*IdentityProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("firebase: api key is required")
	}

	p := &IdentityProvider{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  auth.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

type signUpRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signUpResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type deleteRequest struct {
	LocalID string `json:"localId"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateAccount registers the credential with Firebase and returns the
// account's localId.
func (p *IdentityProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	var out signUpResponse
	err := p.post(ctx, "accounts:signUp", signUpRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &out)
	if err != nil {
		return "", fmt.Errorf("firebase: sign up failed: %w", err)
	}
	if out.LocalID == "" {
		return "", fmt.Errorf("firebase: sign up response missing localId")
	}
	return out.LocalID, nil
}

// VerifyPassword checks the credential against Firebase. Any rejection,
// unknown email included, comes back as an error so the caller can map
// it to a single generic failure.
func (p *IdentityProvider) VerifyPassword(ctx context.Context, email, password string) error {
	err := p.post(ctx, "accounts:signInWithPassword", signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("firebase: sign in failed: %w", err)
	}
	return nil
}

// DeleteAccount removes the Firebase account. Used to roll back a
// registration whose profile insert failed.
func (p *IdentityProvider) DeleteAccount(ctx context.Context, providerID string) error {
	err := p.post(ctx, "accounts:delete", deleteRequest{LocalID: providerID}, nil)
	if err != nil {
		return fmt.Errorf("firebase: account delete failed: %w", err)
	}
	return nil
}

func (p *IdentityProvider) post(ctx context.Context, action string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, action, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
			p.logger.Debug("identity toolkit rejected request", "action", action, "code", apiErr.Error.Code)
			return fmt.Errorf("%s: %s", action, apiErr.Error.Message)
		}
		return fmt.Errorf("%s: unexpected status %d", action, res.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
