package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goliatone/go-errors"
)

const (
	loginEndpoint    = "/auth/login"
	registerEndpoint = "/auth/register"
)

// Gateway orchestrates login and logout and is the single authority for
// "is the current actor authenticated". Guards, transport, and the
// monitor consult it instead of re-deriving expiry on their own.
type Gateway struct {
	cfg       Config
	state     *SessionState
	client    *http.Client
	navigator Navigator
	logger    Logger
	now       func() time.Time

	redirectMu sync.Mutex
	redirect   string
}

// GatewayOption customizes Gateway construction.
type GatewayOption func(*Gateway)

// WithLogger overrides the default stdout logger.
func WithLogger(logger Logger) GatewayOption {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithNavigator wires the host application's navigation layer.
func WithNavigator(nav Navigator) GatewayOption {
	return func(g *Gateway) {
		if nav != nil {
			g.navigator = nav
		}
	}
}

// WithHTTPClient overrides the HTTP client used for auth endpoints. Hosts
// that route all traffic through Transport pass that client here too.
func WithHTTPClient(client *http.Client) GatewayOption {
	return func(g *Gateway) {
		if client != nil {
			g.client = client
		}
	}
}

// WithClock injects a custom clock (useful for tests).
func WithClock(clock func() time.Time) GatewayOption {
	return func(g *Gateway) {
		if clock != nil {
			g.now = clock
		}
	}
}

// NewGateway builds a Gateway around an existing SessionState. A rehydrated
// credential that is already expired (or no longer decodes) is cleared right
// away, so the application never starts in a half-valid session.
func NewGateway(ctx context.Context, cfg Config, state *SessionState, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		cfg:       cfg,
		state:     state,
		client:    http.DefaultClient,
		navigator: noopNavigator{},
		logger:    defLogger{},
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	if snapshot := state.Current(); snapshot.Present() && !g.IsAuthenticated() {
		g.logger.Warn("rehydrated credential is expired, clearing session", "username", snapshot.Identity.Username)
		if err := state.Clear(ctx); err != nil {
			g.logger.Error("failed to clear stale session", "error", err)
		}
	}

	return g
}

// State exposes the session state handle for components that only read it,
// like Transport.
func (g *Gateway) State() *SessionState {
	return g.state
}

// Login authenticates against the backend and, on success, atomically
// replaces the session. A response token that does not decode is treated as
// a failed login: nothing is persisted and the previous session stays.
func (g *Gateway) Login(ctx context.Context, payload LoginRequest) error {
	if err := payload.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "invalid login payload").
			WithCode(errors.CodeBadRequest)
	}

	resp, err := g.postJSON(ctx, loginEndpoint, payload)
	if err != nil {
		g.logger.Error("login request failed", "error", err)
		return errors.Wrap(err, errors.CategoryAuth, ErrInvalidCredentials.Message).
			WithTextCode(textCodeInvalidCredentials).
			WithCode(errors.CodeUnauthorized)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, errors.CategoryAuth, ErrInvalidCredentials.Message).
			WithTextCode(textCodeInvalidCredentials).
			WithCode(errors.CodeUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		authErr := loginError(body)
		g.logger.Info("login rejected", "status", resp.StatusCode, "message", authErr.Message)
		return authErr
	}

	var loginResp LoginResponse
	if err := json.Unmarshal(body, &loginResp); err != nil || loginResp.Token == "" {
		g.logger.Error("login response body is unreadable", "error", err)
		return ErrCredentialDecodeFailed
	}

	claims, err := DecodeToken(loginResp.Token)
	if err != nil {
		g.logger.Error("login returned a credential that does not decode", "error", err)
		return ErrCredentialDecodeFailed
	}

	role, known := NormalizeRole(claims.RawRole)
	if !known {
		g.logger.Warn("unknown role in credential, defaulting to USER", "role", claims.RawRole)
	}

	identity := Identity{
		Username: claims.Subject,
		Role:     role,
	}

	if err := g.state.Set(ctx, loginResp.Token, identity); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to persist session")
	}

	g.logger.Info("login succeeded", "username", identity.Username, "role", identity.Role)
	return nil
}

// Logout clears the session and navigates to the login route. Calling it
// with no active session only performs the navigation.
func (g *Gateway) Logout(ctx context.Context) {
	if g.state.Current().Present() {
		if err := g.state.Clear(ctx); err != nil {
			g.logger.Error("failed to clear session on logout", "error", err)
		}
	}
	g.navigator.Navigate(g.cfg.GetLoginRoute())
}

// IsAuthenticated recomputes validity on every call: a credential must be
// present, decode cleanly, and not be expired at the current instant. No
// cached boolean is ever trusted.
func (g *Gateway) IsAuthenticated() bool {
	snapshot := g.state.Current()
	if !snapshot.Present() {
		return false
	}

	claims, err := DecodeToken(snapshot.Credential)
	if err != nil {
		return false
	}

	return !claims.IsExpired(g.now())
}

// CurrentUser returns a copy of the current identity, or nil when logged out.
func (g *Gateway) CurrentUser() *Identity {
	snapshot := g.state.Current()
	if snapshot.Identity == nil {
		return nil
	}
	identity := *snapshot.Identity
	return &identity
}

// Role returns the current identity's role, or the empty string when logged
// out. Like IsAdmin and IsUser it says nothing about expiry; authorization
// decisions must pair it with IsAuthenticated.
func (g *Gateway) Role() Role {
	if user := g.CurrentUser(); user != nil {
		return user.Role
	}
	return ""
}

// IsAdmin reports whether the current identity carries the admin role.
func (g *Gateway) IsAdmin() bool {
	return g.Role() == RoleAdmin
}

// IsUser reports whether the current identity carries the plain user role.
func (g *Gateway) IsUser() bool {
	return g.Role() == RoleUser
}

// SetRedirect records the destination a guard turned away from. Single slot,
// last write wins.
func (g *Gateway) SetRedirect(path string) {
	g.redirectMu.Lock()
	defer g.redirectMu.Unlock()
	g.redirect = path
}

// ConsumeRedirect returns and clears the recorded destination, falling back
// to def when nothing was recorded. Login flows call this after a successful
// authentication to resume where the user was headed.
func (g *Gateway) ConsumeRedirect(def string) string {
	g.redirectMu.Lock()
	defer g.redirectMu.Unlock()

	path := g.redirect
	g.redirect = ""
	if path == "" {
		return def
	}
	return path
}

// Register creates a new user account. The backend enforces that only admins
// may call it; the bearer credential travels via the configured transport.
func (g *Gateway) Register(ctx context.Context, payload RegisterRequest) (*Identity, error) {
	if err := payload.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "invalid registration payload").
			WithCode(errors.CodeBadRequest)
	}

	resp, err := g.postJSON(ctx, registerEndpoint, payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryOperation, "registration request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryOperation, "registration response is unreadable")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := "registration failed"
		var errBody loginErrorBody
		if json.Unmarshal(body, &errBody) == nil && errBody.Message != "" {
			message = errBody.Message
		}
		return nil, errors.New(message, errors.CategoryValidation).
			WithCode(errors.CodeBadRequest)
	}

	var created Identity
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, errors.Wrap(err, errors.CategoryOperation, "registration response is unreadable")
	}

	return &created, nil
}

func (g *Gateway) postJSON(ctx context.Context, endpoint string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.GetBaseURL()+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return g.client.Do(req)
}

// loginError maps a non-2xx login body onto a user-facing message. Priority:
// an explicit server message, then a remaining-attempts count, then the
// generic fallback.
func loginError(body []byte) *errors.Error {
	var errBody loginErrorBody
	_ = json.Unmarshal(body, &errBody)

	message := ErrInvalidCredentials.Message
	if errBody.Message != "" {
		message = errBody.Message
	} else if errBody.RemainingAttempts != nil {
		message = fmt.Sprintf("Invalid credentials. %d attempt(s) remaining", *errBody.RemainingAttempts)
	}

	return errors.New(message, errors.CategoryAuth).
		WithTextCode(textCodeInvalidCredentials).
		WithCode(errors.CodeUnauthorized)
}
