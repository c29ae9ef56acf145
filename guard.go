package authclient

import (
	"context"
)

// accessDeniedNotice is shown when an authenticated non-admin hits an
// admin-only route.
const accessDeniedNotice = "Access denied! This feature is restricted to administrators."

// AuthenticatedGuard gates navigation into routes that require a valid
// session. It never mutates the session; on denial it records the attempted
// destination and sends the navigator to the login route.
type AuthenticatedGuard struct {
	gateway   *Gateway
	navigator Navigator
	logger    Logger
}

// NewAuthenticatedGuard builds a guard around the gateway. The navigator
// defaults to the gateway's own.
func NewAuthenticatedGuard(gateway *Gateway, opts ...GuardOption) *AuthenticatedGuard {
	options := guardOptions{
		navigator: gateway.navigator,
		notifier:  noopNotifier{},
		logger:    gateway.logger,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &AuthenticatedGuard{
		gateway:   gateway,
		navigator: options.navigator,
		logger:    options.logger,
	}
}

// CanActivate reports whether navigation to attemptedPath may proceed. On
// denial the attempted destination is recorded for the post-login redirect,
// last write wins.
func (g *AuthenticatedGuard) CanActivate(ctx context.Context, attemptedPath string) bool {
	if g.gateway.IsAuthenticated() {
		return true
	}

	g.logger.Info("unauthenticated navigation blocked", "path", attemptedPath)
	g.gateway.SetRedirect(attemptedPath)
	g.navigator.Navigate(g.gateway.cfg.GetLoginRoute())
	return false
}

// AdminGuard gates admin-only routes. It first applies the authenticated
// check, with the same redirect-to-login behavior; an authenticated non-admin
// gets a denial notice and lands on the default route with the session left
// intact.
type AdminGuard struct {
	authenticated *AuthenticatedGuard
	navigator     Navigator
	notifier      Notifier
	logger        Logger
}

// NewAdminGuard builds the admin-only variant.
func NewAdminGuard(gateway *Gateway, opts ...GuardOption) *AdminGuard {
	options := guardOptions{
		navigator: gateway.navigator,
		notifier:  noopNotifier{},
		logger:    gateway.logger,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &AdminGuard{
		authenticated: &AuthenticatedGuard{
			gateway:   gateway,
			navigator: options.navigator,
			logger:    options.logger,
		},
		navigator: options.navigator,
		notifier:  options.notifier,
		logger:    options.logger,
	}
}

// CanActivate allows entry only for an authenticated admin.
func (g *AdminGuard) CanActivate(ctx context.Context, attemptedPath string) bool {
	if !g.authenticated.CanActivate(ctx, attemptedPath) {
		return false
	}

	gateway := g.authenticated.gateway
	if gateway.IsAdmin() {
		return true
	}

	g.logger.Info("admin-only navigation blocked", "path", attemptedPath, "role", gateway.Role())
	g.notifier.Notify(accessDeniedNotice)
	g.navigator.Navigate(gateway.cfg.GetLandingRoute())
	return false
}

type guardOptions struct {
	navigator Navigator
	notifier  Notifier
	logger    Logger
}

// GuardOption customizes guard construction.
type GuardOption func(*guardOptions)

// WithGuardNavigator overrides the navigator used for guard redirects.
func WithGuardNavigator(nav Navigator) GuardOption {
	return func(o *guardOptions) {
		if nav != nil {
			o.navigator = nav
		}
	}
}

// WithGuardNotifier sets the Notifier used to surface denial notices.
func WithGuardNotifier(notifier Notifier) GuardOption {
	return func(o *guardOptions) {
		if notifier != nil {
			o.notifier = notifier
		}
	}
}

// WithGuardLogger overrides the guard logger.
func WithGuardLogger(logger Logger) GuardOption {
	return func(o *guardOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
