package authclient

import (
	"context"
	"net/http"
)

// SessionRevoker is what Transport calls when the backend rejects the
// credential. Gateway satisfies it.
type SessionRevoker interface {
	Logout(ctx context.Context)
}

// Transport is an http.RoundTripper that injects the stored credential into
// every outgoing request and reacts to rejection responses. It is the
// backend-initiated logout path: a 401 or 403 forces a logout even when the
// local clock still considers the credential valid (skew, server-side
// revocation), and the original response is always handed back to the caller
// so its own error handling still runs.
type Transport struct {
	base    http.RoundTripper
	state   *SessionState
	revoker SessionRevoker
	scheme  string
	logger  Logger
}

// TransportOption customizes Transport construction.
type TransportOption func(*Transport)

// WithBaseTransport sets the wrapped RoundTripper, default
// http.DefaultTransport.
func WithBaseTransport(base http.RoundTripper) TransportOption {
	return func(t *Transport) {
		if base != nil {
			t.base = base
		}
	}
}

// WithAuthScheme overrides the Authorization scheme, default "Bearer".
func WithAuthScheme(scheme string) TransportOption {
	return func(t *Transport) {
		if scheme != "" {
			t.scheme = scheme
		}
	}
}

// WithTransportLogger overrides the transport logger.
func WithTransportLogger(logger Logger) TransportOption {
	return func(t *Transport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTransport builds the credential-injecting RoundTripper. revoker is
// usually the Gateway; pass nil to disable forced logout (tests only).
func NewTransport(state *SessionState, revoker SessionRevoker, opts ...TransportOption) *Transport {
	t := &Transport{
		base:    http.DefaultTransport,
		state:   state,
		revoker: revoker,
		scheme:  "Bearer",
		logger:  defLogger{},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// RoundTrip satisfies http.RoundTripper. Requests are never mutated in
// place; a credential, when present, is attached to a shallow clone.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if snapshot := t.state.Current(); snapshot.Present() {
		clone := req.Clone(req.Context())
		clone.Header.Set("Authorization", t.scheme+" "+snapshot.Credential)
		req = clone
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		// Transport-level failures carry no verdict on the credential.
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		t.logger.Warn("backend rejected session", "status", resp.StatusCode, "url", req.URL.Path, "error", ErrSessionRejected)
		if t.revoker != nil {
			t.revoker.Logout(req.Context())
		}
	}

	return resp, nil
}
