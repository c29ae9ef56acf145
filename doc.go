// Package authclient implements the client side of a token-based session:
// acquiring a credential from the backend, keeping it (and the identity
// decoded from it) in a durable local store, and enforcing it everywhere the
// host application talks to the network or moves between views.
//
// Session lifecycle:
//   - Gateway owns login and logout. Login posts credentials to the backend,
//     decodes the returned token, and atomically replaces the SessionState
//     snapshot. Logout clears the snapshot and sends the navigator to the
//     login route. Gateway.IsAuthenticated recomputes expiry on every call
//     and is the single authority other components consult.
//   - SessionState holds the (credential, identity) pair, seeded from a
//     SessionStore at construction. Both values are set and cleared together;
//     subscribers observe every replacement in order, late subscribers get
//     the current snapshot immediately.
//   - ExpirationMonitor polls IsAuthenticated on a fixed interval and forces
//     a logout when the credential outlives its exp claim. It is the only
//     component that logs out without a user or network trigger.
//
// Enforcement points:
//   - AuthenticatedGuard and AdminGuard gate navigation into protected
//     views, recording the attempted destination for a post-login redirect.
//   - Transport is an http.RoundTripper that attaches the stored credential
//     as a bearer header and reacts to 401/403 responses by forcing a
//     logout before handing the response back to the caller.
//
// The package never issues or signs tokens and never verifies signatures; it
// only decodes the claims segment and inspects sub, exp, iss, and role.
package authclient
