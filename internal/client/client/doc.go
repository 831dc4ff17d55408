// Package client is the single place where the VidWave CLI talks to the
// network.
//
// # Overview
//
// HTTPClient sends JSON requests to the three VidWave services (auth,
// dashboard and thumbnail generation), attaches the session token when a call
// needs authentication, and turns every failure into a *RequestError. The
// token itself lives in an injected session.Store; the client keeps no other
// mutable state and is safe for concurrent use.
//
// # Error Handling
//
// Non-2xx responses carry the server's "error" message, or FallbackMessage
// when the body has none. Transport failures keep the underlying error,
// reachable through errors.Unwrap. Use AsRequestError to inspect either kind.
//
// Session lifecycle
//
// Login and Register store the returned token before returning. Logout always
// clears it. CurrentUser is the only self-healing path: a token the server
// rejects is dropped and nil is returned.
package client
