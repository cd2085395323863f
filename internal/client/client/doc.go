// Package client talks to the external authentication service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Login,
//     Register, Ping and Close.
//  2. An HTTP implementation (see HTTPClient). Login is an OAuth2 password
//     grant posted form-encoded to /login; Register posts JSON to /register;
//     Ping probes /health. Every request is tagged with an X-Request-ID.
//
// # Error Handling
//
// Failures are returned as *AuthError values that match one of three
// sentinels with errors.Is: ErrAuthFailed (the service rejected the request
// and usually said why), ErrNetworkUnavailable (no response arrived) and
// ErrUnexpectedFailure (anything else). AuthError.Error returns the
// service's own reason string when one was supplied.
//
// The client never persists anything; storing the returned credential is
// the caller's job.
package client
