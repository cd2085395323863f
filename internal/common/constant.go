// Package common contains constants and small helpers shared by the
// creditscore client packages.
package common

// TokenStorageKey is the local storage key holding the bearer credential.
// It matches the key the web frontend used in browser localStorage.
const TokenStorageKey = "token"

// RequestIDHeaderName is attached to every request sent to the auth service.
const RequestIDHeaderName = "X-Request-ID"

// PlaceholderIdentity is shown when no display subject can be decoded
// from the stored credential.
const PlaceholderIdentity = "User"
