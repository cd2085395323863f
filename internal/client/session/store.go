// Package session holds the client's single bearer credential.
//
// A Store keeps at most one credential: Save overwrites, Clear removes.
// Load and CurrentIdentity never fail; storage problems are logged and
// reported as an absent credential so the UI can fall back to the anonymous
// view.
package session

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

type Store interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, bool)
	Clear(ctx context.Context) error
	CurrentIdentity(ctx context.Context) (string, bool)
}

// identityClaims lists the payload fields tried, in order, for a display
// subject.
var identityClaims = []string{"sub", "email", "username"}

// DecodeIdentity extracts a display subject from a JWT-shaped credential.
// The signature is not checked: the token is opaque to the client and the
// result is used for greeting text only.
func DecodeIdentity(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", false
	}

	for _, name := range identityClaims {
		if v, ok := claims[name].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
