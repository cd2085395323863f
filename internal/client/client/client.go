package client

import "context"

type Client interface {
	// Login exchanges an identifier and secret for a bearer credential.
	Login(ctx context.Context, identifier, secret string) (string, error)
	Register(ctx context.Context, identifier, secret string) error
	Ping(ctx context.Context) error
	Close() error
}
