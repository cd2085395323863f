// Package services contains application services for the credit-risk client.
// This file defines the authentication service: login, register, logout,
// identity lookup and the liveness probe used by the status watcher.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/creditscore/internal/client/client"
	"github.com/dmitrijs2005/creditscore/internal/client/models"
	"github.com/dmitrijs2005/creditscore/internal/client/session"
	"github.com/dmitrijs2005/creditscore/internal/client/viewstate"
	"github.com/dmitrijs2005/creditscore/internal/logging"
	"github.com/dmitrijs2005/creditscore/internal/validation"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: validate, authenticate against the service, store the credential.
//   - Register: validate and create an account. No credential is issued.
//   - Logout: drop the stored credential.
//   - Identity: display subject of the stored credential, if any.
//   - State: the current view.
//   - Ping: check service liveness.
//   - Close: release underlying client resources.
//
// Errors returned by Login and Register are ErrInvalidForm, viewstate.ErrBusy
// or the client's *client.AuthError unchanged.
type AuthService interface {
	Login(ctx context.Context, form models.LoginForm) error
	Register(ctx context.Context, form models.RegisterForm) error
	Logout(ctx context.Context) error
	Identity(ctx context.Context) (string, bool)
	State() viewstate.State
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  session.Store
	view   *viewstate.Switch
	logger logging.Logger
}

// NewAuthService constructs an AuthService. view must have been created from
// the store's state at startup.
func NewAuthService(c client.Client, store session.Store, view *viewstate.Switch, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{client: c, store: store, view: view, logger: logger}
}

func (a *authService) Login(ctx context.Context, form models.LoginForm) error {
	form = form.Normalized()
	if err := validation.Struct(form); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	if err := a.view.Begin(); err != nil {
		return err
	}
	ok := false
	defer func() {
		if !ok {
			a.view.Fail()
		}
	}()

	token, err := a.client.Login(ctx, form.Identifier, form.Secret)
	if err != nil {
		a.logFailure(ctx, "login failed", form.Identifier, err)
		return err
	}

	if err := a.store.Save(ctx, token); err != nil {
		a.logger.Error(ctx, "credential not saved", "identifier", form.Identifier, "error", err)
		return fmt.Errorf("%w: %w", client.ErrUnexpectedFailure, err)
	}

	ok = true
	a.view.Succeed()
	a.logger.Info(ctx, "login succeeded", "identifier", form.Identifier)
	return nil
}

func (a *authService) Register(ctx context.Context, form models.RegisterForm) error {
	form = form.Normalized()
	if err := validation.Struct(form); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	if err := a.view.Begin(); err != nil {
		return err
	}
	// registration issues no credential, so the view returns to where it was
	defer a.view.Fail()

	if err := a.client.Register(ctx, form.Identifier, form.Secret); err != nil {
		a.logFailure(ctx, "registration failed", form.Identifier, err)
		return err
	}

	a.logger.Info(ctx, "registration succeeded", "identifier", form.Identifier)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.view.Logout()
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "credential not cleared", "error", err)
		return err
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

func (a *authService) Identity(ctx context.Context) (string, bool) {
	return a.store.CurrentIdentity(ctx)
}

func (a *authService) State() viewstate.State {
	return a.view.State()
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func (a *authService) logFailure(ctx context.Context, msg, identifier string, err error) {
	if errors.Is(err, client.ErrAuthFailed) || errors.Is(err, client.ErrNetworkUnavailable) {
		a.logger.Warn(ctx, msg, "identifier", identifier, "error", err)
		return
	}
	a.logger.Error(ctx, msg, "identifier", identifier, "error", err)
}
