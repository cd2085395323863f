package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/creditscore/internal/client/models"
	"github.com/dmitrijs2005/creditscore/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an identifier and password and creates an account.
// Registration does not sign the user in.
//
// The password byte slice is wiped before returning. Service errors are
// returned unchanged for the REPL to report.
func (a *App) Register(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, models.RegisterForm{Identifier: identifier, Secret: string(password)}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registration successful. You can now log in.")
	return nil
}

// Login prompts for credentials and signs in. On success the dashboard is
// shown straight away.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, models.LoginForm{Identifier: identifier, Secret: string(password)}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return a.Dashboard(ctx)
}

// Logout drops the stored credential and returns to the anonymous view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", common.DisplayIdentity(a.authService.Identity(ctx)))
	return nil
}
