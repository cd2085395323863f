package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/creditscore/internal/client/client"
	"github.com/dmitrijs2005/creditscore/internal/client/services"
	"github.com/dmitrijs2005/creditscore/internal/client/viewstate"
)

// userMessage turns a command error into the line shown to the user.
func userMessage(err error) string {
	var authErr *client.AuthError

	switch {
	case errors.Is(err, services.ErrInvalidForm):
		return err.Error()
	case errors.Is(err, viewstate.ErrBusy):
		return "A request is already in progress, please wait."
	case errors.Is(err, client.ErrAuthFailed):
		if errors.As(err, &authErr) && authErr.Reason != "" {
			return authErr.Reason
		}
		return "The request was rejected by the auth service."
	case errors.Is(err, client.ErrNetworkUnavailable):
		return "Cannot reach the auth service. Check your connection and try again."
	case errors.Is(err, client.ErrUnexpectedFailure):
		return "Something went wrong. Please try again later."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Cancelled."
	default:
		return err.Error()
	}
}
