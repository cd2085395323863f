package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/creditscore/internal/client/client"
	"github.com/dmitrijs2005/creditscore/internal/client/services"
	"github.com/dmitrijs2005/creditscore/internal/client/viewstate"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "invalid form", err: fmt.Errorf("%w: %w", services.ErrInvalidForm, errors.New("username is required")), want: "invalid form: username is required"},
		{name: "busy", err: viewstate.ErrBusy, want: "A request is already in progress, please wait."},
		{name: "reason", err: &client.AuthError{Kind: client.ErrAuthFailed, Reason: "Invalid credentials"}, want: "Invalid credentials"},
		{name: "rejected without reason", err: &client.AuthError{Kind: client.ErrAuthFailed, StatusCode: 422}, want: "The request was rejected by the auth service."},
		{name: "network", err: &client.AuthError{Kind: client.ErrNetworkUnavailable}, want: "Cannot reach the auth service. Check your connection and try again."},
		{name: "unexpected", err: &client.AuthError{Kind: client.ErrUnexpectedFailure, StatusCode: 500}, want: "Something went wrong. Please try again later."},
		{name: "cancelled", err: context.Canceled, want: "Cancelled."},
		{name: "other", err: errors.New("EOF"), want: "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}
