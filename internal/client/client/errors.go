package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrAuthFailed         = errors.New("authentication failed")
	ErrNetworkUnavailable = errors.New("auth service unavailable")
	ErrUnexpectedFailure  = errors.New("unexpected failure")
)

// AuthError is the single error type returned by HTTPClient.
// Kind is one of the package sentinels.
type AuthError struct {
	Kind       error
	Reason     string
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	switch {
	case e.Reason != "":
		return e.Reason
	case e.StatusCode != 0:
		return fmt.Sprintf("%v (status %d)", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

func (e *AuthError) Is(target error) bool {
	return target == e.Kind
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// reasonFields are checked in order; the first string value wins.
var reasonFields = []string{"detail", "error_description", "message", "error"}

func reasonFromBody(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, f := range reasonFields {
		if s, ok := payload[f].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// statusError classifies a completed response that was not a success.
func statusError(code int, body []byte) *AuthError {
	if code >= 400 && code < 500 {
		return &AuthError{Kind: ErrAuthFailed, Reason: reasonFromBody(body), StatusCode: code}
	}
	return &AuthError{Kind: ErrUnexpectedFailure, StatusCode: code}
}
