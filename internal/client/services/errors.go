package services

import "errors"

// ErrInvalidForm is returned when a form fails validation. No request has
// been sent when it is returned.
var ErrInvalidForm = errors.New("invalid form")
