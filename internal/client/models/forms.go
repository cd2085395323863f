package models

import "strings"

// LoginForm is the transient input of the sign-in prompt.
type LoginForm struct {
	// Identifier is the username or email the service knows the user by.
	Identifier string `validate:"notblank" label:"username"`
	// Secret is the password. It is never logged or persisted.
	Secret string `validate:"notblank" label:"password"`
}

// Normalized returns a copy with surrounding whitespace removed from the
// identifier. The secret is passed through as typed.
func (f LoginForm) Normalized() LoginForm {
	f.Identifier = strings.TrimSpace(f.Identifier)
	return f
}

// RegisterForm is the transient input of the sign-up prompt.
type RegisterForm struct {
	Identifier string `validate:"notblank" label:"username"`
	Secret     string `validate:"notblank" label:"password"`
}

func (f RegisterForm) Normalized() RegisterForm {
	f.Identifier = strings.TrimSpace(f.Identifier)
	return f
}
