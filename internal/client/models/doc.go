// Package models defines the forms and results exchanged between the CLI
// and the client services.
package models
