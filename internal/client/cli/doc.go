// Package cli provides the interactive credit-risk command-line client.
//
// It wires configuration, local credential storage, the auth client and the
// services into an interactive REPL. The screen shown follows the session:
// anonymous users can register and log in; signed-in users see the portfolio
// dashboard and can submit loan applications for evaluation.
//
// A background watcher pings the auth service and shows online/offline in
// the prompt.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
