package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/creditscore/internal/common"
)

// getStatus renders the prompt decoration: the signed-in identity, if any,
// and the last observed service reachability.
func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		s = common.DisplayIdentity(a.authService.Identity(context.Background())) + " "
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, starts the status watcher and blocks in the REPL.
// A user with a stored credential lands on the dashboard straight away.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to the credit-risk CLI (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if a.isLoggedIn() {
		if err := a.Dashboard(ctx); err != nil {
			printlnFn(userMessage(err))
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
