package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Apply(ctx context.Context) error
	Status(ctx context.Context) error
}

const (
	helpAnonymous     = "Available commands: register, login, whoami, status, exit"
	helpAuthenticated = "Available commands: (d)ashboard, apply, whoami, status, login, register, logout, exit"
	loginRequired     = "Please log in first."
)

// runREPL starts a simple read-eval-print loop for the credit-risk CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help            show available commands
//	  - register        create an account
//	  - login           authenticate (replaces any current session)
//	  - whoami          show the signed-in identity
//	  - status          show session and service status
//	  - exit | quit     leave the program
//
//	Logged in:
//	  - dashboard | d   portfolio overview
//	  - apply           evaluate a loan application
//	  - logout          log out
//
// dashboard and apply are refused while logged out. Handler errors are
// reported through userMessage and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("credit %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpAuthenticated)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "whoami":
			cmdErr = a.Whoami(ctx)

		case "status":
			cmdErr = a.Status(ctx)

		case "d", "dashboard":
			if !a.isLoggedIn() {
				printlnFn(loginRequired)
				continue
			}
			cmdErr = a.Dashboard(ctx)

		case "apply":
			if !a.isLoggedIn() {
				printlnFn(loginRequired)
				continue
			}
			cmdErr = a.Apply(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(userMessage(cmdErr))
		}
	}
}
