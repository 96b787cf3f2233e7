package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Signup(ctx context.Context) error
	Unregister(ctx context.Context) error
	Whoami(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the activities CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Mutating commands exist for everyone at the prompt; the authorization
// gate lives in the services, so an unauthenticated signup never leaves
// the process.
//
// Any errors returned by command handlers are ignored here; handlers
// surface their own messages. This keeps the loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("activities %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isAdmin() {
				printlnFn("Available commands: (l)ist, signup, unregister, whoami, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, whoami, login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "unregister":
			_ = a.Unregister(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
