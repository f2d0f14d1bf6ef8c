package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	guestHelp  = "Available commands: register, login, status, help, exit"
	memberHelp = "Available commands: profile, edit, avatar, status, logout, help, exit"

	msgAlreadyLoggedIn = "You are already logged in. Type 'logout' to switch accounts."
	msgLogInFirst      = "Please log in first."
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	Avatar(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the voyage CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn). Guest commands
// (register, login) redirect a signed-in user; member commands (profile,
// edit, avatar, logout) redirect a guest.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "voyage (%s) > ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, memberHelp)
			} else {
				fmt.Fprintln(w, guestHelp)
			}

		case "status":
			_ = a.Status(ctx)

		case "register", "login":
			if a.isLoggedIn() {
				fmt.Fprintln(w, msgAlreadyLoggedIn)
				continue
			}
			if cmd == "register" {
				_ = a.Register(ctx)
			} else {
				_ = a.Login(ctx)
			}

		case "profile", "edit", "avatar", "logout":
			if !a.isLoggedIn() {
				fmt.Fprintln(w, msgLogInFirst)
				continue
			}
			switch cmd {
			case "profile":
				_ = a.Profile(ctx)
			case "edit":
				_ = a.Edit(ctx)
			case "avatar":
				_ = a.Avatar(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
