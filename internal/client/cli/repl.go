package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/vidwave/internal/client/client"
	"github.com/dmitrijs2005/vidwave/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAuthor() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	BecomeAuthor(ctx context.Context) error
	Stats(ctx context.Context) error
	Upload(ctx context.Context) error
	Thumbnail(ctx context.Context, prompt string) error
	Refresh(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands
//
//	Any state:
//	  - help               show available commands
//	  - whoami             show the logged-in user
//	  - thumbnail [prompt] generate a cover image
//	  - exit | quit        leave the program
//
//	Not logged in:
//	  - register, login
//
//	Logged in:
//	  - logout, become-author
//
//	Author:
//	  - stats, upload
//
// Command errors are printed and the loop continues. Cancelling ctx ends the
// loop even while it waits for input.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("vw %s> ", statusFn()))
		line, err := readLine(ctx, reader)
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a))

		case "register", "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in; logout first")
				continue
			}
			if cmd == "register" {
				report(ctx, a, a.Register(ctx))
			} else {
				report(ctx, a, a.Login(ctx))
			}

		case "logout":
			if requireLogin(a) {
				report(ctx, a, a.Logout(ctx))
			}

		case "whoami":
			report(ctx, a, a.WhoAmI(ctx))

		case "become-author":
			if !requireLogin(a) {
				continue
			}
			if a.isAuthor() {
				printlnFn("You are already an author")
				continue
			}
			report(ctx, a, a.BecomeAuthor(ctx))

		case "stats":
			if requireAuthor(a) {
				report(ctx, a, a.Stats(ctx))
			}

		case "upload":
			if requireAuthor(a) {
				report(ctx, a, a.Upload(ctx))
			}

		case "thumbnail":
			report(ctx, a, a.Thumbnail(ctx, strings.Join(args, " ")))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func helpText(a execIface) string {
	switch {
	case a.isAuthor():
		return "Available commands: whoami, stats, upload, thumbnail, logout, exit"
	case a.isLoggedIn():
		return "Available commands: whoami, become-author, thumbnail, logout, exit"
	}
	return "Available commands: register, login, whoami, thumbnail, exit"
}

func requireLogin(a execIface) bool {
	if !a.isLoggedIn() {
		printlnFn(common.ErrNotLoggedIn.Error() + "; use login or register")
		return false
	}
	return true
}

func requireAuthor(a execIface) bool {
	if !requireLogin(a) {
		return false
	}
	if !a.isAuthor() {
		printlnFn(common.ErrNotAuthor.Error() + "; use become-author")
		return false
	}
	return true
}

// report prints a command error. A 401 while logged in means the stored
// session expired server-side, so the cached user is re-validated.
func report(ctx context.Context, a execIface, err error) {
	if err == nil {
		return
	}
	printlnFn("Error:", err.Error())

	if re, ok := client.AsRequestError(err); ok && re.IsUnauthorized() && a.isLoggedIn() {
		if rerr := a.Refresh(ctx); rerr != nil {
			printlnFn("Error:", rerr.Error())
		}
		if !a.isLoggedIn() {
			printlnFn("Session expired; please log in again")
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one line without blocking past ctx. The read goroutine is
// only started for the line being waited on, so prompts issued by commands
// see the rest of the input.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}
