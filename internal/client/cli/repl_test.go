package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/vidwave/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	author   bool

	refreshes     int
	refreshLogsIn bool

	calls  []string
	prompt string
	err    error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAuthor() bool   { return f.author }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.loggedIn = true
	return f.err
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return f.err
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn, f.author = false, false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) BecomeAuthor(ctx context.Context) error {
	f.calls = append(f.calls, "become-author")
	f.author = true
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error { f.calls = append(f.calls, "stats"); return nil }
func (f *fakeExec) Upload(ctx context.Context) error {
	f.calls = append(f.calls, "upload")
	return nil
}
func (f *fakeExec) Refresh(ctx context.Context) error {
	f.refreshes++
	f.loggedIn = f.refreshLogsIn
	if !f.loggedIn {
		f.author = false
	}
	return nil
}
func (f *fakeExec) Thumbnail(ctx context.Context, prompt string) error {
	f.calls = append(f.calls, "thumbnail")
	f.prompt = prompt
	return nil
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func input(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_FullAuthorFlow(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, input(
		"help",
		"login",
		"become-author",
		"stats",
		"upload",
		"thumbnail sunset over   hills",
		"logout",
		"exit",
		"whoami",
	))

	assert.Equal(t, []string{"login", "become-author", "stats", "upload", "thumbnail", "logout"}, exec.calls)
	assert.Equal(t, "sunset over hills", exec.prompt)
}

func TestRunREPL_GuardsByState(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, input(
		"stats",
		"upload",
		"logout",
		"become-author",
		"login",
		"login",
		"stats",
		"quit",
	))

	assert.Equal(t, []string{"login"}, exec.calls)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "not logged in; use login or register")
	assert.Contains(t, joined, "Already logged in; logout first")
	assert.Contains(t, joined, "author account required; use become-author")
}

func TestRunREPL_AuthorCannotBecomeAuthorTwice(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{loggedIn: true, author: true}
	runREPL(context.Background(), exec, func() string { return "s" }, input("become-author", "exit"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "You are already an author")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{err: errors.New("Invalid credentials")}
	runREPL(context.Background(), exec, func() string { return "s" }, input("login", "whoami"))

	assert.Equal(t, []string{"login", "whoami"}, exec.calls)
	assert.Contains(t, *out, "Error: Invalid credentials")
}

func TestRunREPL_UnknownAndBlankLines(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, input("", "   ", "foobar"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Unknown command: foobar")
}

func TestHelpText(t *testing.T) {
	assert.Contains(t, helpText(&fakeExec{}), "register")
	assert.Contains(t, helpText(&fakeExec{loggedIn: true}), "become-author")
	assert.Contains(t, helpText(&fakeExec{loggedIn: true, author: true}), "upload")
}

func TestRunREPL_CancelWhileWaitingForInput(t *testing.T) {
	capturePrintln(t)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runREPL(ctx, &fakeExec{}, func() string { return "s" }, bufio.NewReader(pr))
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("REPL did not stop after cancel")
	}
}

func TestRunREPL_CancelledContextRunsNothing(t *testing.T) {
	capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "s" }, input("login", "stats"))

	assert.Empty(t, exec.calls)
}

type failingExec struct {
	fakeExec
	statsErr error
}

func (f *failingExec) Stats(ctx context.Context) error {
	f.calls = append(f.calls, "stats")
	return f.statsErr
}

func TestRunREPL_UnauthorizedRevalidatesSession(t *testing.T) {
	out := capturePrintln(t)

	exec := &failingExec{
		fakeExec: fakeExec{loggedIn: true, author: true},
		statsErr: &client.RequestError{StatusCode: 401, Message: "Unauthorized"},
	}
	runREPL(context.Background(), exec, func() string { return "s" }, input("stats", "stats"))

	require.Equal(t, 1, exec.refreshes)
	assert.False(t, exec.loggedIn)
	assert.Contains(t, *out, "Session expired; please log in again")
	assert.Equal(t, []string{"stats"}, exec.calls)
}

func TestRunREPL_OtherErrorsKeepSession(t *testing.T) {
	capturePrintln(t)

	exec := &failingExec{
		fakeExec: fakeExec{loggedIn: true, author: true},
		statsErr: &client.RequestError{StatusCode: 500, Message: "boom"},
	}
	runREPL(context.Background(), exec, func() string { return "s" }, input("stats"))

	assert.Zero(t, exec.refreshes)
	assert.True(t, exec.loggedIn)
}

func TestRunREPL_FailedLoginDoesNotRevalidate(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{err: &client.RequestError{StatusCode: 401, Message: "Invalid credentials"}}
	report(context.Background(), exec, exec.err)

	assert.Zero(t, exec.refreshes)
}
