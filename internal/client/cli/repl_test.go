package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isAdmin() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) List(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) Unregister(ctx context.Context) error {
	f.calls = append(f.calls, "unregister")
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runWith(t *testing.T, f *fakeExec, input string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)
	f := &fakeExec{}

	runWith(t, f, strings.Join([]string{
		"list",
		"login",
		"signup",
		"unregister",
		"whoami",
		"logout",
		"exit",
	}, "\n"))

	want := []string{"list", "login", "signup", "unregister", "whoami", "logout"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v", f.calls)
	}
	for i, w := range want {
		if f.calls[i] != w {
			t.Fatalf("call %d = %s, want %s", i, f.calls[i], w)
		}
	}
}

func TestRunREPL_ShortListAlias(t *testing.T) {
	silencePrintln(t)
	f := &fakeExec{}
	runWith(t, f, "l\nquit\n")
	if len(f.calls) != 1 || f.calls[0] != "list" {
		t.Fatalf("calls = %v", f.calls)
	}
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	lines := silencePrintln(t)
	f := &fakeExec{}
	runWith(t, f, "frobnicate\nexit\n")

	found := false
	for _, l := range *lines {
		if strings.Contains(l, "Unknown command") {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown command not reported: %v", *lines)
	}
}

func TestRunREPL_HelpVariesWithRole(t *testing.T) {
	lines := silencePrintln(t)
	f := &fakeExec{}
	runWith(t, f, "help\nlogin\nhelp\nexit\n")

	joined := strings.Join(*lines, "\n")
	if !strings.Contains(joined, "login, exit") {
		t.Fatalf("student help missing: %v", joined)
	}
	if !strings.Contains(joined, "signup, unregister") {
		t.Fatalf("admin help missing: %v", joined)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)
	f := &fakeExec{}
	runWith(t, f, "list\n") // no exit: EOF terminates
	if len(f.calls) != 1 {
		t.Fatalf("calls = %v", f.calls)
	}
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	silencePrintln(t)
	f := &fakeExec{}
	runWith(t, f, "\n\n   \nexit\n")
	if len(f.calls) != 0 {
		t.Fatalf("calls = %v", f.calls)
	}
}
