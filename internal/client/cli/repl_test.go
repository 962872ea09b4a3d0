package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.loggedIn = true
	return f.record("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Me(ctx context.Context) error       { return f.record("me", nil) }
func (f *fakeExec) Menu(ctx context.Context) error     { return f.record("menu", nil) }
func (f *fakeExec) Feed(ctx context.Context) error     { return f.record("feed", nil) }
func (f *fakeExec) Settings(ctx context.Context) error { return f.record("settings", nil) }
func (f *fakeExec) Refresh(ctx context.Context) error  { return f.record("refresh", nil) }
func (f *fakeExec) Enroll(ctx context.Context, args []string) error {
	return f.record("enroll", args)
}
func (f *fakeExec) Rename(ctx context.Context, args []string) error {
	return f.record("rename", args)
}
func (f *fakeExec) Exclude(ctx context.Context, args []string) error {
	return f.record("exclude", args)
}
func (f *fakeExec) DeleteFace(ctx context.Context, args []string) error {
	return f.record("deleteface", args)
}
func (f *fakeExec) ChatID(ctx context.Context, args []string) error {
	return f.record("chatid", args)
}
func (f *fakeExec) Name(ctx context.Context, args []string) error { return f.record("name", args) }
func (f *fakeExec) Clear(ctx context.Context, args []string) error {
	return f.record("clear", args)
}
func (f *fakeExec) Open(ctx context.Context, args []string) error { return f.record("open", args) }
func (f *fakeExec) Download(ctx context.Context, args []string) error {
	return f.record("download", args)
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silence(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"f",
		"settings",
		"r",
		"enroll cam1 Front door",
		"rename cam1 Back door",
		"exclude cam1",
		"deleteface bob",
		"chatid 42",
		"name 2 Bob",
		"clear 1",
		"open 1",
		"download 1 /tmp/x.jpg",
		"menu",
		"me",
		"logout",
		"exit",
		"feed",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"login", "feed", "settings", "refresh", "enroll", "rename", "exclude",
		"deleteface", "chatid", "name", "clear", "open", "download", "menu", "me", "logout",
	}, exec.calls, "nothing after exit runs")
	assert.Equal(t, []string{"cam1", "Front", "door"}, exec.args["enroll"])
	assert.Equal(t, []string{"2", "Bob"}, exec.args["name"])
	assert.Equal(t, []string{"1", "/tmp/x.jpg"}, exec.args["download"])
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	printed := silence(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("\nfoobar\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *printed, "Unknown command: foobar")
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	printed := silence(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\n")))
	assert.Contains(t, *printed, "Available commands: register, login, exit")

	*printed = nil
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\n")))
	found := false
	for _, p := range *printed {
		if strings.Contains(p, "enroll") && strings.Contains(p, "logout") {
			found = true
		}
	}
	assert.True(t, found, "logged-in help lists camera commands: %v", *printed)
}
