package cli

import (
	"bufio"
	"context"
	"fmt"
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
	Me(ctx context.Context) error
	Menu(ctx context.Context) error
	Feed(ctx context.Context) error
	Settings(ctx context.Context) error
	Refresh(ctx context.Context) error
	Enroll(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Exclude(ctx context.Context, args []string) error
	DeleteFace(ctx context.Context, args []string) error
	ChatID(ctx context.Context, args []string) error
	Name(ctx context.Context, args []string) error
	Clear(ctx context.Context, args []string) error
	Open(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the facecam client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. Unknown commands are reported back to the user. The loop exits
// on scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                 show available commands
//	  - register             create an account
//	  - login                authenticate
//	  - exit | quit          leave the program
//
//	Logged in:
//	  - feed | f             show the frames, newest first
//	  - settings | s         show cameras, faces and the chat id
//	  - refresh | r          reload everything
//	  - menu | me            options menu / current user
//	  - enroll <id> <name>   link a camera
//	  - rename <id> <name>   rename a camera
//	  - exclude <id>         unlink a camera
//	  - deleteface <name>    forget a face
//	  - chatid <id>          set the Telegram chat id
//	  - name <n> <face>      save frame n as a face (again to cancel)
//	  - clear <n>            remove frame n
//	  - open <n>             print the image link of frame n
//	  - download <n> <path>  save the image of frame n
//	  - logout               log out
//
// Errors returned by command handlers are ignored here; handlers report to
// the user and log on their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("facecam %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (f)eed, (s)ettings, (r)efresh, menu, me, enroll, rename, exclude, deleteface, chatid, name, clear, open, download, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "me":
			_ = a.Me(ctx)

		case "menu":
			_ = a.Menu(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "s", "settings":
			_ = a.Settings(ctx)

		case "r", "refresh":
			_ = a.Refresh(ctx)

		case "enroll":
			_ = a.Enroll(ctx, args)

		case "rename":
			_ = a.Rename(ctx, args)

		case "exclude":
			_ = a.Exclude(ctx, args)

		case "deleteface":
			_ = a.DeleteFace(ctx, args)

		case "chatid":
			_ = a.ChatID(ctx, args)

		case "name":
			_ = a.Name(ctx, args)

		case "clear":
			_ = a.Clear(ctx, args)

		case "open":
			_ = a.Open(ctx, args)

		case "download":
			_ = a.Download(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
