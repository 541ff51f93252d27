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
	Chat(ctx context.Context) error
	Tasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	ToggleTask(ctx context.Context) error
	DeleteTask(ctx context.Context) error
	Feed(ctx context.Context) error
	AddPost(ctx context.Context) error
	LikePost(ctx context.Context) error
	CommentPost(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	News(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the NovaBiz CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Anonymous users can only register, login, or leave; everything else
// requires an open session. Errors returned by command handlers are ignored
// here; handlers log their own errors. This keeps the loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nova> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: chat, tasks, addtask, toggle, rmtask, feed, post, like, comment, profile, editprofile, news, logout, exit")

		case "chat":
			_ = a.Chat(ctx)

		case "t", "tasks":
			_ = a.Tasks(ctx)

		case "addtask":
			_ = a.AddTask(ctx)

		case "toggle":
			_ = a.ToggleTask(ctx)

		case "rmtask":
			_ = a.DeleteTask(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "post":
			_ = a.AddPost(ctx)

		case "like":
			_ = a.LikePost(ctx)

		case "comment":
			_ = a.CommentPost(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "news":
			_ = a.News(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
