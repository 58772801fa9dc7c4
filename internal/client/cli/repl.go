package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it.
type execIface interface {
	isSignedIn() bool
	SignIn(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context) error
	Email(ctx context.Context, args []string) error
	Passcode(ctx context.Context) error
	Unlock(ctx context.Context) error
	Avatar(ctx context.Context, path string) error
	Invite(ctx context.Context, toUser string) error
	Invites(ctx context.Context, args []string) error
	Accept(ctx context.Context, inviteID string) error
	Decline(ctx context.Context, inviteID string) error
	Friends(ctx context.Context) error
	SignOut(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: signin [name], help, exit"
	helpSignedIn  = "Available commands: whoami, email <addr>, passcode, unlock, avatar <file>, " +
		"invite <user>, invites [in|out] [status], accept <id>, decline <id>, friends, signout, exit"
)

// runREPL reads one command per line and dispatches it to a until EOF,
// exit or quit. Handlers report their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("t4gged %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "signin":
			_ = a.SignIn(ctx, args)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "email":
			_ = a.Email(ctx, args)

		case "passcode":
			_ = a.Passcode(ctx)

		case "unlock":
			_ = a.Unlock(ctx)

		case "avatar":
			if len(args) != 1 {
				printlnFn("Usage: avatar <file>")
				continue
			}
			_ = a.Avatar(ctx, args[0])

		case "invite":
			if len(args) != 1 {
				printlnFn("Usage: invite <user>")
				continue
			}
			_ = a.Invite(ctx, args[0])

		case "invites":
			_ = a.Invites(ctx, args)

		case "accept":
			if len(args) != 1 {
				printlnFn("Usage: accept <id>")
				continue
			}
			_ = a.Accept(ctx, args[0])

		case "decline":
			if len(args) != 1 {
				printlnFn("Usage: decline <id>")
				continue
			}
			_ = a.Decline(ctx, args[0])

		case "friends":
			_ = a.Friends(ctx)

		case "signout":
			_ = a.SignOut(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
