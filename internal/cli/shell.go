package cli

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// shellIface defines the minimal command surface the shell loop needs.
// The real App type satisfies it; tests can provide a lightweight stub.
type shellIface interface {
	isLoggedIn() bool
	OpenPage(ctx context.Context, name string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	pageCommand(name string) (commandFunc, bool)
	boundCommandNames() []string
}

// runShell starts the read-eval-print loop of the storefront shell.
//
// It reads a line, parses the first token as the command and dispatches.
// Global commands are always available:
//
//	help            show available commands
//	open <page>     navigate to a page fragment
//	login           authenticate
//	register        create an account
//	logout          clear the session
//	exit | quit     leave the program
//
// Every other command belongs to the page currently mounted; pages bind
// their commands on Mount and release them on Unmount, so the available
// surface follows navigation. Errors returned by command handlers are
// handled (printed) by the handlers themselves, keeping the loop focused
// on I/O.
func runShell(ctx context.Context, a shellIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vitrine %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			bound := a.boundCommandNames()
			sort.Strings(bound)
			printlnFn("Global commands: open <page>, login, register, logout, help, exit")
			if len(bound) > 0 {
				printlnFn("Page commands:", strings.Join(bound, ", "))
			}
			if !a.isLoggedIn() {
				printlnFn("You are not logged in; account actions will prompt for login.")
			}

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <page>")
				continue
			}
			_ = a.OpenPage(ctx, args[0])

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if fn, ok := a.pageCommand(cmd); ok {
				fn(ctx, args)
				continue
			}
			printlnFn("Unknown command:", cmd)
		}
	}
}
