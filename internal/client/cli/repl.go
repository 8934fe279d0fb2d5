package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printfFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printfFn  = fmt.Printf
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	activeScreen() screen
	status() string
	syncScreen()

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami()

	ListGroups(ctx context.Context) error
	CreateGroup(ctx context.Context) error
	OpenGroup(ctx context.Context, arg string) error

	ShowExpenses()
	ShowBalance()
	ShowSettlements()
	ShowMembers()
	AddExpense(ctx context.Context) error
	AddMember(ctx context.Context) error
	RemoveMember(ctx context.Context) error
	Settle(ctx context.Context, arg string) error
	Refresh(ctx context.Context) error
	Back()
}

// runREPL reads a line, parses the first token as the command, and dispatches
// to methods on 'a' according to the active screen. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. After every command the loop re-checks the session so a
// forced logout (401 observed by the transport) lands the user back on the
// sign-in screen at the next prompt.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printfFn("splits %s> ", a.status())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		switch a.activeScreen() {
		case screenAuth:
			switch cmd {
			case "help":
				printlnFn("Available commands: login, register, exit")
			case "login":
				_ = a.Login(ctx)
			case "register":
				_ = a.Register(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case screenDashboard:
			switch cmd {
			case "help":
				printlnFn("Available commands: (l)ist, create, open <number>, whoami, logout, exit")
			case "l", "list":
				_ = a.ListGroups(ctx)
			case "create":
				_ = a.CreateGroup(ctx)
			case "open":
				if len(args) == 0 {
					printlnFn("Usage: open <number>")
					continue
				}
				_ = a.OpenGroup(ctx, args[0])
			case "whoami":
				a.Whoami()
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case screenGroup:
			switch cmd {
			case "help":
				printlnFn("Available commands: expenses, balance, settlements, members,")
				printlnFn("  addexpense, addmember, removemember, settle <number>, refresh, back, exit")
			case "expenses":
				a.ShowExpenses()
			case "balance":
				a.ShowBalance()
			case "settlements":
				a.ShowSettlements()
			case "members":
				a.ShowMembers()
			case "addexpense":
				_ = a.AddExpense(ctx)
			case "addmember":
				_ = a.AddMember(ctx)
			case "removemember":
				_ = a.RemoveMember(ctx)
			case "settle":
				if len(args) == 0 {
					printlnFn("Usage: settle <number>")
					continue
				}
				_ = a.Settle(ctx, args[0])
			case "refresh":
				_ = a.Refresh(ctx)
			case "back":
				a.Back()
			default:
				printlnFn("Unknown command:", cmd)
			}
		}

		a.syncScreen()
	}
}
