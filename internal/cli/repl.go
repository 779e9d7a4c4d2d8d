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
	Whoami(ctx context.Context) error
	Chat(ctx context.Context) error
	Reports(ctx context.Context) error
	AddReport(ctx context.Context) error
	EditReport(ctx context.Context) error
	DeleteReport(ctx context.Context) error
	SetReportStatus(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Haven CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account (captcha-gated)
//	  - login          authenticate (captcha-gated)
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - chat           open the support chat
//	  - reports | (r)  list your reports
//	  - addreport      file a new report
//	  - editreport     edit a report's type or description
//	  - delreport      delete a report
//	  - status         change a report's status
//	  - whoami         show the current session
//	  - logout         close the session
//	  - exit | quit    leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own inline messages. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Haven CLI (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("haven %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: chat, (r)eports, addreport, editreport, delreport, status, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "r", "reports":
			_ = a.Reports(ctx)

		case "addreport":
			_ = a.AddReport(ctx)

		case "editreport":
			_ = a.EditReport(ctx)

		case "delreport":
			_ = a.DeleteReport(ctx)

		case "status":
			_ = a.SetReportStatus(ctx)

		case "exit", "quit":
			printlnFn("Take care. Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
