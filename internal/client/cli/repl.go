package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Products(ctx context.Context, args []string) error
	Deals(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Qty(ctx context.Context, args []string) error
	Cart(ctx context.Context) error
	Clear(ctx context.Context) error
	Checkout(ctx context.Context) error
	Wish(ctx context.Context, args []string) error
	Wishlist(ctx context.Context) error
}

const (
	helpGuest = "Available commands: signup, login, products [category], deals, search <text> [-c category] [-s sort], show <id>, exit"
	helpUser  = "Available commands: products [category], deals, search, show <id>, add <id> [size] [qty], remove <id> [size], " +
		"qty <id> <n> [size], cart, clear, checkout, wish <id>, wishlist, whoami, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The prompt shows the current status (from statusFn). Command errors are
// printed and the loop continues. The loop exits on EOF or when the user
// types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}

		case "signup", "register":
			cmdErr = a.Signup(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "products", "p":
			cmdErr = a.Products(ctx, args)
		case "deals":
			cmdErr = a.Deals(ctx)
		case "search":
			cmdErr = a.Search(ctx, args)
		case "show":
			cmdErr = a.Show(ctx, args)

		case "add":
			cmdErr = a.Add(ctx, args)
		case "remove", "rm":
			cmdErr = a.Remove(ctx, args)
		case "qty":
			cmdErr = a.Qty(ctx, args)
		case "cart":
			cmdErr = a.Cart(ctx)
		case "clear":
			cmdErr = a.Clear(ctx)
		case "checkout":
			cmdErr = a.Checkout(ctx)

		case "wish":
			cmdErr = a.Wish(ctx, args)
		case "wishlist":
			cmdErr = a.Wishlist(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if errors.Is(err, io.EOF) {
			return
		}
	}
}
