package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/client/client"
	"github.com/dmitrijs2005/deckkeeper/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Search(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Card(ctx context.Context, args []string) error
	Named(ctx context.Context, args []string) error
	Random(ctx context.Context) error
	Complete(ctx context.Context, args []string) error
	Sets(ctx context.Context) error

	Decks(ctx context.Context) error
	NewDeck(ctx context.Context, args []string) error
	DeleteDeck(ctx context.Context, args []string) error
	Use(ctx context.Context, args []string) error
	ShowDeck(ctx context.Context) error
	AddCard(ctx context.Context, args []string) error
	RemoveCard(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, search, next, card, named, random, complete, sets, exit"
	helpLoggedIn  = "Available commands: search, next, card, named, random, complete, sets, " +
		"decks, newdeck, deldeck, use, deck, add, remove, whoami, logout, exit"
)

// runREPL reads commands line by line from in and dispatches them to a.
// The first token is the command; the rest are its arguments. The loop
// ends on EOF or on "exit"/"quit". A failing command prints one line and
// the loop carries on.
//
//	search [name words] [colors=WU] [type=creature] [rarity=rare] [set=lea] [cmc=3] [min=1] [max=4]
//	next                     next page of the last search
//	card <id> | named <name> | random | complete <prefix> | sets
//	decks | newdeck [name] | deldeck <id> | use <id> | deck
//	add <card-id> [qty] | remove <card-id>
//	register | login | logout | whoami
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("dk %s> ", statusFn()))

		line, err := in.ReadString('\n')
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
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "search", "s":
			cmdErr = a.Search(ctx, args)
		case "next", "n":
			cmdErr = a.Next(ctx)
		case "card":
			cmdErr = a.Card(ctx, args)
		case "named":
			cmdErr = a.Named(ctx, args)
		case "random":
			cmdErr = a.Random(ctx)
		case "complete":
			cmdErr = a.Complete(ctx, args)
		case "sets":
			cmdErr = a.Sets(ctx)

		case "decks":
			cmdErr = a.Decks(ctx)
		case "newdeck":
			cmdErr = a.NewDeck(ctx, args)
		case "deldeck":
			cmdErr = a.DeleteDeck(ctx, args)
		case "use":
			cmdErr = a.Use(ctx, args)
		case "deck":
			cmdErr = a.ShowDeck(ctx)
		case "add":
			cmdErr = a.AddCard(ctx, args)
		case "remove", "rm":
			cmdErr = a.RemoveCard(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmdErr))
		}

		if err != nil {
			return
		}
	}
}

// usageError reports a malformed command line.
type usageError struct {
	usage string
}

func (e usageError) Error() string { return "Usage: " + e.usage }

// describeError turns a command error into a one-line message.
func describeError(err error) string {
	var ue usageError
	var apiErr *client.Error

	switch {
	case errors.As(err, &ue):
		return ue.Error()
	case errors.Is(err, common.ErrTokenExpired):
		return "Your session has expired. Please log in again."
	case errors.Is(err, common.ErrorAuthRequired):
		return "Please log in first."
	case errors.Is(err, common.ErrorInvalidCredential):
		return "Login failed: invalid password."
	case errors.Is(err, common.ErrorDuplicateEmail):
		return "Registration failed: user already exists."
	case errors.Is(err, common.ErrorDuplicateUsername):
		return "Registration failed: username already taken."
	case errors.Is(err, common.ErrorValidation):
		return "Invalid input: " + err.Error()
	case errors.Is(err, common.ErrorNotFound):
		return "Not found: " + err.Error()
	case errors.As(err, &apiErr):
		if apiErr.Details != "" {
			return "Card service error: " + apiErr.Details
		}
		return "Card service error: " + apiErr.Error()
	default:
		return "Error: " + err.Error()
	}
}
