// Package cli provides the interactive deckkeeper command-line client.
//
// It wires configuration, local storage, the card database client and the
// application services into a read-eval-print loop. On start the previous
// session is restored if its token is still valid.
//
// Commands cover accounts (register, login, logout, whoami), card lookup
// (search, next, card, named, random, complete, sets) and deck management
// (decks, newdeck, deldeck, use, deck, add, remove). Command failures are
// reported as a single line and never end the loop.
//
// The loop is started with App.Run, which blocks until the user exits or
// input ends.
package cli
