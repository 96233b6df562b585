// Package services contains the application services of the deckkeeper
// client: session handling, deck management and card search.
package services

// Storage keys shared by the services. All decks of all users live under
// KeyDecks; accounts under KeyUsers; the active session under KeyToken and
// KeyUser.
const (
	KeyDecks = "mtg_app_decks"
	KeyUsers = "mtg_app_users"
	KeyToken = "mtg_app_token"
	KeyUser  = "mtg_app_user"
)
