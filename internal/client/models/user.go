package models

import "time"

// User is the public account record. It never carries credentials.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Account is the row kept in the local account table.
type Account struct {
	User
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

// Session pairs the signed-in user with their (mock) token.
type Session struct {
	User  User
	Token string
}
