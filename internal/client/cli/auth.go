package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing.
var getSimpleText = GetSimpleText
var getMultiline = GetMultiline
var getPassword = GetPassword

// Register prompts for email, username and password, creates the account
// and signs it in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Register(ctx, email, username, string(password))
	if err != nil {
		return err
	}

	a.session = s
	fmt.Fprintf(a.out, "Welcome, %s! Your account has been created.\n", s.User.Username)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.session = s
	fmt.Fprintf(a.out, "Welcome back, %s!\n", s.User.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.dropSession(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	u := a.session.User
	fmt.Fprintf(a.out, "%s <%s> id=%s since %s\n", u.Username, u.Email, u.ID, u.CreatedAt.Format("2006-01-02"))
	return nil
}

// restoreSession picks up a session persisted by an earlier run.
func (a *App) restoreSession(ctx context.Context) {
	s, err := a.authService.Current(ctx)
	if err != nil {
		a.logger.Warn(ctx, "restore session", "err", err)
		return
	}
	if s == nil {
		return
	}
	a.session = s
	fmt.Fprintf(a.out, "Signed in as %s.\n", s.User.Username)
}

// requireSession fails with common.ErrorAuthRequired when nobody is signed
// in, and with common.ErrTokenExpired after dropping a session whose token
// is no longer valid.
func (a *App) requireSession(ctx context.Context) error {
	if a.session == nil {
		return common.ErrorAuthRequired
	}
	if a.authService.ValidateSession(ctx) {
		return nil
	}

	// Current clears the stale token and user record
	if _, err := a.authService.Current(ctx); err != nil {
		a.logger.Warn(ctx, "clear expired session", "err", err)
	}
	a.dropSession(ctx)
	return common.ErrTokenExpired
}

func (a *App) dropSession(ctx context.Context) {
	if a.session != nil {
		_ = a.deckService.SetCurrent(ctx, a.session.User.ID, "")
	}
	a.session = nil
}
