package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/client/storage"
	"github.com/dmitrijs2005/deckkeeper/internal/client/token"
	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/cryptox"
	"github.com/dmitrijs2005/deckkeeper/internal/id"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
)

// AuthService manages local accounts and the active session.
//
// Contract:
//   - Login: verify email/password against the local account table and start a session.
//   - Register: create an account and start a session for it.
//   - Current: restore the persisted session; (nil, nil) when there is none.
//   - ValidateSession: report whether the persisted token is well-formed and unexpired.
//   - Logout: drop the persisted session.
//
// The token is a local marker, not a credential; see package token.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, email, username, password string) (*models.Session, error)
	Current(ctx context.Context) (*models.Session, error)
	ValidateSession(ctx context.Context) bool
	Logout(ctx context.Context) error
}

// AuthConfig tunes AuthService. Zero values select the defaults, except
// Delay where zero means no delay.
type AuthConfig struct {
	SessionTTL time.Duration
	// Delay precedes Login and Register to mimic a remote round trip.
	Delay time.Duration
	Now   func() time.Time
}

type authService struct {
	store    storage.Storage
	logger   logging.Logger
	validate *inputValidator

	ttl   time.Duration
	delay time.Duration
	now   func() time.Time

	mu sync.Mutex
}

func NewAuthService(store storage.Storage, logger logging.Logger, cfg AuthConfig) AuthService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = token.DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &authService{
		store:    store,
		logger:   logger,
		validate: newInputValidator(),
		ttl:      cfg.SessionTTL,
		delay:    cfg.Delay,
		now:      cfg.Now,
	}
}

type registerInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login looks the account up by exact email. It returns common.ErrorNotFound
// for an unknown email and common.ErrorInvalidCredential for a wrong password.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if err := a.pause(ctx); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	accounts, err := a.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	acc := findAccount(accounts, func(u models.User) bool { return u.Email == email })
	if acc == nil {
		return nil, fmt.Errorf("user %q: %w", email, common.ErrorNotFound)
	}

	if !cryptox.Verify([]byte(password), acc.Salt, acc.Verifier) {
		return nil, common.ErrorInvalidCredential
	}

	s, err := a.startSession(ctx, acc.User)
	if err != nil {
		return nil, err
	}
	a.logger.Info(ctx, "logged in", "user_id", acc.ID)
	return s, nil
}

// Register creates a new account and signs it in. Emails and usernames are
// unique; the first conflict found is reported.
func (a *authService) Register(ctx context.Context, email, username, password string) (*models.Session, error) {
	if err := a.validate.Validate(registerInput{Email: email, Username: username, Password: password}); err != nil {
		return nil, err
	}

	if err := a.pause(ctx); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	accounts, err := a.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	if findAccount(accounts, func(u models.User) bool { return u.Email == email }) != nil {
		return nil, common.ErrorDuplicateEmail
	}
	if findAccount(accounts, func(u models.User) bool { return u.Username == username }) != nil {
		return nil, common.ErrorDuplicateUsername
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, err
	}

	salt := cryptox.NewSalt()
	acc := models.Account{
		User: models.User{
			ID:        userID,
			Email:     email,
			Username:  username,
			CreatedAt: a.now().UTC(),
		},
		Salt:     salt,
		Verifier: cryptox.MakeVerifier(cryptox.DeriveKey([]byte(password), salt)),
	}

	accounts = append(accounts, acc)
	if err := storage.SetJSON(ctx, a.store, KeyUsers, accounts); err != nil {
		return nil, fmt.Errorf("save accounts: %w", err)
	}

	s, err := a.startSession(ctx, acc.User)
	if err != nil {
		return nil, err
	}
	a.logger.Info(ctx, "registered", "user_id", userID)
	return s, nil
}

// Current restores the persisted session. A malformed or expired token
// clears the session; an unreadable user record is treated as no session.
func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	tok, err := a.store.Get(ctx, KeyToken)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	rawUser, err := a.store.Get(ctx, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if len(tok) == 0 || len(rawUser) == 0 {
		return nil, nil
	}

	if _, err := token.Parse(string(tok), a.now()); err != nil {
		a.logger.Info(ctx, "session dropped", "reason", err)
		if err := a.store.Remove(ctx, KeyToken, KeyUser); err != nil {
			return nil, fmt.Errorf("clear session: %w", err)
		}
		return nil, nil
	}

	user, found, err := storage.GetJSON[models.User](ctx, a.store, KeyUser)
	if err != nil || !found {
		a.logger.Warn(ctx, "unreadable session user", "err", err)
		return nil, nil
	}

	return &models.Session{User: user, Token: string(tok)}, nil
}

func (a *authService) ValidateSession(ctx context.Context) bool {
	tok, err := a.store.Get(ctx, KeyToken)
	if err != nil || len(tok) == 0 {
		return false
	}
	_, err = token.Parse(string(tok), a.now())
	return err == nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.Remove(ctx, KeyToken, KeyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

func (a *authService) startSession(ctx context.Context, user models.User) (*models.Session, error) {
	tok, err := token.Issue(user.ID, a.now(), a.ttl)
	if err != nil {
		return nil, err
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	if err := a.store.SetMany(ctx, map[string][]byte{
		KeyToken: []byte(tok),
		KeyUser:  rawUser,
	}); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &models.Session{User: user, Token: tok}, nil
}

func (a *authService) loadAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, _, err := storage.GetJSON[[]models.Account](ctx, a.store, KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	return accounts, nil
}

func (a *authService) pause(ctx context.Context) error {
	if a.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func findAccount(accounts []models.Account, match func(models.User) bool) *models.Account {
	for i := range accounts {
		if match(accounts[i].User) {
			return &accounts[i]
		}
	}
	return nil
}
