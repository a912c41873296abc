// Package session keeps the mock signed-in identity. No credential is verified; the user is
// persisted to the local store so it survives restarts.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"storefront/domain"
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Auth is the mock authentication state.
type Auth struct {
	mu     sync.RWMutex
	user   *domain.User
	store  domain.KeyValueStore
	clock  Clock
	logger *slog.Logger
}

func NewAuth(store domain.KeyValueStore, logger *slog.Logger) *Auth {
	return NewAuthWithClock(store, logger, systemClock{})
}

// NewAuthWithClock is useful for tests.
func NewAuthWithClock(store domain.KeyValueStore, logger *slog.Logger, clock Clock) *Auth {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Auth{store: store, clock: clock, logger: logger}
}

// Initialize restores the persisted user. Unreadable data is dropped and removed.
func (a *Auth) Initialize(ctx context.Context) error {
	raw, ok, err := a.store.Get(ctx, domain.UserKey)
	if err != nil {
		return domain.NewPersistenceError(domain.UserKey, "read", err)
	}

	var u *domain.User
	if ok {
		var decoded domain.User
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil || !isObject(raw) {
			a.logger.Warn("discarding persisted user",
				"error", domain.NewMalformedStateError(domain.UserKey, "not a user object"))
			if rerr := a.store.Remove(ctx, domain.UserKey); rerr != nil {
				a.logger.Error("remove persisted user failed", "error", rerr)
			}
		} else {
			u = &decoded
		}
	}

	a.mu.Lock()
	a.user = u
	a.mu.Unlock()
	return nil
}

// Login signs in any non-empty email/password pair as user 1, named after the email's
// local part.
func (a *Auth) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, domain.NewInvalidCredentialsError("email")
	}
	if password == "" {
		return domain.User{}, domain.NewInvalidCredentialsError("password")
	}

	name, _, _ := strings.Cut(email, "@")
	u := domain.User{ID: 1, Email: email, Name: name}
	return u, a.signIn(ctx, u)
}

// Register signs in a new user whose id is the current Unix time in milliseconds.
func (a *Auth) Register(ctx context.Context, email, password, name string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, domain.NewInvalidCredentialsError("email")
	}
	if password == "" {
		return domain.User{}, domain.NewInvalidCredentialsError("password")
	}
	if strings.TrimSpace(name) == "" {
		return domain.User{}, domain.NewInvalidCredentialsError("name")
	}

	u := domain.User{ID: a.clock.Now().UnixMilli(), Email: email, Name: strings.TrimSpace(name)}
	return u, a.signIn(ctx, u)
}

// Logout forgets the user in memory and in the store.
func (a *Auth) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()

	if err := a.store.Remove(ctx, domain.UserKey); err != nil {
		return domain.NewPersistenceError(domain.UserKey, "remove", err)
	}
	return nil
}

func (a *Auth) User() (domain.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return domain.User{}, false
	}
	return *a.user, true
}

func (a *Auth) IsAuthenticated() bool {
	_, ok := a.User()
	return ok
}

// signIn sets the user in memory first; a failed write is returned but the session stays
// signed in.
func (a *Auth) signIn(ctx context.Context, u domain.User) error {
	a.mu.Lock()
	a.user = &u
	a.mu.Unlock()

	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := a.store.Set(ctx, domain.UserKey, string(b)); err != nil {
		a.logger.Error("failed to save user", "user_id", u.ID, "error", err)
		return domain.NewPersistenceError(domain.UserKey, "write", err)
	}
	a.logger.Info("user signed in", "user_id", u.ID)
	return nil
}

func isObject(raw string) bool {
	s := strings.TrimSpace(raw)
	return len(s) > 0 && s[0] == '{'
}
