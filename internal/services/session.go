package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/kvstore"
	"github.com/dmitrijs2005/storefront/internal/models"
)

const (
	KeyCurrentUser = "user"
	KeyAccounts    = "users"
)

func CartKey(identityID string) string     { return "cart-" + identityID }
func WishlistKey(identityID string) string { return "wishlist-" + identityID }

// State is the session state machine.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Result reports the outcome of Login or Signup. A rejected attempt is a
// Result with OK false, never an error.
type Result struct {
	OK       bool
	Message  string
	Identity *models.Identity
}

const (
	msgInvalidCredentials = "Invalid email or password"
	msgEmailInUse         = "Email already in use"
	msgMissingCredentials = "Email and password are required"
)

// IdentityListener is told about every identity change; nil means none.
type IdentityListener func(ctx context.Context, identity *models.Identity) error

// SessionStore owns the current identity and the account collection.
type SessionStore struct {
	mu        sync.Mutex
	store     kvstore.Store
	current   *models.Identity
	listeners []IdentityListener
	hasher    passwordHasher
	opts      options
}

// NewSessionStore returns an unauthenticated store; call Restore to pick up
// a saved session.
func NewSessionStore(store kvstore.Store, opts ...Option) (*SessionStore, error) {
	if store == nil {
		panic("services: NewSessionStore with nil store")
	}
	o := buildOptions(opts)
	hasher, err := newPasswordHasher(o.passwordScheme)
	if err != nil {
		return nil, err
	}
	return &SessionStore{
		store:  store,
		hasher: hasher,
		opts:   o,
	}, nil
}

// Restore loads the saved current-session record. Absent or malformed data
// leaves the store unauthenticated; only storage failures are returned.
func (s *SessionStore) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ident, outcome, err := kvstore.LoadJSON(ctx, s.store, KeyCurrentUser, models.Identity.Valid)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	switch outcome {
	case kvstore.Found:
		s.current = &ident
		s.opts.logger.Info(ctx, "session restored", "identity", ident.ID)
	case kvstore.Invalid:
		s.current = nil
		s.opts.logger.Warn(ctx, "ignoring malformed session record", "key", KeyCurrentUser)
	default:
		s.current = nil
	}

	return s.broadcast(ctx)
}

// Login activates the account whose email and password both match exactly.
func (s *SessionStore) Login(ctx context.Context, email, password string) (Result, error) {
	if err := s.wait(ctx); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return Result{}, err
	}

	acc, ok := findAccount(accounts, email)
	if !ok || !s.hasher.Verify(acc.Password, password) {
		s.opts.notifier.Notify("Login failed", msgInvalidCredentials, true)
		return Result{Message: msgInvalidCredentials}, nil
	}

	ident := acc.Identity()
	if err := kvstore.SaveJSON(ctx, s.store, KeyCurrentUser, ident); err != nil {
		return Result{}, fmt.Errorf("save session: %w", err)
	}
	s.current = &ident

	s.opts.logger.Info(ctx, "login", "identity", ident.ID)
	s.opts.notifier.Notify("Login successful", fmt.Sprintf("Welcome back, %s!", ident.Name), false)

	return s.succeeded(ctx, ident)
}

// Signup creates an account and activates it. The account collection and
// the current-session record are written in one atomic update.
func (s *SessionStore) Signup(ctx context.Context, name, email, password string) (Result, error) {
	if err := s.wait(ctx); err != nil {
		return Result{}, err
	}

	if email == "" || password == "" {
		s.opts.notifier.Notify("Signup failed", msgMissingCredentials, true)
		return Result{Message: msgMissingCredentials}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return Result{}, err
	}

	if emailTaken(accounts, email) {
		s.opts.notifier.Notify("Signup failed", msgEmailInUse, true)
		return Result{Message: msgEmailInUse}, nil
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return Result{}, err
	}
	acc := models.StoredAccount{
		ID:       "user-" + s.opts.newID(),
		Name:     name,
		Email:    email,
		Password: stored,
	}
	ident := acc.Identity()
	accounts = append(accounts, acc)

	err = s.store.Update(ctx, func(ctx context.Context, w kvstore.Writer) error {
		if err := kvstore.SaveJSON(ctx, w, KeyAccounts, accounts); err != nil {
			return err
		}
		return kvstore.SaveJSON(ctx, w, KeyCurrentUser, ident)
	})
	if err != nil {
		return Result{}, fmt.Errorf("save account: %w", err)
	}
	s.current = &ident

	s.opts.logger.Info(ctx, "signup", "identity", ident.ID)
	s.opts.notifier.Notify("Signup successful", fmt.Sprintf("Welcome, %s!", name), false)

	return s.succeeded(ctx, ident)
}

// Logout forgets the current identity and removes the current-session
// record. The account collection is left alone.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if s.current != nil {
		s.opts.logger.Info(ctx, "logout", "identity", s.current.ID)
	}
	s.current = nil
	s.opts.notifier.Notify("Logged out", "You have been logged out successfully", false)

	return s.broadcast(ctx)
}

// Current returns a copy of the active identity, or nil.
func (s *SessionStore) Current() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyIdentity(s.current)
}

func (s *SessionStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

// Subscribe registers l and immediately calls it with the current identity.
// Listeners run in subscription order while the session lock is held, so
// they must not call back into the SessionStore.
func (s *SessionStore) Subscribe(ctx context.Context, l IdentityListener) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
	return l(ctx, copyIdentity(s.current))
}

func (s *SessionStore) succeeded(ctx context.Context, ident models.Identity) (Result, error) {
	res := Result{OK: true, Identity: copyIdentity(&ident)}
	if err := s.broadcast(ctx); err != nil {
		return res, err
	}
	return res, nil
}

// broadcast must be called with s.mu held.
func (s *SessionStore) broadcast(ctx context.Context) error {
	var errs []error
	for _, l := range s.listeners {
		if err := l(ctx, copyIdentity(s.current)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// loadAccounts treats a malformed collection as empty.
func (s *SessionStore) loadAccounts(ctx context.Context) ([]models.StoredAccount, error) {
	accounts, outcome, err := kvstore.LoadJSON[[]models.StoredAccount](ctx, s.store, KeyAccounts, nil)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if outcome == kvstore.Invalid {
		s.opts.logger.Warn(ctx, "ignoring malformed account collection", "key", KeyAccounts)
		return nil, nil
	}
	return accounts, nil
}

func (s *SessionStore) wait(ctx context.Context) error {
	if s.opts.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.opts.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// findAccount matches email exactly, skipping entries that cannot take
// part in a lookup.
func findAccount(accounts []models.StoredAccount, email string) (models.StoredAccount, bool) {
	for _, a := range accounts {
		if a.Valid() && a.Email == email {
			return a, true
		}
	}
	return models.StoredAccount{}, false
}

func emailTaken(accounts []models.StoredAccount, email string) bool {
	for _, a := range accounts {
		if a.Email == email {
			return true
		}
	}
	return false
}

func copyIdentity(i *models.Identity) *models.Identity {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
