// Package services contains the client application services.
// This file defines the credential store and session manager: signup and
// login against the local user registry, logout, and the one-time session
// restore at startup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/localauth/internal/client/models"
	"github.com/dmitrijs2005/localauth/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/localauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/localauth/internal/common"
	"github.com/dmitrijs2005/localauth/internal/dbx"
	"github.com/dmitrijs2005/localauth/internal/logging"
)

// AuthService is the single source of truth for who is logged in.
//
// Contract:
//   - Restore: load the persisted session once at startup; never fails.
//   - Login: match email and password against the registry.
//   - Signup: register a new user and log them in.
//   - Logout: drop the session in memory and in storage.
//   - State / Current: read the session.
//   - Subscribe: get notified after every session change.
//
// Login, Signup and Logout are accepted while still Loading. Each one
// leaves Loading, after which Restore is a no-op: an explicit action wins
// over the persisted session. Validation errors are returned before
// storage is touched. Callers are expected not to run two operations at
// once.
type AuthService interface {
	Restore(ctx context.Context) models.SessionState
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	State() models.SessionState
	Current() *models.User
	Subscribe(fn func(models.SessionState)) (unsubscribe func())
}

type authService struct {
	db     *sql.DB
	logger logging.Logger

	mu        sync.RWMutex
	state     models.SessionState
	listeners map[int]func(models.SessionState)
	nextID    int
}

// NewAuthService returns a manager in the Loading state. Call Restore
// before routing the user anywhere.
func NewAuthService(db *sql.DB, logger logging.Logger) AuthService {
	return &authService{
		db:        db,
		logger:    logger.With("component", "auth"),
		state:     models.SessionState{Status: models.StatusLoading},
		listeners: make(map[int]func(models.SessionState)),
	}
}

func (a *authService) getAccountsRepo(db dbx.DBTX) *accounts.Repository {
	return accounts.NewRepository(metadata.NewSQLiteRepository(db))
}

// Restore reads the persisted session. Absent, unreadable or corrupt data
// all end in Unauthenticated; the failure is only logged. Once the manager
// has left Loading, Restore does nothing and returns the current state.
func (a *authService) Restore(ctx context.Context) models.SessionState {
	if !a.State().Loading() {
		return a.State()
	}

	u, err := a.getAccountsRepo(a.db).Session(ctx)
	if err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err)
		u = nil
	}

	status := models.StatusUnauthenticated
	if u != nil {
		status = models.StatusAuthenticated
		a.logger.Info(ctx, "session restored", "email", u.Email)
	}

	a.transition(status, u, true)
	return a.State()
}

// Login looks for a registry entry whose email and password both match
// byte for byte. The session is persisted before it becomes current, so a
// storage failure leaves the previous session in place.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := validateLogin(email, password); err != nil {
		return nil, err
	}

	repo := a.getAccountsRepo(a.db)

	users, err := repo.Users(ctx)
	if err != nil {
		return nil, a.storageError(ctx, "read registry", err)
	}

	var found *models.StoredUser
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			found = &users[i]
			break
		}
	}
	if found == nil {
		a.logger.Info(ctx, "login rejected", "email", email)
		return nil, common.ErrInvalidCredentials
	}

	u := found.SessionUser()
	if err := repo.SaveSession(ctx, u); err != nil {
		return nil, a.storageError(ctx, "save session", err)
	}

	a.transition(models.StatusAuthenticated, &u, false)
	a.logger.Info(ctx, "logged in", "email", u.Email)
	return &u, nil
}

// Signup appends a new user to the registry and makes it the session. The
// registry and the session record are written in one transaction.
//
// Email uniqueness is checked with exact string equality, so addresses that
// differ only in case are different accounts.
func (a *authService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := validateSignup(name, email, password); err != nil {
		return nil, err
	}

	stored := models.StoredUser{Name: name, Email: email, Password: password}
	u := stored.SessionUser()

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getAccountsRepo(tx)

		users, err := repo.Users(ctx)
		if err != nil {
			return err
		}
		for _, existing := range users {
			if existing.Email == email {
				return common.ErrEmailExists
			}
		}

		if err := repo.SaveUsers(ctx, append(users, stored)); err != nil {
			return err
		}
		return repo.SaveSession(ctx, u)
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			a.logger.Info(ctx, "signup rejected", "email", email, "reason", "duplicate")
			return nil, err
		}
		return nil, a.storageError(ctx, "signup", err)
	}

	a.transition(models.StatusAuthenticated, &u, false)
	a.logger.Info(ctx, "signed up", "email", u.Email)
	return &u, nil
}

// Logout always clears the in-memory session. Failing to delete the stored
// record is logged and returned, but the user is logged out regardless.
func (a *authService) Logout(ctx context.Context) error {
	a.transition(models.StatusUnauthenticated, nil, false)

	if err := a.getAccountsRepo(a.db).ClearSession(ctx); err != nil {
		a.logger.Error(ctx, "failed to delete persisted session", "error", err)
		return fmt.Errorf("%w: delete session: %w", common.ErrStorage, err)
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

// State returns a copy of the current session state.
func (a *authService) State() models.SessionState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return snapshot(a.state)
}

// Current returns a copy of the logged-in user, or nil.
func (a *authService) Current() *models.User {
	return a.State().User
}

// Subscribe registers fn for every later transition. Listeners run on the
// caller's goroutine after the lock is released.
func (a *authService) Subscribe(fn func(models.SessionState)) func() {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.listeners, id)
		a.mu.Unlock()
	}
}

// transition moves to status with user u and notifies listeners. With
// onlyFromLoading set, the change is dropped unless the manager is still
// Loading, so a late restore cannot clobber a login.
func (a *authService) transition(status models.SessionStatus, u *models.User, onlyFromLoading bool) {
	a.mu.Lock()
	if onlyFromLoading && a.state.Status != models.StatusLoading {
		a.mu.Unlock()
		return
	}
	a.state = snapshot(models.SessionState{Status: status, User: u})
	st := snapshot(a.state)
	fns := make([]func(models.SessionState), 0, len(a.listeners))
	for _, fn := range a.listeners {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

func (a *authService) storageError(ctx context.Context, op string, err error) error {
	a.logger.Error(ctx, "storage failure", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %w", common.ErrStorage, op, err)
}

func snapshot(s models.SessionState) models.SessionState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
