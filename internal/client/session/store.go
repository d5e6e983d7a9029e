// Package session owns the client-side credential lifecycle: it is the single
// authoritative state machine for "who is logged in", persists the session
// across restarts, and funnels every mutation through its declared
// operations. UI layers observe it; they never touch the persisted credential
// directly.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rentora/rentora/internal/client/api"
	"github.com/rentora/rentora/internal/client/models"
	"github.com/rentora/rentora/internal/client/repositories/metadata"
	"github.com/rentora/rentora/internal/logging"
)

// ErrNoActiveSession is returned by operations that require an authenticated
// user when none is present. No network call is made in that case.
var ErrNoActiveSession = errors.New("no active session")

const initFailedMessage = "Failed to initialize authentication"

// Backend is the slice of the REST API the session store drives.
// *api.REST satisfies it.
type Backend interface {
	Login(ctx context.Context, creds models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

// State is a snapshot of the session.
//
// Invariants: IsAuthenticated is true exactly when User is non-nil;
// IsLoading is true only while an operation is in flight. LastError holds the
// message of the last failed operation ("" when absent) and stays set until
// the next operation starts or ClearError is called.
type State struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	LastError       string
}

// Store is the session state machine. Overlapping operations are not queued
// or rejected: whichever resolves last wins, exactly like the mobile client
// this replaces.
type Store struct {
	backend Backend
	db      *sql.DB
	log     logging.Logger

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

// NewStore binds the store to the backend API and the local database holding
// the persisted credential.
func NewStore(backend Backend, db *sql.DB, log logging.Logger) *Store {
	return &Store{
		backend: backend,
		db:      db,
		log:     log,
		subs:    make(map[int]func(State)),
	}
}

func (s *Store) meta() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// set applies mutate under the lock and notifies subscribers outside it.
func (s *Store) set(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// errMessage extracts the user-facing message recorded into LastError.
func errMessage(err error) string {
	if apiErr, ok := api.AsError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}

// Initialize rehydrates the session on process start. With no stored
// credential it settles in the anonymous state. With a stored pair it
// optimistically restores the cached profile, then verifies the credential by
// fetching the current user; the server copy replaces the cached one. A
// failed liveness check is treated as routine expiry: the persisted pair is
// cleared and no error is surfaced. Whatever branch is taken, the store ends
// settled and not loading.
func (s *Store) Initialize(ctx context.Context) error {
	s.set(func(st *State) { st.IsLoading = true })

	token, err := s.meta().Get(ctx, api.KeyAccessToken)
	if err != nil {
		return s.failInitialize(ctx, err)
	}
	userData, err := s.meta().Get(ctx, api.KeyUserData)
	if err != nil {
		return s.failInitialize(ctx, err)
	}

	if len(token) == 0 || len(userData) == 0 {
		s.set(func(st *State) {
			st.User = nil
			st.IsAuthenticated = false
			st.IsLoading = false
		})
		return nil
	}

	var cached models.User
	if err := json.Unmarshal(userData, &cached); err != nil {
		return s.failInitialize(ctx, err)
	}

	// Optimistic restore while the liveness check is in flight.
	s.set(func(st *State) {
		st.User = &cached
		st.IsAuthenticated = true
	})

	current, err := s.backend.CurrentUser(ctx)
	if err != nil {
		if cerr := s.clearPersisted(ctx); cerr != nil {
			s.log.Warn(ctx, "failed to clear rejected session", "error", cerr)
		}
		s.set(func(st *State) {
			st.User = nil
			st.IsAuthenticated = false
			st.IsLoading = false
		})
		s.log.Info(ctx, "stored session no longer valid, starting anonymous", "reason", errMessage(err))
		return nil
	}

	s.set(func(st *State) {
		st.User = current
		st.IsAuthenticated = true
		st.IsLoading = false
	})
	s.log.Debug(ctx, "session restored", "user", current.Username)
	return nil
}

func (s *Store) failInitialize(ctx context.Context, err error) error {
	s.set(func(st *State) {
		st.User = nil
		st.IsAuthenticated = false
		st.IsLoading = false
		st.LastError = initFailedMessage
	})
	s.log.Error(ctx, "session initialization failed", "error", err)
	return fmt.Errorf("failed to initialize session: %w", err)
}

// Login authenticates against the backend and persists the returned
// credential and profile. On failure the store records the message into
// LastError and returns the error as well, so the invoking screen can alert
// immediately.
func (s *Store) Login(ctx context.Context, creds models.LoginRequest) error {
	s.set(func(st *State) {
		st.IsLoading = true
		st.LastError = ""
	})

	resp, err := s.backend.Login(ctx, creds)
	if err != nil {
		s.set(func(st *State) {
			st.User = nil
			st.IsAuthenticated = false
			st.IsLoading = false
			st.LastError = errMessage(err)
		})
		return err
	}

	if err := s.persistSession(ctx, resp); err != nil {
		s.set(func(st *State) {
			st.User = nil
			st.IsAuthenticated = false
			st.IsLoading = false
			st.LastError = errMessage(err)
		})
		return err
	}

	user := resp.User
	s.set(func(st *State) {
		st.User = &user
		st.IsAuthenticated = true
		st.IsLoading = false
		st.LastError = ""
	})
	s.log.Info(ctx, "logged in", "user", user.Username)
	return nil
}

// Register creates the account and, on success, immediately logs in with the
// same credentials to establish a session. If account creation fails, no
// login is attempted.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) error {
	s.set(func(st *State) {
		st.IsLoading = true
		st.LastError = ""
	})

	if _, err := s.backend.Register(ctx, req); err != nil {
		s.set(func(st *State) {
			st.IsLoading = false
			st.LastError = errMessage(err)
		})
		return err
	}

	return s.Login(ctx, models.LoginRequest{Username: req.Username, Password: req.Password})
}

// Logout notifies the backend on a best-effort basis and then tears the local
// session down unconditionally. A failing remote call is logged, never
// surfaced: the local state must end anonymous regardless of backend
// reachability.
func (s *Store) Logout(ctx context.Context) error {
	s.set(func(st *State) { st.IsLoading = true })

	if err := s.backend.Logout(ctx); err != nil {
		s.log.Warn(ctx, "remote logout failed, proceeding with local teardown", "error", err)
	}

	if err := s.clearPersisted(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted session", "error", err)
	}

	s.set(func(st *State) {
		st.User = nil
		st.IsAuthenticated = false
		st.IsLoading = false
		st.LastError = ""
	})
	s.log.Info(ctx, "logged out")
	return nil
}

// ClearError resets LastError. Calling it with no error recorded is a no-op.
func (s *Store) ClearError() {
	s.set(func(st *State) { st.LastError = "" })
}

// UpdateProfile sends the edited fields and persists the full profile the
// server returns, replacing the in-memory copy wholesale. It fails with
// ErrNoActiveSession before any network call when nobody is logged in.
func (s *Store) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	s.mu.Lock()
	hasUser := s.state.User != nil
	s.mu.Unlock()
	if !hasUser {
		return ErrNoActiveSession
	}

	s.set(func(st *State) {
		st.IsLoading = true
		st.LastError = ""
	})

	updated, err := s.backend.UpdateProfile(ctx, patch)
	if err != nil {
		s.set(func(st *State) {
			st.IsLoading = false
			st.LastError = errMessage(err)
		})
		return err
	}

	if err := s.persistUser(ctx, updated); err != nil {
		s.set(func(st *State) {
			st.IsLoading = false
			st.LastError = errMessage(err)
		})
		return err
	}

	s.set(func(st *State) {
		st.User = updated
		st.IsLoading = false
	})
	return nil
}

// ChangePassword swaps the account password. The user and authentication
// state are left untouched either way.
func (s *Store) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	s.set(func(st *State) {
		st.IsLoading = true
		st.LastError = ""
	})

	if err := s.backend.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		s.set(func(st *State) {
			st.IsLoading = false
			st.LastError = errMessage(err)
		})
		return err
	}

	s.set(func(st *State) { st.IsLoading = false })
	return nil
}
