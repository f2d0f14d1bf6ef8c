package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/voyage/internal/client/client"
	"github.com/dmitrijs2005/voyage/internal/client/models"
	"github.com/dmitrijs2005/voyage/internal/client/storage"
	"github.com/dmitrijs2005/voyage/internal/common"
	"github.com/dmitrijs2005/voyage/internal/logging"
)

// Store holds the signed-in user and mirrors it to storage. It is safe for
// concurrent use; operations run one at a time.
type Store struct {
	client client.Client
	scopes storage.Scopes
	logger logging.Logger

	// opMu serializes operations; mu guards the fields below it.
	opMu sync.Mutex

	mu      sync.RWMutex
	user    *models.User
	pending int

	subMu  sync.Mutex
	subs   map[int]func(State)
	nextID int
}

// New builds a Store and hydrates it from the durable scope.
func New(ctx context.Context, c client.Client, scopes storage.Scopes, logger logging.Logger) *Store {
	s := &Store{
		client: c,
		scopes: scopes,
		logger: logger.With("component", "session"),
		subs:   make(map[int]func(State)),
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	s.begin()
	defer s.end()

	data, err := s.scopes.Durable.Get(ctx, storage.UserKey)
	if errors.Is(err, common.ErrorNotFound) {
		return
	}
	if err != nil {
		s.logger.Error(ctx, "failed to read stored user", "error", err)
		return
	}

	user, err := models.DecodeUser(data)
	if err != nil {
		s.logger.Warn(ctx, "discarding stored user", "error", err)
		if err := s.scopes.Durable.Delete(ctx, storage.UserKey); err != nil {
			s.logger.Error(ctx, "failed to remove stored user", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.logger.Debug(ctx, "session restored", "user_id", user.ID)
}

// State returns a snapshot of the session. The user, if any, is a copy.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *Store) stateLocked() State {
	st := State{Loading: s.pending > 0}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

// CurrentUser returns a copy of the signed-in user and whether there is one.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsLoading reports whether any operation is pending.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending > 0
}

// Subscribe registers fn to receive a snapshot after every change, including
// loading toggles. fn runs on the goroutine that made the change and must not
// call back into a Store operation. The returned func removes the listener.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(st State) {
	s.subMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

func (s *Store) begin() {
	s.mu.Lock()
	s.pending++
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}

func (s *Store) end() {
	s.mu.Lock()
	s.pending--
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}

func (s *Store) commit(user *models.User) {
	s.mu.Lock()
	s.user = user
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}
