package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/voyage/internal/client/models"
	"github.com/dmitrijs2005/voyage/internal/common"
)

// memScope is an in-memory storage.Scope with error injection.
type memScope struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	setErr error
	delErr error
}

func newMemScope() *memScope {
	return &memScope{data: make(map[string][]byte)}
}

func (m *memScope) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("mem[%s]: %w", key, common.ErrorNotFound)
	}
	return append([]byte(nil), v...), nil
}

func (m *memScope) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memScope) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func (m *memScope) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memScope) raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

// fakeClient implements client.Client for store tests.
type fakeClient struct {
	mu sync.Mutex

	AuthUser *models.User
	AuthErr  error

	CreateErr error
	createSeq int

	UpdateErr      error
	UpdateOverride *models.User
	updateCalls    int
	LastUpdate     models.User

	SignOutErr error

	// gate, when set, blocks every call until a value is received.
	gate     chan struct{}
	inFlight int
	maxIn    int
	started  chan struct{}
}

func (f *fakeClient) enter(ctx context.Context) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxIn {
		f.maxIn = f.inFlight
	}
	gate, started := f.gate, f.started
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
}

func (f *fakeClient) leave() {
	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()
}

func (f *fakeClient) Authenticate(ctx context.Context, email string, _ []byte) (*models.User, error) {
	f.enter(ctx)
	defer f.leave()
	if f.AuthErr != nil {
		return nil, f.AuthErr
	}
	if f.AuthUser != nil {
		u := *f.AuthUser
		return &u, nil
	}
	return &models.User{ID: "user-123", Name: "Arjun Sharma", Email: email, Avatar: "https://img/default.png"}, nil
}

func (f *fakeClient) CreateAccount(ctx context.Context, name, email string, _ []byte) (*models.User, error) {
	f.enter(ctx)
	defer f.leave()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.mu.Lock()
	f.createSeq++
	id := fmt.Sprintf("user-%d", f.createSeq)
	f.mu.Unlock()
	return &models.User{ID: id, Name: name, Email: email, Avatar: "https://img/default.png"}, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	f.enter(ctx)
	defer f.leave()
	f.mu.Lock()
	f.updateCalls++
	f.LastUpdate = user
	f.mu.Unlock()
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	if f.UpdateOverride != nil {
		u := *f.UpdateOverride
		return &u, nil
	}
	return &user, nil
}

func (f *fakeClient) SignOut(ctx context.Context) error {
	f.enter(ctx)
	defer f.leave()
	return f.SignOutErr
}
