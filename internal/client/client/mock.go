package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/voyage/internal/client/models"
	"github.com/google/uuid"
)

const (
	MockUserID      = "user-123"
	MockDisplayName = "Arjun Sharma"
	DefaultAvatar   = "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?ixlib=rb-1.2.1&auto=format&fit=crop&w=150&q=80"
)

// Delays are the simulated latencies of MockClient calls.
type Delays struct {
	Login    time.Duration
	Register time.Duration
	Logout   time.Duration
	Update   time.Duration
}

// MockClient accepts any credentials after a fixed delay.
type MockClient struct {
	delays Delays
	newID  func() string
}

// NewMockClient returns a MockClient that waits d before answering.
func NewMockClient(d Delays) *MockClient {
	return &MockClient{
		delays: d,
		newID:  func() string { return "user-" + uuid.NewString() },
	}
}

// Authenticate returns the fixed mock identity with the given email.
func (m *MockClient) Authenticate(ctx context.Context, email string, _ []byte) (*models.User, error) {
	if err := sleep(ctx, m.delays.Login); err != nil {
		return nil, err
	}
	return &models.User{
		ID:     MockUserID,
		Name:   MockDisplayName,
		Email:  email,
		Avatar: DefaultAvatar,
	}, nil
}

// CreateAccount returns a new user with a fresh id.
func (m *MockClient) CreateAccount(ctx context.Context, name string, email string, _ []byte) (*models.User, error) {
	if err := sleep(ctx, m.delays.Register); err != nil {
		return nil, err
	}
	return &models.User{
		ID:     m.newID(),
		Name:   name,
		Email:  email,
		Avatar: DefaultAvatar,
	}, nil
}

// UpdateProfile echoes the merged record back as accepted.
func (m *MockClient) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	if err := sleep(ctx, m.delays.Update); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignOut waits out the logout delay.
func (m *MockClient) SignOut(ctx context.Context) error {
	return sleep(ctx, m.delays.Logout)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
