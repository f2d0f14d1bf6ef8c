package client

import (
	"context"

	"github.com/dmitrijs2005/voyage/internal/client/models"
)

// Client is the credential service the session store talks to. A call either
// returns a complete user record or an error; it never returns both.
type Client interface {
	Authenticate(ctx context.Context, email string, password []byte) (*models.User, error)
	CreateAccount(ctx context.Context, name string, email string, password []byte) (*models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (*models.User, error)
	SignOut(ctx context.Context) error
}
