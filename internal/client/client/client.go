package client

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
)

// Client is the contract of the remote auth API. Every call is a single
// attempt; retry policy belongs to the caller.
type Client interface {
	Login(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error)
	// Register returns a nil user and nil error when the server accepted the
	// request but sent no body; callers decide what that means.
	Register(ctx context.Context, user *models.User) (*models.User, error)
	Profile(ctx context.Context, token string) (*models.User, error)
	Ping(ctx context.Context) error
}
