package user

import (
	"context"
	"errors"

	"socialfeed/internal/core/user"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("the combination of username and password does not exist")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidInput       = errors.New("username and password must not be empty")
)

// UserRepository is the storage port for users.
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
}

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
