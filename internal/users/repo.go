package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Repository is the store behind the user service. Lookups of a missing
// row return ErrNotFound.
type Repository interface {
	FindByID(ctx context.Context, id int64) (User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
}
