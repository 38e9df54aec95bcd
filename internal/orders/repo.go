package orders

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// Repository is the store behind the order service. FindByID and Delete
// return ErrNotFound for a missing id; Save inserts when ID is zero and
// otherwise overwrites the row, filling ID and timestamps.
type Repository interface {
	FindByID(ctx context.Context, id int64) (Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	FindByUserID(ctx context.Context, userID int64) ([]Order, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id int64) error
}
