package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the stored form. UserID refers to a user owned by the user
// service; there is no local foreign key.
type Order struct {
	ID        int64
	UserID    int64
	Product   string
	Quantity  int
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
