package orders

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Request is the body of POST and PUT /orders. Pointer fields tell an
// absent value apart from a zero one.
type Request struct {
	UserID   *int64           `json:"userId"`
	Product  *string          `json:"product"`
	Quantity *int             `json:"quantity"`
	Price    *Money           `json:"price"`
}

type Response struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Price    Money  `json:"price"`
}

// Money encodes as a bare JSON number carrying the exact decimal digits.
type Money struct{ decimal.Decimal }

func (m Money) MarshalJSON() ([]byte, error) { return []byte(m.String()), nil }

var errQuotedPrice = errors.New("price must be a JSON number")

// UnmarshalJSON accepts only a bare number; a quoted price is a type error.
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return errQuotedPrice
	}
	return m.Decimal.UnmarshalJSON(b)
}

func toResponse(o Order) Response {
	return Response{
		ID:       o.ID,
		UserID:   o.UserID,
		Product:  o.Product,
		Quantity: o.Quantity,
		Price:    Money{o.Price},
	}
}

// Payload is the event body for order events.
type Payload struct {
	OrderID  int64  `json:"order_id"`
	UserID   int64  `json:"user_id,omitempty"`
	Product  string `json:"product,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Price    string `json:"price,omitempty"`
}

func toPayload(o Order) Payload {
	return Payload{OrderID: o.ID, UserID: o.UserID, Product: o.Product, Quantity: o.Quantity, Price: o.Price.String()}
}
