package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ariefcatur/go-user-orders/internal/apperr"
)

func ptr[T any](v T) *T { return &v }

func price(s string) *Money { return &Money{decimal.RequireFromString(s)} }

func validRequest() *Request {
	return &Request{
		UserID:   ptr(int64(1)),
		Product:  ptr("Laptop"),
		Quantity: ptr(1),
		Price:    price("999.99"),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request) *Request
		want   string
	}{
		{"nil request", func(*Request) *Request { return nil }, "Order request cannot be null"},
		{"missing user", func(r *Request) *Request { r.UserID = nil; return r }, "User ID is required"},
		{"missing product", func(r *Request) *Request { r.Product = nil; return r }, "Product is required"},
		{"blank product", func(r *Request) *Request { r.Product = ptr("   "); return r }, "Product is required"},
		{"missing quantity", func(r *Request) *Request { r.Quantity = nil; return r }, "Quantity must be at least 1"},
		{"zero quantity", func(r *Request) *Request { r.Quantity = ptr(0); return r }, "Quantity must be at least 1"},
		{"negative quantity", func(r *Request) *Request { r.Quantity = ptr(-3); return r }, "Quantity must be at least 1"},
		{"missing price", func(r *Request) *Request { r.Price = nil; return r }, "Price is required"},
		{"zero price", func(r *Request) *Request { r.Price = &Money{decimal.Zero}; return r }, "Price must be positive"},
		{"negative price", func(r *Request) *Request { r.Price = price("-0.01"); return r }, "Price must be positive"},
		{"quantity above int32", func(r *Request) *Request { r.Quantity = ptr(3000000000); return r }, "Quantity must be at most 2147483647"},
		{"huge price exponent", func(r *Request) *Request { r.Price = price("1e10000000"); return r }, "Price is out of range"},
		{"tiny price exponent", func(r *Request) *Request { r.Price = price("1e-10000000"); return r }, "Price is out of range"},
		{"too many integer digits", func(r *Request) *Request { r.Price = price("100000000000000000000"); return r }, "Price is out of range"},
		{"too many decimal places", func(r *Request) *Request { r.Price = price("0.00000000000000000000000000000000000000001"); return r }, "Price is out of range"},
		// the first violation wins
		{"several bad fields", func(r *Request) *Request { r.Product = ptr(""); r.Quantity = ptr(0); r.Price = nil; return r }, "Product is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mutate(validRequest()))
			assert.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(validRequest()))

	r := validRequest()
	r.Price = price("0.01")
	assert.NoError(t, Validate(r))

	r.Price = price("99999999999999999999.9999999999")
	assert.NoError(t, Validate(r))

	r.Quantity = ptr(2147483647)
	assert.NoError(t, Validate(r))
}
