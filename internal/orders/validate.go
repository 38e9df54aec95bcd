package orders

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ariefcatur/go-user-orders/internal/apperr"
)

// Price bounds. The exponent checks come first so an input such as 1e10000000
// is rejected before anything expands its coefficient.
const (
	maxPriceScale  = 40 // decimal places
	maxPriceDigits = 20 // integer digits
)

var maxPrice = decimal.New(1, maxPriceDigits)

// Validate checks req field by field and stops at the first violation, so
// the message for a given input is always the same.
func Validate(req *Request) error {
	switch {
	case req == nil:
		return apperr.Validation("Order request cannot be null")
	case req.UserID == nil:
		return apperr.Validation("User ID is required")
	case req.Product == nil || strings.TrimSpace(*req.Product) == "":
		return apperr.Validation("Product is required")
	case req.Quantity == nil || *req.Quantity < 1:
		return apperr.Validation("Quantity must be at least 1")
	case *req.Quantity > math.MaxInt32:
		return apperr.Validation("Quantity must be at most 2147483647")
	case req.Price == nil:
		return apperr.Validation("Price is required")
	case !req.Price.IsPositive():
		return apperr.Validation("Price must be positive")
	case req.Price.Exponent() < -maxPriceScale || req.Price.Exponent() > maxPriceDigits,
		req.Price.GreaterThanOrEqual(maxPrice):
		return apperr.Validation("Price is out of range")
	}
	return nil
}
