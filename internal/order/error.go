package order

import "errors"

var (
	// -- Validation & Input --
	ErrCustomerRequired = errors.New("customer name and phone are required")
	ErrAddressRequired  = errors.New("all delivery address fields are required")
	ErrNoItems          = errors.New("order must contain at least one item")
	ErrTotalsRequired   = errors.New("subtotal, shipping, and total are required")
	ErrInvalidItem      = errors.New("each item must have id, name, quantity, and price")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
)

var validationErrs = []error{
	ErrCustomerRequired,
	ErrAddressRequired,
	ErrNoItems,
	ErrTotalsRequired,
	ErrInvalidItem,
}

// IsValidation reports whether err is a checkout validation failure,
// i.e. rejected before any write.
func IsValidation(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
