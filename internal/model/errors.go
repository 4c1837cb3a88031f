package model

import "errors"

// Local validation errors. Each corresponds to a message the dashboard
// surfaces before any request is sent.
var (
	ErrProductRequired = errors.New("please select a product")
	ErrIncompleteOrder = errors.New("please fill all required fields with valid values")
	ErrFutureDate      = errors.New("cannot add an order for a future date")
)
