package stylist

import "errors"

var (
	// ErrNotEnoughItems rejects outfit synthesis before any provider call.
	ErrNotEnoughItems = errors.New("need at least 2 available items to compose an outfit")

	ErrInvocationNotFound = errors.New("invocation not found")
)
