package order

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart and ErrMissingContactInfo are local validation failures;
	// no store call is made when they fire.
	ErrEmptyCart          = errors.New("order: cart is empty")
	ErrMissingContactInfo = errors.New("order: missing contact information")

	// ErrNoActiveSlot means no batch exists at all.
	ErrNoActiveSlot = errors.New("order: no delivery slot is available yet")
)

// OrdersClosedError names the closed slot so the message can surface it.
type OrdersClosedError struct {
	SlotLabel string
}

func (e *OrdersClosedError) Error() string {
	return fmt.Sprintf("order: %q is closed for new orders", e.SlotLabel)
}

// PersistenceError wraps a store failure. The cart is left intact so the
// user can resubmit; no automatic retry happens.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("order: could not be saved: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
