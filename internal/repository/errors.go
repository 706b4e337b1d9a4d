// Package repository holds the in-memory stores of the raffle: the
// ticket number pool and the sales ledger.  It also defines the
// sentinel errors shared by every layer above it.  Callers should
// compare with errors.Is because errors may be wrapped with context.
package repository

import "errors"

// ErrValidation is returned when a required field is empty after
// trimming whitespace.
var ErrValidation = errors.New("validation failed")

// ErrDuplicateCustomer is returned when registering a national ID that
// already belongs to another customer.  The registry is not modified.
var ErrDuplicateCustomer = errors.New("customer already registered")

// ErrCapacityExceeded is returned when a reservation would push the
// number of issued tickets past the pool capacity.
var ErrCapacityExceeded = errors.New("not enough ticket numbers available")

// ErrInvalidSelection is returned for an out-of-range customer index
// or menu option.
var ErrInvalidSelection = errors.New("invalid selection")

// ErrInvalidQuantity is returned when the requested ticket count is
// outside the allowed per-sale range.
var ErrInvalidQuantity = errors.New("invalid ticket quantity")

// ErrNoCustomers is returned when a sale is attempted before any
// customer has been registered.
var ErrNoCustomers = errors.New("no customers registered")

// ErrInvalidPrice is returned when setting a ticket price that is not
// strictly positive.
var ErrInvalidPrice = errors.New("invalid ticket price")

// ErrReservationClosed is returned when confirming or cancelling a
// reservation that was already confirmed or cancelled.
var ErrReservationClosed = errors.New("reservation already closed")
