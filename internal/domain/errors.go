package domain

import "errors"

var (
	// ErrNotFound means a referenced booking, flight or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidDate means a date filter could not be parsed. Callers drop the
	// filter instead of failing the search.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInsufficientSeats means a cabin does not hold enough seats for the
	// requested party.
	ErrInsufficientSeats = errors.New("insufficient seats")

	// ErrInvalidTransition means the booking status machine forbids the change.
	ErrInvalidTransition = errors.New("invalid status transition")
)
