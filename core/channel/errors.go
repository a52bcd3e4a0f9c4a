package channel

import "errors"

var (
	// ErrFull is returned when every subscriber slot is occupied.
	ErrFull = errors.New("channel subscriber table is full")

	// ErrInvalidParameters is returned for a nil callback or binding, or for a
	// handle that is out of range or not currently subscribed.
	ErrInvalidParameters = errors.New("invalid channel parameters")
)
