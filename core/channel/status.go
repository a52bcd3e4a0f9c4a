package channel

// Status is the result vocabulary shared by every channel operation.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusFull
	StatusInvalidParameters
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusFull:
		return "FULL"
	case StatusInvalidParameters:
		return "INVALID_PARAMETERS"
	default:
		return "UNKNOWN"
	}
}

// Err maps the status to its sentinel error, or nil on success.
//
// Example:
//
//	if err := ch.SubscribeNoContext(cb).Status.Err(); errors.Is(err, channel.ErrFull) {
//	    // evict another subscriber or drop this one
//	}
func (s Status) Err() error {
	switch s {
	case StatusSuccess:
		return nil
	case StatusFull:
		return ErrFull
	default:
		return ErrInvalidParameters
	}
}

// Handle identifies a subscriber slot. It is valid until the slot is
// unsubscribed or the channel is reset.
type Handle uint8

// SubscribeResult reports the outcome of a subscription.
// Handle is meaningful only when Status is StatusSuccess.
type SubscribeResult struct {
	Status         Status
	Handle         Handle
	NumSubscribers int
}

// UnsubscribeResult reports the outcome of an unsubscription.
type UnsubscribeResult struct {
	Status         Status
	NumSubscribers int
}
