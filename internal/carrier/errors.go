package carrier

import (
	"errors"
	"fmt"
)

// Kind classifies a carrier error for retry and propagation decisions.
type Kind int

const (
	// KindUnavailable is a transient network/timeout failure. Retryable;
	// other carriers' quotes are still usable.
	KindUnavailable Kind = iota
	// KindRejected means the carrier explicitly declined the request
	// (serviceable area, invalid dimension). Not retryable for that carrier.
	KindRejected
	// KindParse means the response had an unexpected shape. Logged and
	// treated as no quote from that carrier; never a crash.
	KindParse
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "carrier_unavailable"
	case KindRejected:
		return "quote_rejected"
	case KindParse:
		return "quote_parse_error"
	default:
		return "unknown"
	}
}

// Error is a typed carrier failure carrying the carrier name and the
// carrier-provided message when one exists.
type Error struct {
	Carrier string
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", e.Carrier, e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Carrier, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Carrier, e.Kind)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Unavailable builds a transient failure for the given carrier.
func Unavailable(carrierName string, err error) *Error {
	return &Error{Carrier: carrierName, Kind: KindUnavailable, Err: err}
}

// Rejected builds a non-retryable rejection with the carrier's message.
func Rejected(carrierName, message string) *Error {
	return &Error{Carrier: carrierName, Kind: KindRejected, Message: message}
}

// ParseError builds a malformed-response failure.
func ParseError(carrierName string, err error) *Error {
	return &Error{Carrier: carrierName, Kind: KindParse, Err: err}
}

// IsKind reports whether err is a carrier error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

// Retryable reports whether the error is worth retrying against the same
// carrier. Only transient unavailability qualifies.
func Retryable(err error) bool {
	return IsKind(err, KindUnavailable)
}
