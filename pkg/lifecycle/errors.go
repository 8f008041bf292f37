package lifecycle

import "errors"

// Error is a classified workflow failure. Failures without a Kind (storage
// faults, partial partition operations) are returned as plain errors and
// surface as internal errors at the transport layer.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the Kind from a classified error. ok is false for plain
// errors.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
