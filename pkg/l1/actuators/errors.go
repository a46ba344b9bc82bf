package actuators

import "errors"

var (
	// ErrParseFailed indicates the source frame failed to decode.
	ErrParseFailed = errors.New("frame parsing failed")
	// ErrZeroID indicates a record uses the reserved id 0.
	ErrZeroID = errors.New("id 0 is reserved for unused slots")
	// ErrDuplicateID indicates two records in one collection share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrTooMany indicates a collection exceeds its frame capacity.
	ErrTooMany = errors.New("too many records for one frame")
)
