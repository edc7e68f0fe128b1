package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown validation field")

	ErrEmptyPlateNumber   = errors.New("plate number is empty")
	ErrInvalidPlateNumber = errors.New("plate number has invalid format")
	ErrInvalidCoordinates = errors.New("coordinates are out of range")
	ErrInvalidConfidence  = errors.New("confidence must be between 0 and 1")
	ErrInvalidStatus      = errors.New("unknown audit status")
	ErrEmptyZone          = errors.New("zone is empty")

	ErrInvalidLocalID    = errors.New("local id is empty")
	ErrInvalidCapturedAt = errors.New("captured at timestamp is not set")
)
