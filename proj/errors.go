package proj

import (
	"errors"
	"strconv"
)

// Sentinel errors wrapped by DomainError.
var (
	ErrInvalidZoom      = errors.New("zoom level out of range [0, 30]")
	ErrPoleLatitude     = errors.New("latitude at or beyond a pole")
	ErrInvalidLongitude = errors.New("longitude is not finite")
	ErrOutOfRange       = errors.New("value cannot be represented as a tile index")
)

// DomainError reports an input for which a conversion is undefined.
// Use errors.Is with one of the sentinel errors above to find the cause.
type DomainError struct {
	Op    string  // function that failed, e.g. "LonLatToTile"
	Field string  // offending argument: "zoom", "lat", "lon", "x" or "y"
	Value float64 // offending value
	Err   error
}

func (e *DomainError) Error() string {
	return "proj: " + e.Op + ": " + e.Field + " " +
		strconv.FormatFloat(e.Value, 'g', -1, 64) + ": " + e.Err.Error()
}

func (e *DomainError) Unwrap() error { return e.Err }

func domainErr(op, field string, v float64, err error) error {
	return &DomainError{Op: op, Field: field, Value: v, Err: err}
}
