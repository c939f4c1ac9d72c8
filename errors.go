package shade

import (
	"errors"
	"strconv"
)

// Sentinel errors for shade.
var (
	// ErrInvalidColorFormat is returned when a color is not "#rrggbb" hex.
	ErrInvalidColorFormat = errors.New("shade: invalid color format")

	// ErrInvalidShadeCount is returned when fewer than MinCount shades are requested.
	ErrInvalidShadeCount = errors.New("shade: invalid shade count")
)

// FormatError is returned by ParseHex for malformed input.
// It matches ErrInvalidColorFormat with errors.Is.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return "shade: invalid color format " + strconv.Quote(e.Input) + ": want 6 hex digits with optional '#'"
}

// Unwrap returns ErrInvalidColorFormat.
func (e *FormatError) Unwrap() error { return ErrInvalidColorFormat }

// CountError is returned by Generate when count is below MinCount.
// It matches ErrInvalidShadeCount with errors.Is.
type CountError struct {
	Count int
}

func (e *CountError) Error() string {
	return "shade: invalid shade count " + strconv.Itoa(e.Count) + ": need at least " + strconv.Itoa(MinCount)
}

// Unwrap returns ErrInvalidShadeCount.
func (e *CountError) Unwrap() error { return ErrInvalidShadeCount }
