package reshape

import "errors"

// Package errors for buffer construction and the validating boundary.
// The hot conversion path itself reports failure through the boolean
// ReshapeImage contract and never allocates or wraps errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("reshape: invalid dimensions")

	// ErrInvalidFormat is returned when the pixel format is not recognized.
	ErrInvalidFormat = errors.New("reshape: invalid pixel format")

	// ErrInvalidType is returned when the data type is not recognized.
	ErrInvalidType = errors.New("reshape: invalid data type")

	// ErrInvalidStride is returned when stride is less than the packed row size.
	ErrInvalidStride = errors.New("reshape: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("reshape: data buffer too small")
)
