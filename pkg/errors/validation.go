package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateFinite validates that a coordinate value is finite.
// Quantization is undefined for NaN and infinite values, so callers that feed
// coordinates into the layout engine must reject them up front.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidCoordinate, "%s is NaN", name)
	}
	if math.IsInf(v, 0) {
		return New(ErrCodeInvalidCoordinate, "%s is infinite", name)
	}
	return nil
}

// ValidateSeriesName validates a series name for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateSeriesName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDataset, "series name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidDataset, "series name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "series name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a dataset or output file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateChartID validates a stored chart identifier.
// IDs are UUID strings assigned by the store; anything else is rejected
// before it reaches the database layer.
func ValidateChartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "chart id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "chart id too long")
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return New(ErrCodeInvalidInput, "chart id contains invalid character %q", r)
		}
	}

	return nil
}
