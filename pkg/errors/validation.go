package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateNodeCount checks that n is a usable node count.
func ValidateNodeCount(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidParameter, "node count must be positive, got %d", n)
	}
	return nil
}

// ValidateDegree checks the ring-lattice degree k against node count n.
//
// The rules mirror the lattice construction:
//   - k must be positive
//   - k must be even (k/2 neighbors on each side)
//   - k must be smaller than n (no self-loops or multi-edges)
func ValidateDegree(n, k int) error {
	if err := ValidateNodeCount(n); err != nil {
		return err
	}
	if k <= 0 {
		return New(ErrCodeInvalidParameter, "degree k must be positive, got %d", k)
	}
	if k%2 != 0 {
		return New(ErrCodeInvalidParameter, "degree k must be even, got %d", k)
	}
	if k >= n {
		return New(ErrCodeInvalidParameter, "degree k must be smaller than n (k=%d, n=%d)", k, n)
	}
	return nil
}

// ValidateBeta checks that a rewiring probability lies in [0,1].
// NaN is rejected explicitly since it compares false against both bounds.
func ValidateBeta(beta float64) error {
	if math.IsNaN(beta) || beta < 0 || beta > 1 {
		return New(ErrCodeInvalidParameter, "beta must be in [0,1], got %v", beta)
	}
	return nil
}

// ValidateBetas checks that betas is non-empty and every value is in [0,1].
func ValidateBetas(betas []float64) error {
	if len(betas) == 0 {
		return New(ErrCodeInvalidParameter, "at least one beta is required")
	}
	for i, b := range betas {
		if err := ValidateBeta(b); err != nil {
			return Wrap(ErrCodeInvalidParameter, err, "betas[%d]", i)
		}
	}
	return nil
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
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

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path cannot start or end with whitespace")
	}

	return nil
}
