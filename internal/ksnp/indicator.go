// Package ksnp computes SNP density over all k-mers of a reference genome.
package ksnp

import "fmt"

// OutOfRangeError reports a SNP position beyond the declared reference
// length. A mismatch between VCF-declared reference and actual length is an
// error, not something to tolerate silently.
type OutOfRangeError struct {
	Pos    int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("SNP position %d exceeds reference length %d", e.Pos, e.Length)
}

// InvalidArgumentError reports a malformed counter input.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// BuildIndicator returns a vector of the given length with the bit for each
// 1-based position set. Duplicate positions are idempotent.
func BuildIndicator(positions []int, length int) ([]bool, error) {
	if length < 1 {
		return nil, &InvalidArgumentError{Message: fmt.Sprintf("non-positive reference length %d", length)}
	}
	ind := make([]bool, length)
	for _, pos := range positions {
		if pos < 1 {
			return nil, &InvalidArgumentError{Message: fmt.Sprintf("non-positive SNP position %d", pos)}
		}
		if pos > length {
			return nil, &OutOfRangeError{Pos: pos, Length: length}
		}
		ind[pos-1] = true
	}
	return ind, nil
}
