package mathutil

import (
	"errors"
	"math"
)

// Epsilon is the tolerance used by every approximate comparison in this
// package. Values closer than Epsilon are considered equal.
const Epsilon = 1e-5

// ErrSingular is returned when an inverse is requested for a matrix whose
// determinant is exactly zero.
var ErrSingular = errors.New("mathutil: matrix is not invertible")

// EqualApprox reports whether a and b differ by less than Epsilon.
func EqualApprox(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
