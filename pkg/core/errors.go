package core

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a vector or color is divided by zero
var ErrDivisionByZero = errors.New("division by zero")

// DegenerateVectorError reports an operation that needs a non-zero vector
// (normalization) but was given one of zero length.
type DegenerateVectorError struct {
	Op     string
	Vector Vec3
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("%s: degenerate vector (%g, %g, %g)", e.Op, e.Vector.X, e.Vector.Y, e.Vector.Z)
}

// Unwrap lets errors.Is(err, ErrDivisionByZero) match degenerate vectors
func (e *DegenerateVectorError) Unwrap() error {
	return ErrDivisionByZero
}
