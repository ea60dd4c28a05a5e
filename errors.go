package coaster

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the coaster package.
var (
	// ErrNonFinite is returned when a coordinate, height or tick is NaN or infinite.
	ErrNonFinite = errors.New("coaster: non-finite geometry input")

	// ErrInvalidTile is returned for a projector with a non-positive tile width
	// or height unit.
	ErrInvalidTile = errors.New("coaster: invalid tile dimensions")

	// ErrUnknownShape is returned by DrawSegment for an unrecognized Shape.
	ErrUnknownShape = errors.New("coaster: unknown segment shape")

	// ErrUnknownDirection is returned when a Direction is outside North..West.
	ErrUnknownDirection = errors.New("coaster: unknown direction")
)

// checkFinite returns ErrNonFinite, tagged with op, if any value is NaN or
// infinite.
func checkFinite(op string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %w (%v)", op, ErrNonFinite, v)
		}
	}
	return nil
}

func checkDirection(op string, d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%s: %w (%d)", op, ErrUnknownDirection, int(d))
	}
	return nil
}
