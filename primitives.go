package trk

import (
	"fmt"
	"math"
)

// Epsilon is the length and angle threshold below which geometry is
// treated as degenerate.
const Epsilon = 1e-6

// TurnDirection selects which side of the start heading an arc bends to.
type TurnDirection int

const (
	TurnLeft  TurnDirection = 1
	TurnRight TurnDirection = -1
)

// Arc is the result of the canonical curve construction.
type Arc struct {
	Center Vec2
	Radius float64
	End    Vec2
	Sweep  float64 // signed angular extent in radians
}

// normalizeAngle wraps an angle into (-pi, pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// Straight constructs a straight section from its start point, heading,
// and length, returning the end point. Fails with ErrInvalidGeometry for
// non-positive length or a zero heading.
func Straight(start, heading Vec2, length float64) (Vec2, error) {
	if length <= Epsilon {
		return Vec2{}, fmt.Errorf("%w: length %g too small", ErrInvalidGeometry, length)
	}
	u := heading.Normalize()
	if u.IsZero() {
		return Vec2{}, fmt.Errorf("%w: zero heading", ErrInvalidGeometry)
	}
	return start.Add(u.Mul(length)), nil
}

// Curve constructs a circular-arc section from its start point, the
// headings at both ends, the arc length, and the turn direction. This is
// the canonical non-interactive construction used when authoring a section
// from scratch; SolveDrag and SolveWithHeadingConstraint re-derive
// geometry under edits.
func Curve(start, startHeading, endHeading Vec2, arcLength float64, turn TurnDirection) (Arc, error) {
	sh := startHeading.Normalize()
	eh := endHeading.Normalize()
	if sh.IsZero() || eh.IsZero() {
		return Arc{}, fmt.Errorf("%w: zero heading", ErrInvalidGeometry)
	}

	delta := normalizeAngle(eh.Atan2() - sh.Atan2())
	if math.Abs(delta) < Epsilon {
		return Arc{}, fmt.Errorf("%w: heading change too small", ErrInvalidGeometry)
	}
	if arcLength <= Epsilon {
		return Arc{}, fmt.Errorf("%w: arc length %g too small", ErrInvalidGeometry, arcLength)
	}

	radius := arcLength / math.Abs(delta)
	normal := sh.Perp().Mul(float64(turn))
	center := start.Add(normal.Mul(radius))
	end := center.Add(start.Sub(center).Rotate(delta))

	return Arc{Center: center, Radius: radius, End: end, Sweep: delta}, nil
}
