package trk

import "math"

// GradeScale is the fixed-point scale factor for stored grade words:
// a grade word divided by GradeScale is a slope in altitude units per
// dlong unit.
const GradeScale = 8192

// Shape selects the easing curve used to interpolate altitude across a
// section. The set is closed; every shape maps t in [0,1] onto [0,1] with
// Value(0)=0 and Value(1)=1.
type Shape int

const (
	Linear Shape = iota
	Convex
	Concave
	SCurve
)

func (s Shape) String() string {
	switch s {
	case Linear:
		return "linear"
	case Convex:
		return "convex"
	case Concave:
		return "concave"
	case SCurve:
		return "s-curve"
	}
	return "unknown"
}

// Value evaluates the easing function at t.
func (s Shape) Value(t float64) float64 {
	switch s {
	case Convex:
		return t * t
	case Concave:
		return 1 - (1-t)*(1-t)
	case SCurve:
		return 3*t*t - 2*t*t*t
	}
	return t
}

// Slope evaluates the derivative of the easing function at t.
func (s Shape) Slope(t float64) float64 {
	switch s {
	case Convex:
		return 2 * t
	case Concave:
		return 2 - 2*t
	case SCurve:
		return 6*t - 6*t*t
	}
	return 1
}

// NormalizePositions scales a non-decreasing sequence of distances along a
// section onto [0, 1] by dividing through the final value. Negative inputs
// clamp to zero before validation. Fails with a *ValidationError for fewer
// than two samples, a decreasing pair, or a non-positive total.
func NormalizePositions(distances []float64) ([]float64, error) {
	if len(distances) < 2 {
		return nil, validationErr("distances", "need at least 2 samples, got %d", len(distances))
	}
	out := make([]float64, len(distances))
	for i, d := range distances {
		out[i] = math.Max(0, d)
	}
	for i := 1; i < len(out); i++ {
		if out[i] < out[i-1] {
			return nil, validationErr("distances", "sample %d decreases (%g after %g)", i, out[i], out[i-1])
		}
	}
	total := out[len(out)-1]
	if total <= 0 {
		return nil, validationErr("distances", "total length must be positive, got %g", total)
	}
	for i := range out {
		out[i] /= total
	}
	return out, nil
}

// Evaluate interpolates altitude and grade at normalized position t across
// a section whose endpoints sit at startAlt and endAlt. t clamps to [0,1];
// the grade word is the easing slope scaled to altitude per dlong over
// totalLength, fixed-point at GradeScale. totalLength must be positive.
func Evaluate(startAlt, endAlt, t float64, shape Shape, totalLength float64) (altitude, grade int) {
	t = math.Min(1, math.Max(0, t))
	delta := endAlt - startAlt
	altitude = int(math.Round(startAlt + delta*shape.Value(t)))
	grade = int(math.Round(shape.Slope(t) * delta / totalLength * GradeScale))
	return altitude, grade
}

// ElevationProfile is the cubic altitude curve the simulator stores per
// cross-section column: altitude over one section interpolated between the
// previous section's endpoint and this one's, honoring the slope on both
// sides. The companion grade words of a CrossSection record are the
// rounded coefficients of this cubic.
type ElevationProfile struct {
	BeginAlt   float64
	EndAlt     float64
	BeginGrade float64 // fixed-point slope word at the begin endpoint
	EndGrade   float64 // fixed-point slope word at the end endpoint
	Length     float64 // section length in dlong units
}

// coefficients returns a, b, c of the cubic a*t^3 + b*t^2 + c*t + BeginAlt
// over normalized position t.
func (p ElevationProfile) coefficients() (a, b, c float64) {
	s0 := p.BeginGrade / GradeScale
	s1 := p.EndGrade / GradeScale
	a = (2*p.BeginAlt/p.Length + s0 + s1 - 2*p.EndAlt/p.Length) * p.Length
	b = (3*p.EndAlt/p.Length - 3*p.BeginAlt/p.Length - 2*s0 - s1) * p.Length
	c = s0 * p.Length
	return a, b, c
}

// Altitude evaluates the profile at normalized position t in [0,1]
// (clamped).
func (p ElevationProfile) Altitude(t float64) float64 {
	if p.Length <= 0 {
		return p.BeginAlt
	}
	t = math.Min(1, math.Max(0, t))
	a, b, c := p.coefficients()
	return a*t*t*t + b*t*t + c*t + p.BeginAlt
}

// Grade evaluates the profile slope at normalized position t, fixed-point
// at GradeScale.
func (p ElevationProfile) Grade(t float64) float64 {
	if p.Length <= 0 {
		return p.BeginGrade
	}
	t = math.Min(1, math.Max(0, t))
	a, b, c := p.coefficients()
	return (3*a*t*t + 2*b*t + c) / p.Length * GradeScale
}

// Words returns the five companion grade words stored in a cross-section
// record for this profile. Grade4 and Grade5 are derived from the rounded
// cubic and quadratic coefficients, matching the stored redundancy.
func (p ElevationProfile) Words() (grade1, grade2, grade3, grade4, grade5 int32) {
	a, b, c := p.coefficients()
	grade1 = int32(math.Round(a))
	grade2 = int32(math.Round(b))
	grade3 = int32(math.Round(c))
	grade4 = grade1 * 3
	grade5 = grade2 * 2
	return grade1, grade2, grade3, grade4, grade5
}
