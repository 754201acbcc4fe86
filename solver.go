package trk

import "math"

// Interactive curve solver. All entry points are pure and deterministic;
// when no valid geometry satisfies the request within tolerance they
// report ok=false instead of returning an error, and the caller keeps the
// prior geometry.

// OrientationHint derives the turn sense of a section from the sign of the
// cross product of its chord (End-Start) with (Center-Start): CCW when the
// center lies to the left of the chord. Sections without a center report
// OrientationUnknown.
func OrientationHint(g Geometry) Orientation {
	if !g.HasCenter {
		return OrientationUnknown
	}
	cross := g.End.Sub(g.Start).Cross(g.Center.Sub(g.Start))
	switch {
	case cross > 0:
		return CCW
	case cross < 0:
		return CW
	}
	return OrientationUnknown
}

// TangentHeading returns the unit tangent of the circle around center at
// point, oriented by orient: the circle radius rotated +90 degrees for CCW
// arcs, -90 for CW. Returns the zero vector when point coincides with
// center.
func TangentHeading(center, point Vec2, orient Orientation) Vec2 {
	return point.Sub(center).Perp().Mul(float64(orient)).Normalize()
}

// ArcLength measures the arc from start to end around center, following
// the circle in the direction given by orient. The swept angle is lifted
// onto [0, 2pi) along that direction, so arcs longer than a half turn
// measure correctly.
func ArcLength(center, start, end Vec2, radius float64, orient Orientation) float64 {
	ang := start.Sub(center).AngleTo(end.Sub(center))
	if orient == CW {
		ang = -ang
	}
	if ang < 0 {
		ang += 2 * math.Pi
	}
	return radius * ang
}

// ProjectPointAlongHeading orthogonally projects target onto the infinite
// line through origin in direction heading. Fails when heading is
// degenerate.
func ProjectPointAlongHeading(origin, heading, target Vec2) (Vec2, bool) {
	u := heading.Normalize()
	if u.IsZero() {
		return Vec2{}, false
	}
	return origin.Add(u.Mul(target.Sub(origin).Dot(u))), true
}

// orientationOf classifies a candidate center against a chord, the same
// cross-product rule as OrientationHint.
func orientationOf(start, end, center Vec2) Orientation {
	cross := end.Sub(start).Cross(center.Sub(start))
	switch {
	case cross > 0:
		return CCW
	case cross < 0:
		return CW
	}
	return OrientationUnknown
}

// resolveOrientation picks the turn sense to preserve across an edit:
// the center-based hint when available, otherwise the sign of the heading
// sweep, defaulting to CCW.
func resolveOrientation(g Geometry) Orientation {
	if o := OrientationHint(g); o != OrientationUnknown {
		return o
	}
	if cross := g.StartHeading.Cross(g.EndHeading); cross < 0 {
		return CW
	}
	return CCW
}

// arcGeometry assembles the solved curve, recomputing both headings as
// tangents at the new endpoints and the length along the resolved
// orientation. Fails on a degenerate radius or sweep.
func arcGeometry(g Geometry, start, end, center Vec2, orient Orientation) (Geometry, bool) {
	radius := start.Sub(center).Length()
	if radius <= Epsilon {
		return Geometry{}, false
	}
	length := ArcLength(center, start, end, radius, orient)
	if length <= Epsilon {
		return Geometry{}, false
	}

	out := g
	out.Kind = KindCurve
	out.Start = start
	out.End = end
	out.Center = center
	out.HasCenter = true
	out.Radius = radius
	out.StartHeading = TangentHeading(center, start, orient)
	out.EndHeading = TangentHeading(center, end, orient)
	out.Length = length
	return out, true
}

// SolveDrag recomputes arc geometry after one or both endpoints move.
//
// The section's existing radius is preserved when a circle of that radius
// still passes through both new endpoints: of the two candidate centers,
// the one matching the section's original orientation wins. When both
// candidates coincide (the chord spans a full diameter) the tie-break is
// the candidate nearer the previous center, or the left-of-chord candidate
// when no previous center exists. If radius preservation fails, a new
// radius and center are derived from the new chord, keeping the previous
// center's perpendicular offset from the chord.
//
// Fails when the chord is degenerate or no center information is
// available to rebuild the arc from.
func SolveDrag(g Geometry, newStart, newEnd Vec2, tolerance float64) (Geometry, bool) {
	chord := newEnd.Sub(newStart)
	chordLen := chord.Length()
	if chordLen <= Epsilon {
		return Geometry{}, false
	}

	orient := resolveOrientation(g)
	mid := newStart.Add(chord.Mul(0.5))
	normal := chord.Perp().Mul(1 / chordLen)

	// Step 1: keep the existing radius.
	if g.Radius > Epsilon && chordLen <= 2*g.Radius+tolerance {
		half := chordLen / 2
		h := math.Sqrt(math.Max(g.Radius*g.Radius-half*half, 0))
		left := mid.Add(normal.Mul(h))
		right := mid.Sub(normal.Mul(h))

		var center Vec2
		found := false
		switch {
		case orientationOf(newStart, newEnd, left) == orient:
			center, found = left, true
		case orientationOf(newStart, newEnd, right) == orient:
			center, found = right, true
		case h <= tolerance:
			// Both candidates sit on the chord (diameter case); pick
			// deterministically.
			center, found = left, true
			if g.HasCenter && right.Sub(g.Center).LengthSq() < left.Sub(g.Center).LengthSq() {
				center = right
			}
		}
		if found {
			if out, ok := arcGeometry(g, newStart, newEnd, center, orient); ok {
				return out, true
			}
		}
	}

	// Step 2: give up on the radius, keep the prior center's offset from
	// the chord.
	if !g.HasCenter {
		return Geometry{}, false
	}
	offset := g.Center.Sub(mid).Dot(normal)
	sign := 1.0
	if offset < 0 {
		sign = -1
	} else if offset == 0 {
		sign = float64(orient)
	}
	mag := math.Max(math.Abs(offset), math.Max(tolerance, Epsilon))
	center := mid.Add(normal.Mul(sign * mag))

	newOrient := CCW
	if sign < 0 {
		newOrient = CW
	}
	return arcGeometry(g, newStart, newEnd, center, newOrient)
}

// SolveWithHeadingConstraint recomputes arc geometry with one endpoint's
// heading pinned to targetHeading instead of preserving the radius. The
// center must lie on the line through the pinned endpoint perpendicular to
// the target heading and on the perpendicular bisector of the new chord;
// of the intersection solutions the one consistent with the section's
// original orientation is preferred.
//
// Fails when the target heading is degenerate, the chord is degenerate, or
// the constraint lines are parallel beyond tolerance.
func SolveWithHeadingConstraint(g Geometry, newStart, newEnd, targetHeading Vec2, headingAppliesToStart bool, tolerance float64) (Geometry, bool) {
	h := targetHeading.Normalize()
	if h.IsZero() {
		return Geometry{}, false
	}

	pinned, other := newStart, newEnd
	if !headingAppliesToStart {
		pinned, other = newEnd, newStart
	}
	d := other.Sub(pinned)
	if d.Length() <= Epsilon {
		return Geometry{}, false
	}

	parallelTol := math.Max(tolerance, Epsilon)
	hint := resolveOrientation(g)
	for _, orient := range [2]Orientation{hint, -hint} {
		// Radius direction at the pinned endpoint: the heading's left
		// normal for CCW arcs, right normal for CW.
		n := h.Perp().Mul(float64(orient))
		dot := d.Dot(n)
		if math.Abs(dot) <= parallelTol {
			// Chord parallel to the pinned heading's perpendicular line;
			// the bisector never meets it at a usable center.
			continue
		}
		radius := d.LengthSq() / (2 * dot)
		if radius <= Epsilon {
			continue
		}
		center := pinned.Add(n.Mul(radius))

		out, ok := arcGeometry(g, newStart, newEnd, center, orient)
		if !ok {
			continue
		}
		// The tangent at the pinned endpoint equals the target by
		// construction; store the normalized target to keep the caller's
		// constraint exact.
		if headingAppliesToStart {
			out.StartHeading = h
		} else {
			out.EndHeading = h
		}
		return out, true
	}
	return Geometry{}, false
}
