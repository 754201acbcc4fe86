package trk

import "math"

// NoSection is the sentinel id marking an endpoint with no neighbor.
const NoSection = -1

// Orientation is the turn sense of an arc: CCW means the center lies to
// the left of the start-to-end chord.
type Orientation int

const (
	CW  Orientation = -1
	CCW Orientation = 1

	// OrientationUnknown is reported when a section has no center to
	// derive a turn sense from.
	OrientationUnknown Orientation = 0
)

// Geometry is the float-space editing view of one section: the value the
// curve solver consumes and produces. Solver functions never retain or
// mutate a Geometry; they return fresh values and the caller decides
// whether to apply them to the document.
type Geometry struct {
	Kind  SectionKind
	Start Vec2
	End   Vec2

	// StartHeading and EndHeading are unit tangents at the endpoints.
	StartHeading Vec2
	EndHeading   Vec2

	// Center and Radius are only meaningful for curves; HasCenter guards
	// them.
	Center    Vec2
	HasCenter bool
	Radius    float64

	Length     float64
	StartDLong float64

	// Prev and Next are neighbor section ids, NoSection when the endpoint
	// is open.
	Prev int
	Next int
}

// Centerline derives the world position of the track centerline at each
// section start from the cross-section position words. The centerline sits
// at dlat 0, between the innermost column pair straddling it; for curve
// sections the interpolated value is the arc radius rather than a
// coordinate pair.
func (t *Track) Centerline() ([]Vec2, error) {
	n := int(t.Header.NumXsects)
	left := -1
	for x := 1; x < n; x++ {
		if t.XsectDlats[x] > 0 && t.XsectDlats[x-1] <= 0 {
			left = x
			break
		}
	}
	if left < 1 {
		return nil, validationErr("cross sections", "no column pair straddles dlat 0")
	}
	right := left - 1
	rd := float64(t.XsectDlats[right])
	ld := float64(t.XsectDlats[left])
	adj := -rd / (ld - rd)

	cline := make([]Vec2, len(t.Sections))
	for i := range t.Sections {
		r := t.Sections[i].Cross[right]
		l := t.Sections[i].Cross[left]
		cline[i] = V2(
			float64(r.Pos1)+adj*float64(l.Pos1-r.Pos1),
			float64(r.Pos2)+adj*float64(l.Pos2-r.Pos2),
		)
	}
	return cline, nil
}

// sectionStart resolves the world position of section i's start point.
// Straights store centerline coordinates directly; curves store the center
// and radius, with the start sitting one radius from the center
// perpendicular to the start heading.
func (t *Track) sectionStart(i int, cline []Vec2) Vec2 {
	s := &t.Sections[i]
	if s.Kind != KindCurve {
		return cline[i]
	}
	radius := cline[i].X
	center, _ := s.Center()
	a := HeadingAngle(s.Heading) - math.Pi/2
	return center.Add(V2(math.Cos(a), math.Sin(a)).Mul(radius))
}

// SectionGeometry builds the editing view of section i. The end point is
// the start of the following section in ring order; neighbor links follow
// the same ring. Fails with a *ValidationError when the centerline cannot
// be derived or the index is out of range.
func (t *Track) SectionGeometry(i int) (Geometry, error) {
	if i < 0 || i >= len(t.Sections) {
		return Geometry{}, validationErr("section", "index %d outside [0, %d)", i, len(t.Sections))
	}
	cline, err := t.Centerline()
	if err != nil {
		return Geometry{}, err
	}

	s := &t.Sections[i]
	next := (i + 1) % len(t.Sections)
	prev := (i - 1 + len(t.Sections)) % len(t.Sections)

	g := Geometry{
		Kind:         s.Kind,
		Start:        t.sectionStart(i, cline),
		End:          t.sectionStart(next, cline),
		StartHeading: s.HeadingVec(),
		Length:       float64(s.Length),
		StartDLong:   float64(s.StartDLong),
		Prev:         prev,
		Next:         next,
	}
	if s.Kind == KindCurve {
		center, _ := s.Center()
		g.Center = center
		g.HasCenter = true
		g.Radius = g.Start.Sub(center).Length()
		g.EndHeading = g.StartHeading.Rotate(s.Sweep())
	} else {
		g.EndHeading = g.StartHeading
	}
	return g, nil
}
