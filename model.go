package trk

import "math"

// File layout constants. Every quantity in a track file is a 32-bit
// signed little-endian word.
const (
	// FileType is the type tag carried in the first header word.
	FileType = 1414676811

	// FileVersion is the only format version this package handles.
	FileVersion = 1

	// MaxCrossSections is the fixed capacity of the lateral-offset table.
	MaxCrossSections = 10

	// MaxBoundaries is the fixed number of boundary descriptor slots in
	// every section record.
	MaxBoundaries = 10

	headerWords        = 7
	crossRecordWords   = 8
	floorRecordWords   = 3
	sectionFixedWords  = 14
	boundaryWords      = 5
	sectionRecordWords = sectionFixedWords + MaxBoundaries*boundaryWords

	wordBytes = 4
)

// SectionKind distinguishes straight sections from circular arcs.
type SectionKind int32

const (
	KindStraight SectionKind = 1
	KindCurve    SectionKind = 2
)

func (k SectionKind) String() string {
	switch k {
	case KindStraight:
		return "straight"
	case KindCurve:
		return "curve"
	}
	return "unknown"
}

// Header mirrors the 7-word file header. The byte-length fields are
// derived data: Encode recomputes them from actual record sizes rather
// than trusting stored values.
type Header struct {
	FileType      int32
	Version       int32
	TrackLength   int32 // total centerline length in dlong units
	NumXsects     int32 // cross-section columns in use, at most MaxCrossSections
	NumSects      int32
	FsectBytes    int32 // byte length of the floor-segment table
	SectDataBytes int32 // byte length of the section-record table
}

// CrossSection is one 8-word elevation record: the altitude at one
// (section, column) sample plus the companion cubic grade words and the
// column's world position. Grade words are fixed-point slope at scale
// GradeScale times the section length; see ElevationProfile for their
// derivation.
type CrossSection struct {
	Grade1 int32
	Grade2 int32
	Grade3 int32
	Alt    int32
	Grade4 int32
	Grade5 int32
	Pos1   int32 // straight: world X of the column; curve: radius - dlat
	Pos2   int32 // straight: world Y of the column; curve: filler
}

// FloorSegment is one 3-word record of the shared floor-segment table:
// a contiguous longitudinal run of one ground surface type. A segment
// belongs to exactly one section.
type FloorSegment struct {
	Start      int32
	End        int32
	GroundType int32
}

// Boundary is one 5-word wall descriptor slot of a section record.
// Records always carry MaxBoundaries slots; slots beyond the section's
// NumWallFsects are padding and round-trip verbatim.
type Boundary struct {
	Type      int32
	DlatStart int32
	DlatEnd   int32
	Reserved0 int32
	Reserved1 int32
}

// Section is one fixed-size 64-word section record together with the
// floor segments the record claims from the shared table.
//
// The five angle words are overloaded by kind. For curves: Ang1/Ang2 are
// the circle center, Ang3 is half the signed heading delta in heading
// word units, Ang4/Ang5 are filler. For straights they hold the 2^30
// scaled direction and perpendicular components plus a length correction
// factor.
type Section struct {
	Kind       SectionKind
	StartDLong int32
	Length     int32
	Heading    int32 // signed 2^31-scaled fraction of pi
	Ang1       int32
	Ang2       int32
	Ang3       int32
	Ang4       int32
	Ang5       int32
	Unknown    int32 // purpose not identified; round-trips verbatim
	NumGround  int32 // floor segments claimed from the shared table
	GroundCur  int32 // stored running cursor into the floor-segment table
	NumWalls   int32 // boundary slots in use
	Reserved   int32

	Boundaries [MaxBoundaries]Boundary

	// Cross holds this section's NumXsects cross-section records, in
	// column order.
	Cross []CrossSection

	// Floor holds the NumGround floor segments consumed for this section,
	// in table order.
	Floor []FloorSegment
}

// Track is the full in-memory model of one track file. It is produced by
// Decode and consumed by Encode; the section-offset table and byte-length
// header fields are derived on encode, never replayed.
type Track struct {
	Header     Header
	XsectDlats [MaxCrossSections]int32
	Sections   []Section
}

// Center returns the circle center of a curve section.
func (s *Section) Center() (Vec2, bool) {
	if s.Kind != KindCurve {
		return Vec2{}, false
	}
	return V2(float64(s.Ang1), float64(s.Ang2)), true
}

// HeadingVec returns the section's start heading as a unit vector.
func (s *Section) HeadingVec() Vec2 {
	a := HeadingAngle(s.Heading)
	return V2(1, 0).Rotate(a)
}

// Sweep returns the signed angular extent of a curve section in radians,
// reconstructed from the stored half-delta word. Straights sweep zero.
func (s *Section) Sweep() float64 {
	if s.Kind != KindCurve {
		return 0
	}
	// Ang3 is delta/2 in heading word units; doubling in float avoids
	// int32 overflow at sweeps near a full turn.
	return float64(s.Ang3) / (1 << 30) * math.Pi
}

// EndDLong returns the longitudinal coordinate at which the section ends.
func (s *Section) EndDLong() int32 {
	return s.StartDLong + s.Length
}
