// Package trk decodes, edits, and re-encodes binary track-geometry files
// for Papyrus-era racing simulators.
//
// # Overview
//
// A track file describes the circuit centerline as a chain of straight and
// circular-arc sections, tabulates elevation and grade across the track
// width at fixed lateral sampling positions (cross sections), and assigns
// ground and wall surface types to longitudinal runs of the floor (floor
// segments). The package covers three tightly coupled concerns that share
// one data model:
//
//   - a binary codec (Decode/Encode) whose element counts and offsets are
//     themselves data-dependent, with an exact round-trip guarantee
//   - an interactive curve solver (SolveDrag, SolveWithHeadingConstraint)
//     that recomputes arc parameters when an editor moves an endpoint
//   - a parametric elevation evaluator (Evaluate, ElevationProfile) mapping
//     longitudinal position to altitude and fixed-point grade
//
// # Quick Start
//
//	track, err := trk.DecodeFile("michigan.trk")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := track.SectionGeometry(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if moved, ok := trk.SolveDrag(g, g.Start, newEnd, 1.0); ok {
//	    // apply moved back to the document
//	    _ = moved
//	}
//
// # Coordinate System
//
// World coordinates are right-handed: X increases right, Y increases up,
// angles in radians measured counter-clockwise from +X. Longitudinal
// position along the centerline is called dlong, lateral offset from the
// centerline dlat. Grade is a fixed-point slope at scale 8192.
//
// # Failure Model
//
// Decode never returns a partial model: structural problems surface as
// *FormatError, semantic ones as *ValidationError. Solver entry points
// report unsolvable edits through an ok=false result instead of an error;
// the caller keeps the prior geometry.
//
// All parsing and geometry math is pure and the package holds no mutable
// state, so values may be shared between readers freely as long as no
// caller mutates them.
package trk
