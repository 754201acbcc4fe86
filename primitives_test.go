package trk

import (
	"errors"
	"math"
	"testing"
)

func TestStraight(t *testing.T) {
	end, err := Straight(V2(0, 0), V2(1, 1), math.Sqrt2)
	if err != nil {
		t.Fatalf("Straight: %v", err)
	}
	if !end.Approx(V2(1, 1), 1e-9) {
		t.Errorf("end = %v, want (1,1)", end)
	}
}

func TestStraight_Degenerate(t *testing.T) {
	if _, err := Straight(V2(0, 0), V2(1, 0), 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero length: got %v, want ErrInvalidGeometry", err)
	}
	if _, err := Straight(V2(0, 0), V2(0, 0), 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero heading: got %v, want ErrInvalidGeometry", err)
	}
}

func TestCurve(t *testing.T) {
	// Quarter turn left at radius 1.
	arc, err := Curve(V2(0, 0), V2(1, 0), V2(0, 1), math.Pi/2, TurnLeft)
	if err != nil {
		t.Fatalf("Curve: %v", err)
	}
	if !arc.Center.Approx(V2(0, 1), 1e-9) {
		t.Errorf("center = %v, want (0,1)", arc.Center)
	}
	if math.Abs(arc.Radius-1) > 1e-9 {
		t.Errorf("radius = %g, want 1", arc.Radius)
	}
	if !arc.End.Approx(V2(1, 1), 1e-9) {
		t.Errorf("end = %v, want (1,1)", arc.End)
	}
	if math.Abs(arc.Sweep-math.Pi/2) > 1e-9 {
		t.Errorf("sweep = %g, want pi/2", arc.Sweep)
	}
}

// Rebuilding the heading delta and arc length from the returned geometry
// must reproduce the construction inputs.
func TestCurve_ReconstructsInputs(t *testing.T) {
	tests := []struct {
		name   string
		h1, h2 Vec2
		length float64
		turn   TurnDirection
	}{
		{"quarter left", V2(1, 0), V2(0, 1), 250, TurnLeft},
		{"quarter right", V2(1, 0), V2(0, -1), 80, TurnRight},
		{"shallow left", V2(1, 0), V2(1, 0.2), 1234, TurnLeft},
		{"oblique", V2(1, 1), V2(-1, 1), 333, TurnLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := V2(10, -20)
			arc, err := Curve(start, tt.h1, tt.h2, tt.length, tt.turn)
			if err != nil {
				t.Fatalf("Curve: %v", err)
			}

			delta := normalizeAngle(tt.h2.Normalize().Atan2() - tt.h1.Normalize().Atan2())
			gotDelta := start.Sub(arc.Center).AngleTo(arc.End.Sub(arc.Center))
			if math.Abs(gotDelta-delta) > 1e-6 {
				t.Errorf("heading delta = %g, want %g", gotDelta, delta)
			}
			if got := arc.Radius * math.Abs(delta); math.Abs(got-tt.length) > 1e-6 {
				t.Errorf("arc length = %g, want %g", got, tt.length)
			}
		})
	}
}

func TestCurve_Degenerate(t *testing.T) {
	if _, err := Curve(V2(0, 0), V2(1, 0), V2(1, 0), 100, TurnLeft); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("no heading change: got %v, want ErrInvalidGeometry", err)
	}
	if _, err := Curve(V2(0, 0), V2(1, 0), V2(0, 1), 0, TurnLeft); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero length: got %v, want ErrInvalidGeometry", err)
	}
}
