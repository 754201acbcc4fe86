package trk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeStatus_Empty(t *testing.T) {
	got := ComputeStatus(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("ComputeStatus(nil) = %v, want empty map", got)
	}
}

func TestComputeStatus(t *testing.T) {
	sections := []Geometry{
		{Prev: NoSection, Next: 1},
		{Prev: 0, Next: 99}, // dangling reference counts as open
	}
	want := map[Node]EndpointStatus{
		{0, EndpointStart}: Disconnected,
		{0, EndpointEnd}:   Connected,
		{1, EndpointStart}: Connected,
		{1, EndpointEnd}:   Disconnected,
	}
	if diff := cmp.Diff(want, ComputeStatus(sections)); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestClosed(t *testing.T) {
	ring := []Geometry{
		{Prev: 2, Next: 1},
		{Prev: 0, Next: 2},
		{Prev: 1, Next: 0},
	}
	if !Closed(ring) {
		t.Error("3-section ring should be closed")
	}

	broken := []Geometry{
		{Prev: 2, Next: 1},
		{Prev: 0, Next: NoSection},
		{Prev: 1, Next: 0},
	}
	if Closed(broken) {
		t.Error("broken chain should not be closed")
	}

	// Two disjoint self-loops never visit the whole collection.
	split := []Geometry{
		{Prev: 0, Next: 0},
		{Prev: 1, Next: 1},
	}
	if Closed(split) {
		t.Error("disjoint loops should not be closed")
	}

	if Closed(nil) {
		t.Error("empty collection should not be closed")
	}
}
