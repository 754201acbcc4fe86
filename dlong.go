package trk

// SectionAt locates the section containing the longitudinal coordinate
// dlong and the normalized fraction of the way through it. Coordinates
// past the final section fall into it (the track wraps there), matching
// how the simulator indexes laps. Fails only for an empty track.
func SectionAt(t *Track, dlong float64) (index int, frac float64, ok bool) {
	n := len(t.Sections)
	if n == 0 {
		return 0, 0, false
	}
	for i := 0; i < n-1; i++ {
		s := &t.Sections[i]
		if float64(s.StartDLong) <= dlong && dlong < float64(t.Sections[i+1].StartDLong) {
			return i, (dlong - float64(s.StartDLong)) / float64(s.Length), true
		}
	}
	last := &t.Sections[n-1]
	if last.Length <= 0 {
		return n - 1, 0, true
	}
	return n - 1, (dlong - float64(last.StartDLong)) / float64(last.Length), true
}
