package trk

// Endpoint names one end of a section.
type Endpoint int

const (
	EndpointStart Endpoint = iota
	EndpointEnd
)

func (e Endpoint) String() string {
	if e == EndpointStart {
		return "start"
	}
	return "end"
}

// Node addresses one endpoint of one section in a collection.
type Node struct {
	Section  int
	Endpoint Endpoint
}

// EndpointStatus is the connectivity state of a node.
type EndpointStatus int

const (
	Disconnected EndpointStatus = iota
	Connected
)

func (s EndpointStatus) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

// validID reports whether id names a section in a collection of n.
func validID(id, n int) bool {
	return id >= 0 && id < n
}

// ComputeStatus recomputes the connectivity of every endpoint in the
// collection from scratch. A start endpoint is disconnected when the
// section's Prev id is NoSection or out of range, an end endpoint likewise
// for Next. Empty input yields an empty map. The result is freshly
// allocated on every call; callers own any caching or diffing.
func ComputeStatus(sections []Geometry) map[Node]EndpointStatus {
	status := make(map[Node]EndpointStatus, 2*len(sections))
	for i, s := range sections {
		start, end := Disconnected, Disconnected
		if validID(s.Prev, len(sections)) {
			start = Connected
		}
		if validID(s.Next, len(sections)) {
			end = Connected
		}
		status[Node{i, EndpointStart}] = start
		status[Node{i, EndpointEnd}] = end
	}
	return status
}

// Closed reports whether the sections form one closed loop: every endpoint
// connected, every Next backed by a matching Prev, and a walk along Next
// from section 0 visiting all sections before returning to 0.
func Closed(sections []Geometry) bool {
	n := len(sections)
	if n == 0 {
		return false
	}
	at := 0
	for step := 0; step < n; step++ {
		next := sections[at].Next
		if !validID(next, n) || sections[next].Prev != at {
			return false
		}
		at = next
		if at == 0 {
			return step == n-1
		}
	}
	return false
}
