package arrivals

import "rlevator/src/passenger"

// Trip is one scripted arrival: who shows up where, headed where, and when.
type Trip struct {
	Step  int
	Start int
	Dest  int
}

// Script replays a fixed arrival plan, for tests and worked scenarios.
// Riders are numbered from 1 in plan order, like the Generator does.
type Script struct {
	maxWait int
	nextID  int
	trips   []Trip
}

// NewScript builds a scripted source. Trips may be listed in any step order;
// each is emitted in the step it names, in plan order within the step.
func NewScript(maxWait int, trips ...Trip) *Script {
	return &Script{maxWait: maxWait, nextID: 1, trips: trips}
}

// Arrivals returns the riders whose trip starts this timestep.
func (s *Script) Arrivals(step int) []*passenger.Passenger {
	var out []*passenger.Passenger
	for _, tr := range s.trips {
		if tr.Step != step {
			continue
		}
		out = append(out, passenger.New(s.nextID, tr.Start, tr.Dest, step, s.maxWait))
		s.nextID++
	}
	return out
}
