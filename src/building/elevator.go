package building

import (
	"rlevator/src/passenger"
	"rlevator/src/types"
)

// Elevator is one car of the fleet: its fixed service range and capacity plus
// its current floor and riders. Cars only change through Building.Step.
type Elevator struct {
	id       int
	minFloor int
	maxFloor int
	capacity int
	floor    int
	riders   []*passenger.Passenger
}

func (e *Elevator) ID() int        { return e.id }
func (e *Elevator) Floor() int     { return e.floor }
func (e *Elevator) MinFloor() int  { return e.minFloor }
func (e *Elevator) MaxFloor() int  { return e.maxFloor }
func (e *Elevator) Capacity() int  { return e.capacity }
func (e *Elevator) NumRiders() int { return len(e.riders) }

// DestinationButtons reports which floors riders aboard still want, indexed
// by building floor.
func (e *Elevator) DestinationButtons(floors int) []bool {
	buttons := make([]bool, floors)
	for _, p := range e.riders {
		buttons[p.Dest] = true
	}
	return buttons
}

// move shifts the car one floor in direction d. A move that would leave the
// car's service range does not happen; from == to then signals the no-op.
func (e *Elevator) move(d types.Direction) (from, to int) {
	from = e.floor
	to = from + int(d)
	if to < e.minFloor || to > e.maxFloor {
		return from, from
	}
	e.floor = to
	return from, to
}

// load boards riders from the front of q until the car is full or the line is
// empty. A nil line boards nobody.
func (e *Elevator) load(q *queue) []*passenger.Passenger {
	if q == nil {
		return nil
	}
	boarded := q.take(e.capacity - len(e.riders))
	e.riders = append(e.riders, boarded...)
	return boarded
}

// unload releases exactly the riders whose destination is the current floor,
// keeping the rest in boarding order.
func (e *Elevator) unload() []*passenger.Passenger {
	var delivered []*passenger.Passenger
	kept := e.riders[:0]
	for _, p := range e.riders {
		if p.Dest == e.floor {
			delivered = append(delivered, p)
		} else {
			kept = append(kept, p)
		}
	}
	clear(e.riders[len(kept):])
	e.riders = kept
	return delivered
}
