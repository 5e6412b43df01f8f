package building

import (
	"slices"

	"rlevator/src/passenger"
	"rlevator/src/types"
)

// queue is one FIFO waiting line, either the up or the down line of a floor,
// bounded by the floor's configured capacity.
type queue struct {
	max    int
	riders []*passenger.Passenger
}

func (q *queue) size() int {
	return len(q.riders)
}

func (q *queue) push(p *passenger.Passenger) {
	q.riders = append(q.riders, p)
}

// take removes up to n riders from the front of the line, preserving the
// order of the rest.
func (q *queue) take(n int) []*passenger.Passenger {
	if n <= 0 || len(q.riders) == 0 {
		return nil
	}
	n = min(n, len(q.riders))
	taken := make([]*passenger.Passenger, n)
	copy(taken, q.riders)
	q.riders = slices.Delete(q.riders, 0, n)
	return taken
}

// expire removes every rider whose patience has run out, preserving the
// order of the rest.
func (q *queue) expire() []*passenger.Passenger {
	var expired []*passenger.Passenger
	kept := q.riders[:0]
	for _, p := range q.riders {
		if p.ReachedMaxWait() {
			expired = append(expired, p)
		} else {
			kept = append(kept, p)
		}
	}
	clear(q.riders[len(kept):])
	q.riders = kept
	return expired
}

// tick ages every queued rider by one waited step.
func (q *queue) tick() {
	for _, p := range q.riders {
		p.Tick(true)
	}
}

// floorQueues pairs the up and down lines of one floor. Each line is bounded
// by the floor's capacity on its own. The ground floor has no down line and
// the top floor no up line; those stay nil.
type floorQueues struct {
	up   *queue
	down *queue
}

func newFloorQueues(floor, top, capacity int) *floorQueues {
	fq := &floorQueues{}
	if floor < top {
		fq.up = &queue{max: capacity}
	}
	if floor > 0 {
		fq.down = &queue{max: capacity}
	}
	return fq
}

// queueFor returns the line riders headed in direction d join, or nil where
// the building offers none.
func (fq *floorQueues) queueFor(d types.Direction) *queue {
	if d == types.DirUp {
		return fq.up
	}
	return fq.down
}

// admit appends p to their line if it still has room for one more.
func (fq *floorQueues) admit(p *passenger.Passenger) bool {
	q := fq.queueFor(p.Direction())
	if q.size() >= q.max {
		return false
	}
	q.push(p)
	return true
}
