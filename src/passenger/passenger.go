// Package passenger defines the riders moving through the simulation and the
// bookkeeping of their patience.
package passenger

import (
	"fmt"

	"rlevator/src/types"
)

// Passenger is one rider from arrival at a floor to delivery or abandonment.
// The wait and age counters only move through Tick, which keeps wait <= age:
// wait counts whole timesteps spent queued, age whole timesteps since
// arrival regardless of place.
type Passenger struct {
	ID        int
	Start     int
	Dest      int
	ArrivedAt int
	MaxWait   int

	wait int
	age  int
}

// New creates a rider queued at start and headed to dest, arriving in
// timestep arrivedAt. The floors must differ; a rider already at their
// destination has no queue to join.
func New(id, start, dest, arrivedAt, maxWait int) *Passenger {
	if start == dest {
		panic(fmt.Sprintf("passenger %d: start and destination are both floor %d", id, start))
	}
	return &Passenger{ID: id, Start: start, Dest: dest, ArrivedAt: arrivedAt, MaxWait: maxWait}
}

// Direction of travel from the start floor. It decides which queue the rider
// joins and never changes afterwards.
func (p *Passenger) Direction() types.Direction {
	if p.Dest > p.Start {
		return types.DirUp
	}
	return types.DirDown
}

// Tick advances the rider by one whole timestep. Wait only grows while the
// rider is still queued.
func (p *Passenger) Tick(queued bool) {
	p.age++
	if queued {
		p.wait++
	}
}

// Wait returns the whole timesteps the rider has spent queued.
func (p *Passenger) Wait() int {
	return p.wait
}

// Age returns the whole timesteps since the rider arrived.
func (p *Passenger) Age() int {
	return p.age
}

// ReachedMaxWait reports whether the rider's patience is used up. Reaching
// the limit is enough, it does not have to be exceeded.
func (p *Passenger) ReachedMaxWait() bool {
	return p.wait >= p.MaxWait
}

// TowardDestination reports whether a ride from floor from to floor to brings
// the rider closer to their destination. A rider carried off their own
// destination floor moves away.
func (p *Passenger) TowardDestination(from, to int) bool {
	return abs(to-p.Dest) < abs(from-p.Dest)
}

func (p *Passenger) String() string {
	return fmt.Sprintf("P%d %d->%d wait %d/%d", p.ID, p.Start, p.Dest, p.wait, p.MaxWait)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
