// Package building implements the simulated building: floors with their
// waiting queues, the elevator fleet, and the timestep mechanics that tie
// them together.
package building

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/exp/rand"

	"rlevator/src/arrivals"
	"rlevator/src/config"
	"rlevator/src/passenger"
	"rlevator/src/types"
)

// PassengerSource feeds riders into the building, one batch per timestep.
// Implementations must be deterministic for a fixed seed.
type PassengerSource interface {
	// Arrivals returns the riders arriving during the given timestep.
	Arrivals(step int) []*passenger.Passenger
}

// Building holds the whole simulation state for one episode.
type Building struct {
	floors    int
	queues    []*floorQueues
	elevators []*Elevator
	source    PassengerSource
	timestep  int
	totals    Totals
}

// New builds a building from cfg with Poisson traffic drawn from src.
func New(cfg config.Config, src rand.Source) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen, err := arrivals.NewGenerator(cfg.Floors, cfg.ArrivalRates, cfg.DestinationRates, cfg.MaxWaitSteps, src)
	if err != nil {
		return nil, err
	}
	return NewWithSource(cfg, gen)
}

// NewWithSource builds a building fed by an arbitrary rider source, scripted
// traffic included. The arrival profile in cfg is validated but unused.
func NewWithSource(cfg config.Config, source PassengerSource) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Building{floors: cfg.Floors, source: source}
	for f := 0; f < cfg.Floors; f++ {
		b.queues = append(b.queues, newFloorQueues(f, cfg.Floors-1, cfg.QueueCapacities[f]))
	}
	for i, ec := range cfg.Elevators {
		b.elevators = append(b.elevators, &Elevator{
			id:       i,
			minFloor: ec.MinFloor,
			maxFloor: ec.MaxFloor,
			capacity: ec.Capacity,
			floor:    ec.StartFloor,
		})
	}
	slog.Debug("Building constructed", "floors", b.floors, "elevators", len(b.elevators))
	return b, nil
}

// Step runs one timestep: new riders join their queues, the impatient give
// up, every car executes its one action in fleet order, and everyone still in
// the system ages by one step. The returned outcome holds this step's counts.
//
// An action slice of the wrong length or an action outside the action space
// is a contract error: Step returns it before touching any state.
func (b *Building) Step(actions []types.Action) (StepOutcome, error) {
	if len(actions) != len(b.elevators) {
		return StepOutcome{}, fmt.Errorf("got %d actions for %d elevators", len(actions), len(b.elevators))
	}
	for i, a := range actions {
		if !a.Valid() {
			return StepOutcome{}, fmt.Errorf("elevator %d: action %d outside the action space", i, int(a))
		}
	}
	out := StepOutcome{Step: b.timestep}

	for _, p := range b.source.Arrivals(b.timestep) {
		if p.Start < 0 || p.Start >= b.floors || p.Dest < 0 || p.Dest >= b.floors {
			panic(fmt.Sprintf("arrival %v outside building floors [0, %d]", p, b.floors-1))
		}
		out.Arrived++
		if b.queues[p.Start].admit(p) {
			out.Admitted++
		} else {
			out.Rejected++
		}
	}

	b.eachQueue(func(_ int, _ types.Direction, q *queue) {
		out.Abandoned += len(q.expire())
	})

	for i, e := range b.elevators {
		switch actions[i] {
		case types.AC_MoveUp, types.AC_MoveDown:
			dir := types.DirUp
			if actions[i] == types.AC_MoveDown {
				dir = types.DirDown
			}
			from, to := e.move(dir)
			if from == to {
				break
			}
			for _, p := range e.riders {
				if p.TowardDestination(from, to) {
					out.MovedToward++
				} else {
					out.MovedAway++
				}
			}
		case types.AC_LoadUp:
			out.Boarded += len(e.load(b.queues[e.floor].up))
		case types.AC_LoadDown:
			out.Boarded += len(e.load(b.queues[e.floor].down))
		case types.AC_Unload:
			for _, p := range e.unload() {
				out.Delivered++
				b.totals.WaitSum += p.Wait()
				b.totals.AgeSum += p.Age()
			}
		}
	}

	b.eachQueue(func(_ int, _ types.Direction, q *queue) {
		q.tick()
	})
	for _, e := range b.elevators {
		for _, p := range e.riders {
			p.Tick(false)
		}
	}

	out.InQueue = b.Waiting()
	out.InElevator = b.Riding()
	b.timestep++
	b.totals.add(out)
	return out, nil
}

// eachQueue visits every existing line from the ground floor up, up line
// before down line on each floor. All whole-building sweeps use this order.
func (b *Building) eachQueue(visit func(floor int, d types.Direction, q *queue)) {
	for f, fq := range b.queues {
		if fq.up != nil {
			visit(f, types.DirUp, fq.up)
		}
		if fq.down != nil {
			visit(f, types.DirDown, fq.down)
		}
	}
}

// NumFloors returns the number of floors, numbered 0 to NumFloors-1.
func (b *Building) NumFloors() int {
	return b.floors
}

// NumElevators returns the fleet size.
func (b *Building) NumElevators() int {
	return len(b.elevators)
}

// Elevators returns the fleet in action order. Treat it as read-only.
func (b *Building) Elevators() []*Elevator {
	return b.elevators
}

// Timestep returns the number of completed steps.
func (b *Building) Timestep() int {
	return b.timestep
}

// Totals returns the episode's rider accounting so far.
func (b *Building) Totals() Totals {
	return b.totals
}

// Waiting counts the riders queued anywhere in the building.
func (b *Building) Waiting() (count int) {
	b.eachQueue(func(_ int, _ types.Direction, q *queue) {
		count += q.size()
	})
	return count
}

// Riding counts the riders aboard any car.
func (b *Building) Riding() (count int) {
	for _, e := range b.elevators {
		count += len(e.riders)
	}
	return count
}

// CallButtons reports which queues hold at least one rider, as one up row and
// one down row indexed by floor. Buttons on missing lines stay false.
func (b *Building) CallButtons() (up, down []bool) {
	up = make([]bool, b.floors)
	down = make([]bool, b.floors)
	b.eachQueue(func(f int, d types.Direction, q *queue) {
		if q.size() == 0 {
			return
		}
		if d == types.DirUp {
			up[f] = true
		} else {
			down[f] = true
		}
	})
	return up, down
}

// StatusString renders one compact line of building state for demo output:
// queue depth per floor, then every car's floor and load.
func (b *Building) StatusString() string {
	depths := make([]int, b.floors)
	b.eachQueue(func(f int, _ types.Direction, q *queue) {
		depths[f] += q.size()
	})
	var sb strings.Builder
	fmt.Fprintf(&sb, "t=%-4d q=%v", b.timestep, depths)
	for _, e := range b.elevators {
		fmt.Fprintf(&sb, " | E%d@%d %d/%d", e.id, e.floor, len(e.riders), e.capacity)
	}
	return sb.String()
}
