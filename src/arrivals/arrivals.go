// Package arrivals produces the riders entering the building, either drawn
// from per-floor Poisson processes or replayed from a fixed script.
package arrivals

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"rlevator/src/config"
	"rlevator/src/passenger"
)

// Generator draws arrivals floor by floor: a Poisson count per floor and
// timestep, then one destination per rider from that floor's distribution.
// All draws come from the single source handed to NewGenerator, so equal
// seeds replay equal traffic.
type Generator struct {
	maxWait int
	nextID  int
	floors  []floorSource
}

// floorSource is the pair of distributions for one floor with traffic.
type floorSource struct {
	floor int
	count distuv.Poisson
	dest  distuv.Categorical
}

// NewGenerator builds a generator for a building with the given floor count.
// rates holds one Poisson rate per floor, dests one destination distribution
// per floor. Floors with rate 0 generate nothing and need no distribution
// draw. Riders are numbered from 1 in order of creation.
func NewGenerator(floors int, rates []float64, dests [][]float64, maxWait int, src rand.Source) (*Generator, error) {
	if len(rates) != floors {
		return nil, config.Errorf("want %d arrival rates, got %d", floors, len(rates))
	}
	for f, rate := range rates {
		if rate < 0 {
			return nil, config.Errorf("floor %d: arrival rate must be non-negative, got %v", f, rate)
		}
	}
	if err := config.ValidateDestinationRates(floors, dests); err != nil {
		return nil, err
	}
	if maxWait < 0 {
		return nil, config.Errorf("max wait steps must be non-negative, got %d", maxWait)
	}
	g := &Generator{maxWait: maxWait, nextID: 1}
	for f := 0; f < floors; f++ {
		if rates[f] == 0 {
			continue
		}
		g.floors = append(g.floors, floorSource{
			floor: f,
			count: distuv.Poisson{Lambda: rates[f], Src: src},
			dest:  distuv.NewCategorical(dests[f], src),
		})
	}
	return g, nil
}

// Arrivals draws this timestep's riders, ordered by floor bottom to top. The
// step number stamps the riders but does not influence the draw; traffic is
// stationary.
func (g *Generator) Arrivals(step int) []*passenger.Passenger {
	var out []*passenger.Passenger
	for i := range g.floors {
		fs := &g.floors[i]
		n := int(fs.count.Rand())
		for j := 0; j < n; j++ {
			dest := int(fs.dest.Rand())
			out = append(out, passenger.New(g.nextID, fs.floor, dest, step, g.maxWait))
			g.nextID++
		}
	}
	return out
}
