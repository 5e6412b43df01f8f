// Package config defines the scenario description a simulation runs from:
// building shape, elevator fleet, arrival profile, reward weights and episode
// limits. A Config is plain data; Validate decides whether it describes a
// runnable scenario.
package config

import "math"

// distTolerance bounds the allowed drift of a probability distribution's sum
// from 1, to absorb float noise in hand-written scenario files.
const distTolerance = 1e-9

// ObservationMode selects how Env reports state after each step.
type ObservationMode int

const (
	// ObsStructured returns the nested per-elevator / per-queue view.
	ObsStructured ObservationMode = iota
	// ObsFlattened additionally packs the view into one fixed-order vector.
	ObsFlattened
)

func (m ObservationMode) String() string {
	switch m {
	case ObsStructured:
		return "structured"
	case ObsFlattened:
		return "flattened"
	default:
		return "undefined"
	}
}

// UnmarshalYAML accepts the mode by name in scenario files.
func (m *ObservationMode) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch s {
	case "structured":
		*m = ObsStructured
	case "flattened":
		*m = ObsFlattened
	default:
		return Errorf("unknown observation mode %q", s)
	}
	return nil
}

// ElevatorConfig fixes one car of the fleet. Floors are absolute building
// floors; the car may only ever occupy [MinFloor, MaxFloor].
type ElevatorConfig struct {
	MinFloor   int `yaml:"minFloor"`
	MaxFloor   int `yaml:"maxFloor"`
	Capacity   int `yaml:"capacity"`
	StartFloor int `yaml:"startFloor"`
}

// RewardWeights scales each reward component before summing. Signs are up to
// the caller: penalties are expressed as negative weights, not negated counts.
type RewardWeights struct {
	Delivered   float64 `yaml:"delivered"`
	MovedToward float64 `yaml:"movedToward"`
	MovedAway   float64 `yaml:"movedAway"`
	Rejected    float64 `yaml:"rejected"`
	Abandoned   float64 `yaml:"abandoned"`
	InElevator  float64 `yaml:"inElevator"`
	InQueue     float64 `yaml:"inQueue"`
}

// Config is the full scenario description. Zero values are not runnable; start
// from Default or Load and adjust.
type Config struct {
	// Floors numbers the building 0..Floors-1, bottom to top.
	Floors    int              `yaml:"floors"`
	Elevators []ElevatorConfig `yaml:"elevators"`

	// ArrivalRates holds one Poisson rate per floor, in expected passengers
	// per timestep. A rate of 0 switches arrivals off for that floor.
	ArrivalRates []float64 `yaml:"arrivalRates"`

	// DestinationRates holds one distribution per start floor over all
	// destination floors. Self-transitions must carry probability 0.
	DestinationRates [][]float64 `yaml:"destinationRates"`

	// QueueCapacities holds one waiting-line limit per floor. The limit
	// binds each of that floor's lines on its own, not their sum.
	QueueCapacities []int `yaml:"queueCapacities"`

	// MaxWaitSteps is how many whole timesteps a passenger queues before
	// abandoning. 0 means nobody waits: anyone not boarded during their
	// arrival step leaves again.
	MaxWaitSteps int `yaml:"maxWaitSteps"`

	// MaxEpisodeSteps ends the episode after this many steps. 0 means the
	// episode never ends on time alone.
	MaxEpisodeSteps int `yaml:"maxEpisodeSteps"`

	Rewards RewardWeights   `yaml:"rewards"`
	Mode    ObservationMode `yaml:"observationMode"`

	// Seed drives all randomness of the episode. Reset may override it.
	Seed uint64 `yaml:"seed"`
}

// Validate reports the first problem that makes the scenario unrunnable, as a
// *Error, or nil if the scenario is sound.
func (c *Config) Validate() error {
	if c.Floors < 2 {
		return Errorf("need at least 2 floors, got %d", c.Floors)
	}
	if len(c.Elevators) == 0 {
		return Errorf("need at least one elevator")
	}
	for i, e := range c.Elevators {
		if e.MinFloor < 0 || e.MaxFloor > c.Floors-1 || e.MinFloor > e.MaxFloor {
			return Errorf("elevator %d: floor range [%d, %d] does not fit building floors [0, %d]",
				i, e.MinFloor, e.MaxFloor, c.Floors-1)
		}
		if e.Capacity < 1 {
			return Errorf("elevator %d: capacity must be at least 1, got %d", i, e.Capacity)
		}
		if e.StartFloor < e.MinFloor || e.StartFloor > e.MaxFloor {
			return Errorf("elevator %d: start floor %d outside its range [%d, %d]",
				i, e.StartFloor, e.MinFloor, e.MaxFloor)
		}
	}
	if len(c.ArrivalRates) != c.Floors {
		return Errorf("want %d arrival rates, got %d", c.Floors, len(c.ArrivalRates))
	}
	for f, rate := range c.ArrivalRates {
		if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return Errorf("floor %d: arrival rate must be finite and non-negative, got %v", f, rate)
		}
	}
	if err := ValidateDestinationRates(c.Floors, c.DestinationRates); err != nil {
		return err
	}
	if len(c.QueueCapacities) != c.Floors {
		return Errorf("want %d queue capacities, got %d", c.Floors, len(c.QueueCapacities))
	}
	for f, limit := range c.QueueCapacities {
		if limit < 0 {
			return Errorf("floor %d: queue capacity must be non-negative, got %d", f, limit)
		}
	}
	if c.MaxWaitSteps < 0 {
		return Errorf("max wait steps must be non-negative, got %d", c.MaxWaitSteps)
	}
	if c.MaxEpisodeSteps < 0 {
		return Errorf("max episode steps must be non-negative, got %d", c.MaxEpisodeSteps)
	}
	if c.Mode != ObsStructured && c.Mode != ObsFlattened {
		return Errorf("unknown observation mode %d", c.Mode)
	}
	return nil
}

// ValidateDestinationRates checks one destination distribution per floor:
// square shape, finite non-negative entries, zero self-probability, unit sum.
func ValidateDestinationRates(floors int, rates [][]float64) error {
	if len(rates) != floors {
		return Errorf("want %d destination distributions, got %d", floors, len(rates))
	}
	for f, dist := range rates {
		if len(dist) != floors {
			return Errorf("floor %d: destination distribution has %d entries, want %d", f, len(dist), floors)
		}
		sum := 0.0
		for d, p := range dist {
			if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
				return Errorf("floor %d: destination probability for floor %d must be finite and non-negative, got %v", f, d, p)
			}
			if d == f && p != 0 {
				return Errorf("floor %d: self-destination probability must be 0, got %v", f, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > distTolerance {
			return Errorf("floor %d: destination probabilities sum to %v, want 1", f, sum)
		}
	}
	return nil
}
