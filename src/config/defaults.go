package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

const (
	DefaultQueueCapacity    = 20
	DefaultElevatorCapacity = 10
	DefaultMaxWaitSteps     = 50
	DefaultMaxEpisodeSteps  = 1000
)

// Default arrival profile: half the traffic a fleet can nominally absorb
// enters at the ground floor headed evenly upward, the same amount spread over
// the upper floors heads mostly back down to the ground floor.
const (
	groundLambdaPerElevator = 0.5
	groundDestinationProb   = 0.8
)

// Default builds a runnable scenario for a building of the given size: all
// elevators serve every floor from the ground floor up, queues and capacities
// use the package defaults and arrivals follow the ground-heavy profile.
func Default(floors, elevators int) Config {
	c := Config{
		Floors:          floors,
		MaxWaitSteps:    DefaultMaxWaitSteps,
		MaxEpisodeSteps: DefaultMaxEpisodeSteps,
		Rewards:         DefaultRewards(),
		Mode:            ObsStructured,
	}
	for i := 0; i < elevators; i++ {
		c.Elevators = append(c.Elevators, ElevatorConfig{
			MinFloor:   0,
			MaxFloor:   floors - 1,
			Capacity:   DefaultElevatorCapacity,
			StartFloor: 0,
		})
	}
	if floors < 2 || elevators < 1 {
		// Not runnable no matter the profile. Leave the rest for Validate to
		// refuse.
		return c
	}
	c.ArrivalRates = DefaultArrivalRates(floors, elevators)
	c.DestinationRates = DefaultDestinationRates(floors)
	c.QueueCapacities = make([]int, floors)
	for f := 0; f < floors; f++ {
		c.QueueCapacities[f] = DefaultQueueCapacity
	}
	return c
}

// DefaultArrivalRates returns the ground-heavy Poisson rates: the ground floor
// generates groundLambdaPerElevator per elevator, the upper floors share the
// same total between them.
func DefaultArrivalRates(floors, elevators int) []float64 {
	rates := make([]float64, floors)
	rates[0] = groundLambdaPerElevator * float64(elevators)
	for f := 1; f < floors; f++ {
		rates[f] = groundLambdaPerElevator * float64(elevators) / float64(floors)
	}
	return rates
}

// DefaultDestinationRates returns the destination distributions matching the
// default profile: from the ground floor all upper floors are equally likely,
// from an upper floor the ground floor draws groundDestinationProb and the
// remaining mass spreads evenly over the other upper floors.
func DefaultDestinationRates(floors int) [][]float64 {
	rates := make([][]float64, floors)
	for f := 0; f < floors; f++ {
		rates[f] = make([]float64, floors)
	}
	for d := 1; d < floors; d++ {
		rates[0][d] = 1 / float64(floors-1)
	}
	if floors == 2 {
		// Only one possible trip from the upper floor.
		rates[1][0] = 1
		return rates
	}
	for f := 1; f < floors; f++ {
		rates[f][0] = groundDestinationProb
		rest := (1 - groundDestinationProb) / float64(floors-2)
		for d := 1; d < floors; d++ {
			if d != f {
				rates[f][d] = rest
			}
		}
	}
	return rates
}

// DefaultRewards weights delivery as the dominant signal, keeps the shaping
// terms small and prices time pressure per occupant per step.
func DefaultRewards() RewardWeights {
	return RewardWeights{
		Delivered:   5,
		MovedToward: 0.5,
		MovedAway:   -0.5,
		Rejected:    -2,
		Abandoned:   -3,
		InElevator:  -0.05,
		InQueue:     -0.1,
	}
}

// Load reads a scenario file and overlays it on the defaults for the building
// size it declares: fields present in the file override, absent scenario-level
// fields keep their default. Elevator entries do not overlay; each one listed
// must be complete. The result is validated before it is returned.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	// First pass only probes the building size so the defaults have a shape
	// to fill in.
	var probe struct {
		Floors    int              `yaml:"floors"`
		Elevators []ElevatorConfig `yaml:"elevators"`
	}
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return Config{}, Errorf("decode %s: %v", path, err)
	}
	c := Default(probe.Floors, len(probe.Elevators))
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, Errorf("decode %s: %v", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
