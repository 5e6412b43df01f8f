package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	for _, size := range []struct{ floors, elevators int }{
		{2, 1}, {4, 2}, {10, 3},
	} {
		c := Default(size.floors, size.elevators)
		if err := c.Validate(); err != nil {
			t.Errorf("Default(%d, %d): %v", size.floors, size.elevators, err)
		}
	}
}

func TestDefaultArrivalProfile(t *testing.T) {
	c := Default(4, 2)
	if got := c.ArrivalRates[0]; got != 1.0 {
		t.Errorf("ground floor rate = %v, want 1.0", got)
	}
	for f := 1; f < 4; f++ {
		if got := c.ArrivalRates[f]; got != 0.25 {
			t.Errorf("floor %d rate = %v, want 0.25", f, got)
		}
	}
	// Upper floors lean heavily toward the ground floor.
	if got := c.DestinationRates[2][0]; got != 0.8 {
		t.Errorf("P(2 -> 0) = %v, want 0.8", got)
	}
	if got := c.DestinationRates[2][2]; got != 0 {
		t.Errorf("P(2 -> 2) = %v, want 0", got)
	}
}

func TestDefaultDestinationRatesTwoFloors(t *testing.T) {
	rates := DefaultDestinationRates(2)
	want := [][]float64{{0, 1}, {1, 0}}
	for f := range rates {
		for d := range rates[f] {
			if rates[f][d] != want[f][d] {
				t.Fatalf("rates = %v, want %v", rates, want)
			}
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one floor", func(c *Config) { c.Floors = 1 }},
		{"no elevators", func(c *Config) { c.Elevators = nil }},
		{"range outside building", func(c *Config) { c.Elevators[0].MaxFloor = 7 }},
		{"inverted range", func(c *Config) { c.Elevators[0].MinFloor = 3; c.Elevators[0].MaxFloor = 1 }},
		{"zero capacity", func(c *Config) { c.Elevators[0].Capacity = 0 }},
		{"start outside range", func(c *Config) { c.Elevators[0].MaxFloor = 2; c.Elevators[0].StartFloor = 3 }},
		{"missing arrival rate", func(c *Config) { c.ArrivalRates = c.ArrivalRates[:3] }},
		{"negative arrival rate", func(c *Config) { c.ArrivalRates[1] = -0.5 }},
		{"nan arrival rate", func(c *Config) { c.ArrivalRates[1] = math.NaN() }},
		{"ragged destinations", func(c *Config) { c.DestinationRates[2] = []float64{1} }},
		{"self destination", func(c *Config) { c.DestinationRates[1] = []float64{0.5, 0.5, 0, 0} }},
		{"sum off", func(c *Config) { c.DestinationRates[0] = []float64{0, 0.5, 0.2, 0.2} }},
		{"negative queue capacity", func(c *Config) { c.QueueCapacities[0] = -1 }},
		{"negative max wait", func(c *Config) { c.MaxWaitSteps = -1 }},
		{"negative episode cap", func(c *Config) { c.MaxEpisodeSteps = -1 }},
		{"bogus mode", func(c *Config) { c.Mode = ObservationMode(9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default(4, 2)
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Validate accepted a broken config")
			}
			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate returned %T, want *config.Error", err)
			}
		})
	}
}

func TestValidateToleratesFloatNoise(t *testing.T) {
	c := Default(4, 1)
	c.DestinationRates[0] = []float64{0, 0.1, 0.2, 0.7 + 1e-12}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate rejected a distribution off by 1e-12: %v", err)
	}
}

func TestValidateAllowsEdgeValues(t *testing.T) {
	c := Default(4, 1)
	c.MaxWaitSteps = 0
	c.MaxEpisodeSteps = 0
	c.QueueCapacities[2] = 0
	c.ArrivalRates[3] = 0
	c.Elevators[0] = ElevatorConfig{MinFloor: 2, MaxFloor: 2, Capacity: 1, StartFloor: 2}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate rejected legal edge values: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	doc := `
floors: 3
elevators:
  - {minFloor: 0, maxFloor: 2, capacity: 4, startFloor: 1}
maxWaitSteps: 8
observationMode: flattened
rewards:
  delivered: 10
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Floors != 3 || len(c.Elevators) != 1 {
		t.Fatalf("building size = %d floors, %d elevators, want 3, 1", c.Floors, len(c.Elevators))
	}
	if c.Elevators[0].Capacity != 4 || c.Elevators[0].StartFloor != 1 {
		t.Errorf("elevator = %+v, want capacity 4 starting at 1", c.Elevators[0])
	}
	if c.MaxWaitSteps != 8 {
		t.Errorf("MaxWaitSteps = %d, want 8", c.MaxWaitSteps)
	}
	if c.Mode != ObsFlattened {
		t.Errorf("Mode = %v, want flattened", c.Mode)
	}
	// Overridden weight takes, untouched weights keep their defaults.
	if c.Rewards.Delivered != 10 {
		t.Errorf("Rewards.Delivered = %v, want 10", c.Rewards.Delivered)
	}
	if c.Rewards.Abandoned != DefaultRewards().Abandoned {
		t.Errorf("Rewards.Abandoned = %v, want default %v", c.Rewards.Abandoned, DefaultRewards().Abandoned)
	}
	// Absent profile fields come from Default for the declared size.
	if len(c.ArrivalRates) != 3 || len(c.QueueCapacities) != 3 {
		t.Errorf("profile not defaulted: %d rates, %d queue capacities", len(c.ArrivalRates), len(c.QueueCapacities))
	}
}

func TestLoadRejectsBrokenScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	doc := `
floors: 3
elevators:
  - {minFloor: 0, maxFloor: 2, startFloor: 0}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	// The elevator entry has no capacity; entries do not overlay.
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted an elevator without capacity")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load invented a scenario from a missing file")
	}
}
