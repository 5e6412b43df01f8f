// Package env wraps the building simulation in the usual surface of a
// learning environment: reset to a seeded initial state, step with one action
// per elevator, observe, collect a scalar reward.
package env

import (
	"errors"
	"log/slog"

	"github.com/tiendc/go-deepcopy"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"rlevator/src/building"
	"rlevator/src/config"
	"rlevator/src/types"
)

// Env runs one scenario as a sequence of episodes. It keeps its own copy of
// the configuration, so the caller may reuse or modify theirs freely after
// construction.
type Env struct {
	cfg      config.Config
	building *building.Building
	space    ActionSpace
	done     bool
}

// Info accompanies every step for diagnostics: the raw counts behind the
// reward and the episode's running rider accounting.
type Info struct {
	Outcome building.StepOutcome
	Totals  building.Totals
}

// Result is everything one step or reset hands back to the agent. Flat is
// only filled in flattened observation mode.
type Result struct {
	Observation Observation
	Flat        *mat.VecDense
	Reward      float64
	Done        bool
	Info        Info
}

// New validates cfg and starts the first episode with the seed it carries.
func New(cfg config.Config) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Env{}
	err := deepcopy.Copy(&e.cfg, &cfg)
	if err != nil {
		panic(err)
	}
	e.space = ActionSpace{Elevators: len(e.cfg.Elevators)}
	if _, err := e.Reset(e.cfg.Seed); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset starts a fresh episode of the same scenario, with all randomness
// drawn from seed. It returns the initial observation: empty queues, every
// car on its start floor.
func (e *Env) Reset(seed uint64) (Result, error) {
	b, err := building.New(e.cfg, rand.NewSource(seed))
	if err != nil {
		return Result{}, err
	}
	e.building = b
	e.done = false
	slog.Debug("environment reset",
		"seed", seed, "floors", e.cfg.Floors, "elevators", len(e.cfg.Elevators))
	return e.result(building.StepOutcome{}, 0), nil
}

// ResetWith swaps in a new scenario and starts a fresh episode from it. The
// environment keeps its own copy of cfg.
func (e *Env) ResetWith(cfg config.Config, seed uint64) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	var owned config.Config
	err := deepcopy.Copy(&owned, &cfg)
	if err != nil {
		panic(err)
	}
	e.cfg = owned
	e.space = ActionSpace{Elevators: len(e.cfg.Elevators)}
	return e.Reset(seed)
}

// Step advances the episode by one timestep. Stepping a finished episode or
// passing a malformed joint action returns an error and changes nothing.
func (e *Env) Step(actions []types.Action) (Result, error) {
	if e.done {
		return Result{}, errors.New("episode is over: call Reset before stepping again")
	}
	out, err := e.building.Step(actions)
	if err != nil {
		return Result{}, err
	}
	e.done = e.cfg.MaxEpisodeSteps > 0 && e.building.Timestep() >= e.cfg.MaxEpisodeSteps
	return e.result(out, out.Reward(e.cfg.Rewards)), nil
}

func (e *Env) result(out building.StepOutcome, reward float64) Result {
	res := Result{
		Observation: observe(e.building),
		Reward:      reward,
		Done:        e.done,
		Info:        Info{Outcome: out, Totals: e.building.Totals()},
	}
	if e.cfg.Mode == config.ObsFlattened {
		res.Flat = res.Observation.Flatten()
	}
	return res
}

// Observe snapshots the current state without advancing it.
func (e *Env) Observe() Observation {
	return observe(e.building)
}

// Done reports whether the current episode has ended.
func (e *Env) Done() bool {
	return e.done
}

// ActionSpace returns the joint action space of this scenario.
func (e *Env) ActionSpace() ActionSpace {
	return e.space
}

// ObservationSpace returns the observation shape of this scenario.
func (e *Env) ObservationSpace() ObservationSpace {
	return ObservationSpace{Elevators: len(e.cfg.Elevators), Floors: e.cfg.Floors}
}

// Config returns a copy of the scenario the environment runs.
func (e *Env) Config() config.Config {
	var out config.Config
	err := deepcopy.Copy(&out, &e.cfg)
	if err != nil {
		panic(err)
	}
	return out
}

// Totals returns the current episode's rider accounting so far.
func (e *Env) Totals() building.Totals {
	return e.building.Totals()
}

// Building exposes the underlying simulation, mainly for status output.
func (e *Env) Building() *building.Building {
	return e.building
}
