package main

import (
	"golang.org/x/exp/rand"

	"rlevator/src/env"
	"rlevator/src/types"
)

// Policy picks one joint action from what the agent can see.
type Policy interface {
	Act(obs env.Observation) []types.Action
}

// randomPolicy samples the action space uniformly, as an exploration
// baseline.
type randomPolicy struct {
	space env.ActionSpace
	rng   *rand.Rand
}

func (p *randomPolicy) Act(env.Observation) []types.Action {
	return p.space.Sample(p.rng)
}

// collectivePolicy runs classic collective control per car: serve the
// current floor first, keep going while assigned demand remains ahead,
// otherwise turn around. Every pressed call is assigned to the closest car,
// so the fleet spreads out instead of racing for the same rider.
type collectivePolicy struct {
	lastDir  []types.Direction
	lastLoad []bool
}

func newCollectivePolicy(elevators int) *collectivePolicy {
	p := &collectivePolicy{
		lastDir:  make([]types.Direction, elevators),
		lastLoad: make([]bool, elevators),
	}
	for i := range p.lastDir {
		p.lastDir[i] = types.DirUp
	}
	return p
}

func (p *collectivePolicy) Act(obs env.Observation) []types.Action {
	assigned := assignCalls(obs)
	actions := make([]types.Action, len(obs.ElevatorFloors))
	for i := range actions {
		a := p.carAction(i, obs, assigned[i])
		p.lastLoad[i] = a == types.AC_LoadUp || a == types.AC_LoadDown
		actions[i] = a
	}
	return actions
}

// assignCalls gives every pressed call to the closest car, the lower car id
// winning ties. Distance stands in for the usual time-to-serve cost.
func assignCalls(obs env.Observation) [][]bool {
	assigned := make([][]bool, len(obs.ElevatorFloors))
	for i := range assigned {
		assigned[i] = make([]bool, len(obs.CallsUp))
	}
	for f := range obs.CallsUp {
		if !obs.CallsUp[f] && !obs.CallsDown[f] {
			continue
		}
		best := 0
		for i, floor := range obs.ElevatorFloors {
			if abs(floor-f) < abs(obs.ElevatorFloors[best]-f) {
				best = i
			}
		}
		assigned[best][f] = true
	}
	return assigned
}

// carAction decides one car's step.
//  1. Riders for this floor leave before anything else.
//  2. A call on this floor is answered, preferring the current direction.
//  3. Otherwise continue toward remaining demand, turning only when the
//     current direction is exhausted.
func (p *collectivePolicy) carAction(i int, obs env.Observation, assigned []bool) types.Action {
	floor := obs.ElevatorFloors[i]
	buttons := obs.ElevatorButtons[i]
	if buttons[floor] {
		return types.AC_Unload
	}
	// One load boards everyone the car has room for; loading again right away
	// would only camp on a call the car cannot serve.
	if !p.lastLoad[i] {
		if action, ok := p.loadHere(i, floor, obs); ok {
			return action
		}
	}
	above := demand(buttons, assigned, floor+1, len(buttons)) > 0
	below := demand(buttons, assigned, 0, floor) > 0
	switch {
	case p.lastDir[i] == types.DirUp && above:
		return types.AC_MoveUp
	case p.lastDir[i] == types.DirDown && below:
		return types.AC_MoveDown
	case above:
		p.lastDir[i] = types.DirUp
		return types.AC_MoveUp
	case below:
		p.lastDir[i] = types.DirDown
		return types.AC_MoveDown
	default:
		return types.AC_Idle
	}
}

// loadHere answers a call on the car's own floor, assigned or not: a pickup
// in passing costs nothing.
func (p *collectivePolicy) loadHere(i, floor int, obs env.Observation) (types.Action, bool) {
	preferUp := p.lastDir[i] == types.DirUp
	if obs.CallsUp[floor] && (preferUp || !obs.CallsDown[floor]) {
		p.lastDir[i] = types.DirUp
		return types.AC_LoadUp, true
	}
	if obs.CallsDown[floor] {
		p.lastDir[i] = types.DirDown
		return types.AC_LoadDown, true
	}
	return types.AC_Idle, false
}

// demand counts floors in [startFloor, endFloor) the car has a reason to
// visit: a rider aboard wants them, or a call there is assigned to this car.
func demand(buttons, assigned []bool, startFloor, endFloor int) (result int) {
	for floor := startFloor; floor < endFloor; floor++ {
		if buttons[floor] || assigned[floor] {
			result++
		}
	}
	return result
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
