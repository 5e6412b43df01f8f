package env

import (
	"golang.org/x/exp/rand"

	"rlevator/src/types"
)

// ActionSpace describes the per-step decision: one action code out of
// types.NumActions for every elevator, in fleet order.
type ActionSpace struct {
	Elevators int
}

// Size is the number of distinct joint actions, types.NumActions to the
// power of Elevators.
func (s ActionSpace) Size() int {
	size := 1
	for i := 0; i < s.Elevators; i++ {
		size *= types.NumActions
	}
	return size
}

// Contains reports whether actions is a legal joint action.
func (s ActionSpace) Contains(actions []types.Action) bool {
	if len(actions) != s.Elevators {
		return false
	}
	for _, a := range actions {
		if !a.Valid() {
			return false
		}
	}
	return true
}

// Sample draws one uniformly random action per elevator, for exploration and
// baseline policies.
func (s ActionSpace) Sample(rng *rand.Rand) []types.Action {
	actions := make([]types.Action, s.Elevators)
	for i := range actions {
		actions[i] = types.Action(rng.Intn(types.NumActions))
	}
	return actions
}

// ObservationSpace describes the shape of what the agent sees.
type ObservationSpace struct {
	Elevators int
	Floors    int
}

// FlatLen is the length of the flattened observation vector: destination
// buttons and a one-hot floor per car, plus two call-button rows.
func (s ObservationSpace) FlatLen() int {
	return s.Elevators*s.Floors*2 + 2*s.Floors
}
