package env

import (
	"gonum.org/v1/gonum/mat"

	"rlevator/src/building"
)

// Observation is the state visible to the agent after a step: which floors
// the riders aboard each car still want, which call buttons are pressed, and
// where every car is. It reveals nothing beyond button granularity, no queue
// lengths, wait times or rider identities.
type Observation struct {
	// ElevatorButtons holds one row per car, indexed by floor: true iff a
	// rider aboard wants that floor.
	ElevatorButtons [][]bool
	// CallsUp and CallsDown are indexed by floor: true iff that line holds
	// at least one rider. Buttons on missing lines stay false.
	CallsUp   []bool
	CallsDown []bool
	// ElevatorFloors holds every car's current floor, in fleet order.
	ElevatorFloors []int
}

// observe snapshots b into a fresh Observation. The returned slices share
// nothing with the building.
func observe(b *building.Building) Observation {
	floors := b.NumFloors()
	obs := Observation{}
	for _, e := range b.Elevators() {
		obs.ElevatorButtons = append(obs.ElevatorButtons, e.DestinationButtons(floors))
		obs.ElevatorFloors = append(obs.ElevatorFloors, e.Floor())
	}
	obs.CallsUp, obs.CallsDown = b.CallButtons()
	return obs
}

// FlatLen returns the length of this observation's flattened form.
func (o Observation) FlatLen() int {
	floors := len(o.CallsUp)
	return len(o.ElevatorButtons)*floors*2 + 2*floors
}

// Flatten packs the observation into one fixed-order vector: the destination
// buttons row-major, the up then the down call buttons, then every car's
// floor as a one-hot row over the whole building. Buttons become 0 or 1.
func (o Observation) Flatten() *mat.VecDense {
	floors := len(o.CallsUp)
	data := make([]float64, 0, o.FlatLen())
	for _, row := range o.ElevatorButtons {
		data = appendBools(data, row)
	}
	data = appendBools(data, o.CallsUp)
	data = appendBools(data, o.CallsDown)
	for _, floor := range o.ElevatorFloors {
		for f := 0; f < floors; f++ {
			if f == floor {
				data = append(data, 1)
			} else {
				data = append(data, 0)
			}
		}
	}
	return mat.NewVecDense(len(data), data)
}

func appendBools(data []float64, bits []bool) []float64 {
	for _, b := range bits {
		if b {
			data = append(data, 1)
		} else {
			data = append(data, 0)
		}
	}
	return data
}
