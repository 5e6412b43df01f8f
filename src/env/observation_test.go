package env

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFlattenLayout(t *testing.T) {
	// Two cars in a three-floor building: car 0 on floor 1 with a rider for
	// floor 2, car 1 idle on the ground floor, a call up on 0, a call down
	// on 2.
	o := Observation{
		ElevatorButtons: [][]bool{
			{false, false, true},
			{false, false, false},
		},
		CallsUp:        []bool{true, false, false},
		CallsDown:      []bool{false, false, true},
		ElevatorFloors: []int{1, 0},
	}
	want := []float64{
		0, 0, 1, // car 0 destination buttons
		0, 0, 0, // car 1 destination buttons
		1, 0, 0, // calls up
		0, 0, 1, // calls down
		0, 1, 0, // car 0 floor
		1, 0, 0, // car 1 floor
	}
	got := o.Flatten()
	if got.Len() != 18 || o.FlatLen() != 18 {
		t.Fatalf("flat length = %d (FlatLen %d), want 18", got.Len(), o.FlatLen())
	}
	if !mat.Equal(got, mat.NewVecDense(len(want), want)) {
		t.Fatalf("flattened = %v", mat.Formatted(got.T()))
	}
	if shape := (ObservationSpace{Elevators: 2, Floors: 3}); shape.FlatLen() != got.Len() {
		t.Fatalf("ObservationSpace.FlatLen = %d, want %d", shape.FlatLen(), got.Len())
	}
}
