package passenger

import (
	"testing"

	"rlevator/src/types"
)

func TestNewRejectsZeroTrip(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New accepted a passenger whose start is their destination")
		}
	}()
	New(1, 3, 3, 0, 10)
}

func TestNewStampsArrival(t *testing.T) {
	p := New(7, 0, 4, 12, 10)
	if p.ID != 7 || p.ArrivedAt != 12 || p.Wait() != 0 || p.Age() != 0 {
		t.Fatalf("fresh rider = %+v wait %d age %d", p, p.Wait(), p.Age())
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		start, dest int
		want        types.Direction
	}{
		{0, 5, types.DirUp},
		{5, 0, types.DirDown},
		{2, 3, types.DirUp},
		{3, 2, types.DirDown},
	}
	for _, tt := range tests {
		p := New(1, tt.start, tt.dest, 0, 10)
		if got := p.Direction(); got != tt.want {
			t.Errorf("Direction(%d -> %d) = %v, want %v", tt.start, tt.dest, got, tt.want)
		}
	}
}

func TestTickOnlyCountsWaitWhileQueued(t *testing.T) {
	p := New(1, 0, 4, 0, 10)
	p.Tick(true)
	p.Tick(true)
	p.Tick(false) // boarded, still ages
	if p.Wait() != 2 || p.Age() != 3 {
		t.Errorf("wait = %d age = %d, want 2 and 3", p.Wait(), p.Age())
	}
}

func TestReachedMaxWait(t *testing.T) {
	p := New(1, 0, 4, 0, 2)
	for i, want := range []bool{false, false, true, true} {
		if got := p.ReachedMaxWait(); got != want {
			t.Errorf("after %d waits: ReachedMaxWait = %v, want %v", i, got, want)
		}
		p.Tick(true)
	}
}

func TestReachedMaxWaitZeroPatience(t *testing.T) {
	p := New(1, 0, 4, 0, 0)
	if !p.ReachedMaxWait() {
		t.Error("a rider with no patience should give up immediately")
	}
}

func TestTowardDestination(t *testing.T) {
	p := New(1, 0, 4, 0, 10)
	tests := []struct {
		from, to int
		want     bool
	}{
		{0, 1, true},
		{1, 0, false},
		{5, 4, true},
		{4, 5, false}, // carried off the destination floor
		{4, 3, false},
	}
	for _, tt := range tests {
		if got := p.TowardDestination(tt.from, tt.to); got != tt.want {
			t.Errorf("TowardDestination(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
