package building

import (
	"math"
	"testing"

	"rlevator/src/config"
)

func TestRewardWeighting(t *testing.T) {
	out := StepOutcome{
		Delivered:   2,
		MovedToward: 3,
		MovedAway:   1,
		Rejected:    1,
		Abandoned:   2,
		InElevator:  4,
		InQueue:     5,
	}
	w := config.RewardWeights{
		Delivered:   5,
		MovedToward: 0.5,
		MovedAway:   -0.5,
		Rejected:    -2,
		Abandoned:   -3,
		InElevator:  -0.05,
		InQueue:     -0.1,
	}
	want := 10 + 1.5 - 0.5 - 2.0 - 6.0 - 0.2 - 0.5
	if got := out.Reward(w); math.Abs(got-want) > 1e-12 {
		t.Fatalf("reward = %v, want %v", got, want)
	}
	if got := (StepOutcome{}).Reward(w); got != 0 {
		t.Fatalf("empty step rewarded %v", got)
	}
}
