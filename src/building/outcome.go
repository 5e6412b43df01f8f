package building

import "rlevator/src/config"

// StepOutcome counts what happened during one timestep, before any reward
// weighting. Arrived includes riders rejected in the same step and Admitted
// is its complement; InQueue and InElevator are occupancy at the end of the
// step, after aging.
type StepOutcome struct {
	Step        int
	Arrived     int
	Admitted    int
	Rejected    int
	Abandoned   int
	Boarded     int
	Delivered   int
	MovedToward int
	MovedAway   int
	InQueue     int
	InElevator  int
}

// Reward folds the outcome into one scalar under the given weights. Penalty
// components carry their sign in the weight, so this is a plain weighted sum.
func (o StepOutcome) Reward(w config.RewardWeights) float64 {
	return w.Delivered*float64(o.Delivered) +
		w.MovedToward*float64(o.MovedToward) +
		w.MovedAway*float64(o.MovedAway) +
		w.Rejected*float64(o.Rejected) +
		w.Abandoned*float64(o.Abandoned) +
		w.InElevator*float64(o.InElevator) +
		w.InQueue*float64(o.InQueue)
}

// Totals accumulates the episode's rider accounting across steps. Every
// arrived rider ends up delivered, rejected, abandoned or still in the
// system. WaitSum and AgeSum only cover delivered riders.
type Totals struct {
	Arrived   int
	Admitted  int
	Rejected  int
	Abandoned int
	Delivered int
	WaitSum   int
	AgeSum    int
}

// AvgWait returns the mean queued time of delivered riders, 0 when nobody
// was delivered yet.
func (t Totals) AvgWait() float64 {
	if t.Delivered == 0 {
		return 0
	}
	return float64(t.WaitSum) / float64(t.Delivered)
}

func (t *Totals) add(o StepOutcome) {
	t.Arrived += o.Arrived
	t.Admitted += o.Admitted
	t.Rejected += o.Rejected
	t.Abandoned += o.Abandoned
	t.Delivered += o.Delivered
}
