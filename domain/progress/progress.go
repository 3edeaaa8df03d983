// Package progress drives the home page progress demo.
package progress

import (
	"context"
	"time"
)

// CompletedMessage is shown once the demo finishes
const CompletedMessage = "Completed!"

// Tick is one step of a run
type Tick struct {
	Step    int     `json:"step"`
	Steps   int     `json:"steps"`
	Percent float64 `json:"percent"`
}

// Done reports whether this is the final tick
func (t Tick) Done() bool {
	return t.Step >= t.Steps
}

// Demo simulates work by sleeping between steps
type Demo struct {
	Steps    int
	Interval time.Duration
}

// Run waits Interval before each of Steps ticks and calls emit after each
// wait. It stops early with the context's error when ctx is done or with
// emit's error when emit fails.
func (d Demo) Run(ctx context.Context, emit func(Tick) error) error {
	timer := time.NewTimer(d.Interval)
	defer timer.Stop()

	for step := 1; step <= d.Steps; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		tick := Tick{
			Step:    step,
			Steps:   d.Steps,
			Percent: float64(step) * 100 / float64(d.Steps),
		}
		if err := emit(tick); err != nil {
			return err
		}
		timer.Reset(d.Interval)
	}
	return nil
}
