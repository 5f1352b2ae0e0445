// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

// sim.Time contains all the timing state and parameter information for running a model
type Time struct {

	// accumulated amount of time the model has been running,
	// in simulation time (not real world time), in ms.
	Time float32

	// step counter: number of integration steps since the last Reset.
	Step int

	// amount of time to increment per step, in ms.
	Dt float32 `def:"0.025"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Dt = 0.025
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	if tm.Dt == 0 {
		tm.Defaults()
	}
}

// StepInc increments at the step level.
// Time is recomputed from the step count to avoid accumulating rounding error.
func (tm *Time) StepInc() {
	tm.Step++
	tm.Time = float32(tm.Step) * tm.Dt
}
