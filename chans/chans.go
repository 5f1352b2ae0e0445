// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the per-ion value sets used by conductance-based channel
mechanisms, following the standard equivalent RC circuit model of a membrane
patch (i.e., basic Ohms law equations).
Includes sodium, potassium, and leak channels.
*/
package chans

// Chans holds one value per ionic conductance of a Hodgkin-Huxley style membrane,
// used both for maximal conductances and for reversal potentials.
type Chans struct {
	Na   float32 `desc:"voltage-gated sodium (Na) channels"`
	K    float32 `desc:"delayed-rectifier potassium (K) channels"`
	Leak float32 `desc:"constant leak channels -- determines resting potential together with the gated channels"`
}

// SetAll sets all the values
func (ch *Chans) SetAll(na, k, leak float32) {
	ch.Na, ch.K, ch.Leak = na, k, leak
}

// Scaled returns a copy with every value multiplied by given factor
func (ch Chans) Scaled(f float32) Chans {
	return Chans{Na: ch.Na * f, K: ch.K * f, Leak: ch.Leak * f}
}

// DrivingForce returns v minus each value, i.e., the driving force v - Erev
// when the Chans hold reversal potentials.
func (ch *Chans) DrivingForce(v float32) Chans {
	return Chans{Na: v - ch.Na, K: v - ch.K, Leak: v - ch.Leak}
}

// Sum returns the sum of all the values
func (ch *Chans) Sum() float32 {
	return ch.Na + ch.K + ch.Leak
}
