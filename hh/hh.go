// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hh implements the classic Hodgkin-Huxley sodium, potassium and leak
channels as a mech.ChannelMech.

The three gates m (Na activation), h (Na inactivation) and n (K activation)
are advanced independently by exponential Euler, and the current is the sum
of three ohmic terms:

	I = gNa m^3 h (v - eNa) + gK n^4 (v - eK) + gLeak (v - eLeak)

with conductances given in S/cm^2 and scaled by GbarScale to mS/cm^2, so that
with v in mV the current is in uA/cm^2, outward positive.

The HH parameters are global: every instance on a model shares the same
unprefixed parameter names.
*/
package hh

import (
	"github.com/emer/biophys/chans"
	"github.com/emer/biophys/kinetics"
)

// GbarScale converts maximal conductances from S/cm^2 to mS/cm^2
const GbarScale = 1000

// Params are the Hodgkin-Huxley conductance parameters
type Params struct {
	Gbar chans.Chans `view:"inline" desc:"[Defaults: .12, .036, .0003] maximal conductances, in S/cm^2"`
	Erev chans.Chans `view:"inline" desc:"[Defaults: 50, -77, -54.3] reversal potentials, in mV"`
}

func (hp *Params) Defaults() {
	hp.Gbar.SetAll(0.12, 0.036, 0.0003)
	hp.Erev.SetAll(50, -77, -54.3)
}

// Currents returns the sodium, potassium and leak currents (uA/cm^2)
// for given gate values and membrane potential v (mV).
// Each term is exactly zero when v equals its reversal potential.
func (hp *Params) Currents(m, h, n, v float32) (ina, ik, ileak float32) {
	g := hp.Gbar.Scaled(GbarScale)
	df := hp.Erev.DrivingForce(v)
	ina = g.Na * m * m * m * h * df.Na
	ik = g.K * n * n * n * n * df.K
	ileak = g.Leak * df.Leak
	return
}

// Current returns the net HH current (uA/cm^2), outward positive
func (hp *Params) Current(m, h, n, v float32) float32 {
	ina, ik, ileak := hp.Currents(m, h, n, v)
	return ina + ik + ileak
}

// UpdateGates advances the three gates by dt (ms) at membrane potential v.
// The gates do not interact during the update.
func UpdateGates(m, h, n, v, dt float32) (nm, nh, nn float32) {
	am, bm := kinetics.MRates(v)
	ah, bh := kinetics.HRates(v)
	an, bn := kinetics.NRates(v)
	nm = kinetics.GateExp(m, dt, am, bm)
	nh = kinetics.GateExp(h, dt, ah, bh)
	nn = kinetics.GateExp(n, dt, an, bn)
	return
}

// SteadyGates returns the steady-state gate values x_inf at potential v
func SteadyGates(v float32) (m, h, n float32) {
	m, _ = kinetics.XInfTau(kinetics.MRates(v))
	h, _ = kinetics.XInfTau(kinetics.HRates(v))
	n, _ = kinetics.XInfTau(kinetics.NRates(v))
	return
}
