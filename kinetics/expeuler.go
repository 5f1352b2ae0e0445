// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "github.com/chewxy/math32"

// XInfTau returns the steady-state value alpha / (alpha + beta)
// and time constant 1 / (alpha + beta) of a gate with given rates.
func XInfTau(alpha, beta float32) (xinf, tau float32) {
	sum := alpha + beta
	xinf = alpha / sum
	tau = 1 / sum
	return
}

// GateExp advances gate value x by one step of size dt (ms) using exponential
// Euler integration of dx/dt = alpha (1 - x) - beta x.  This is the exact
// solution when the rates are constant over the step, and is stable for any
// dt > 0, relaxing toward the steady state x_inf.  dt must be positive:
// no check is made.
func GateExp(x, dt, alpha, beta float32) float32 {
	xinf, tau := XInfTau(alpha, beta)
	return xinf - (xinf-x)*math32.Exp(-dt/tau)
}

// GateExpSlice applies GateExp elementwise, one gate across compartments.
// dst may alias x.  All slices must have the same length.
func GateExpSlice(dst, x []float32, dt float32, alpha, beta []float32) {
	for i := range x {
		dst[i] = GateExp(x[i], dt, alpha[i], beta[i])
	}
}
