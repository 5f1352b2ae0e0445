// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "github.com/chewxy/math32"

// RateFunc maps membrane potential (mV) to the forward / backward
// transition rates (1/ms) of a two-state gate.
type RateFunc func(v float32) (alpha, beta float32)

// MRates returns the rates for the Hodgkin-Huxley sodium activation gate m.
// The alpha rate passes through the removable singularity at v = -40 mV,
// where it equals 1.
func MRates(v float32) (alpha, beta float32) {
	alpha = 0.1 * Vtrap(-(v + 40), 10)
	beta = 4 * math32.Exp(-(v+65)/18)
	return
}

// HRates returns the rates for the Hodgkin-Huxley sodium inactivation gate h.
func HRates(v float32) (alpha, beta float32) {
	alpha = 0.07 * math32.Exp(-(v+65)/20)
	beta = 1 / (math32.Exp(-(v+35)/10) + 1)
	return
}

// NRates returns the rates for the Hodgkin-Huxley potassium activation gate n.
// Singular point of alpha is v = -55 mV, where it equals 0.1.
func NRates(v float32) (alpha, beta float32) {
	alpha = 0.01 * Vtrap(-(v + 55), 10)
	beta = 0.125 * math32.Exp(-(v+65)/80)
	return
}

// RatesSlice evaluates rf over each voltage, writing into alpha and beta,
// which must be the same length as vm.
func RatesSlice(rf RateFunc, alpha, beta, vm []float32) {
	for i, v := range vm {
		alpha[i], beta[i] = rf(v)
	}
}
