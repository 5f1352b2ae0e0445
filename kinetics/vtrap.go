// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package kinetics provides the voltage-dependent rate functions and the
exponential Euler gating integrator shared by all channel mechanisms.

Every function here is a pure, elementwise composition of smooth elementary
operations: there is no value-dependent control flow anywhere, so the kernels
remain differentiable over their whole domain and behave identically on
scalars or on per-compartment slices.

The rational "trap" primitive x / (exp(x/y) - 1) has a removable singularity
at x = 0.  Instead of testing for it, Vtrap blends the Bernoulli series of the
function, which is exact at 0, with a regularized form of the ratio that is
finite everywhere, using a gaussian weight in u = x/y.  Each piece is accurate
wherever its weight is not negligible, so the blend tracks the analytic
function to float32 precision while staying infinitely differentiable.
*/
package kinetics

import "github.com/chewxy/math32"

const (
	// VtrapBlend is the width, in units of u = x/y, of the gaussian weight that
	// hands Vtrap over from the series to the regularized ratio.
	VtrapBlend = float32(0.1)

	// vtrapEps regularizes the reciprocal of exp(u)-1 so it is finite at u = 0.
	vtrapEps = float32(1.0e-5)
)

// Vtrap computes x / (exp(x/y) - 1), whose limit at x = 0 is y.
// The result is smooth in x with slope -1/2 at 0, and accurate to a relative
// error below 1e-6 for |x/y| < 40 (beyond that float32 exp overflows, which
// corresponds to voltages far outside any physiological range).
func Vtrap(x, y float32) float32 {
	u := x / y
	u2 := u * u
	d := math32.Exp(u) - 1
	ratio := x * d / (d*d + vtrapEps*vtrapEps)
	series := y * (1 - 0.5*u + u2/12 - u2*u2/720)
	w := vtrapWeight(u2)
	return w*series + (1-w)*ratio
}

// VtrapDeriv computes the derivative of Vtrap with respect to x:
// (exp(u) - 1 - u*exp(u)) / (exp(u) - 1)^2, with u = x/y, which is -1/2 at x = 0.
// It uses the same branch-free blend as Vtrap, and is accurate for |x/y| < 25.
func VtrapDeriv(x, y float32) float32 {
	u := x / y
	u2 := u * u
	eu := math32.Exp(u)
	d := eu - 1
	d2 := d * d
	num := d - u*eu
	e2 := vtrapEps * vtrapEps
	ratio := num * d2 / (d2*d2 + e2*e2)
	series := -0.5 + u/6 - u2*u/180
	w := vtrapWeight(u2)
	return w*series + (1-w)*ratio
}

// vtrapWeight is the gaussian blending weight, 1 at u = 0
func vtrapWeight(u2 float32) float32 {
	return math32.Exp(-u2 / (VtrapBlend * VtrapBlend))
}
