// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package biophys is the overall repository for the membrane mechanism
kinetics used in biophysically detailed neuron simulation, implemented in
the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* kinetics: voltage-dependent rate functions, including the smooth evaluation
of the x / (exp(x/y) - 1) rate primitive, and the exponential Euler gating
integrator.

* mech: the contract every channel and pump mechanism implements, the
parameter and state Blocks they operate on, and the Registry that assembles
mechanism instances into a model.

* hh: the Hodgkin-Huxley sodium, potassium and leak channels.

* capump: intracellular calcium dynamics driven by calcium current.

* chans: per-ion value sets for conductances and reversal potentials.

* sim: a reference driver for independent point compartments, with trace
recording, and cmd/hhsim which runs it from a config file.
*/
package biophys
