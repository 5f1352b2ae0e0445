// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mech defines the contract shared by all membrane mechanisms
(ion channels and pumps), and the Registry that assembles mechanism
instances into a model with their parameter and state Blocks.

Mechanisms carry no simulation state: they hold only their name and
variable metadata, and transform the state and parameter Blocks they
are given into new Blocks.  The two roles are kept distinct:
a ChannelMech computes a transmembrane Current, while a PumpMech computes
the StateDeriv of its own state variables, which the driver integrates
with whatever scheme it applies to pump state.
*/
package mech

// Mechanism is the interface shared by every channel and pump.
type Mechanism interface {
	// Name is the instance name, unique within a model.
	Name() string

	// Role says whether this is a Channel or a Pump, and thus which of
	// ChannelMech or PumpMech it implements.
	Role() Roles

	// ParamVars returns the parameters with their defaults, in the fixed
	// order in which the mechanism addresses its parameter Block.
	ParamVars() []Var

	// StateVars returns the state variables with their defaults, in the fixed
	// order in which the mechanism addresses its state Block.
	StateVars() []Var

	// UpdateStates returns a new state Block advanced by dt (ms) at membrane
	// potentials vm (mV, one per compartment).  st and pars are not modified.
	UpdateStates(st, pars *Block, vm []float32, dt float32) *Block
}

// ChannelMech is a Mechanism in the Channel role.
type ChannelMech interface {
	Mechanism

	// Current returns the transmembrane current per compartment (uA/cm^2,
	// outward positive) at membrane potentials vm, for given state and params.
	Current(st, pars *Block, vm []float32) []float32
}

// PumpMech is a Mechanism in the Pump role.
type PumpMech interface {
	Mechanism

	// StateDeriv returns the time derivative (per ms) of each state variable,
	// as a Block with the same variables as st.  ica is the calcium current
	// per compartment (uA/cm^2) driving the pump.
	StateDeriv(st, pars *Block, vm, ica []float32) *Block
}
