// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"github.com/emer/biophys/mech"
	"github.com/goki/ki/kit"
)

// Parameter row indexes in the HH parameter Block
const (
	GNa = iota
	GK
	GLeak
	ENa
	EK
	ELeak
	NParams
)

// State row indexes in the HH state Block
const (
	M = iota
	H
	N
	NStates
)

// Channel is the Hodgkin-Huxley channel mechanism.
// It holds only its name: all state and parameters are passed in as Blocks.
type Channel struct {
	Nm string `desc:"instance name"`
}

var KiT_Channel = kit.Types.AddType(&Channel{}, nil)

// New returns a new HH channel with the standard name "HH"
func New() *Channel {
	return &Channel{Nm: "HH"}
}

func (ch *Channel) Name() string     { return ch.Nm }
func (ch *Channel) Role() mech.Roles { return mech.Channel }

// ParamVars returns the global, unprefixed HH parameters
func (ch *Channel) ParamVars() []mech.Var {
	var hp Params
	hp.Defaults()
	vars := make([]mech.Var, NParams)
	vars[GNa] = mech.Var{Name: "gNa", Def: hp.Gbar.Na}
	vars[GK] = mech.Var{Name: "gK", Def: hp.Gbar.K}
	vars[GLeak] = mech.Var{Name: "gLeak", Def: hp.Gbar.Leak}
	vars[ENa] = mech.Var{Name: "eNa", Def: hp.Erev.Na}
	vars[EK] = mech.Var{Name: "eK", Def: hp.Erev.K}
	vars[ELeak] = mech.Var{Name: "eLeak", Def: hp.Erev.Leak}
	return vars
}

// StateVars returns the gates m, h, n, all defaulting to 0.2
func (ch *Channel) StateVars() []mech.Var {
	vars := make([]mech.Var, NStates)
	vars[M] = mech.Var{Name: "m", Def: 0.2}
	vars[H] = mech.Var{Name: "h", Def: 0.2}
	vars[N] = mech.Var{Name: "n", Def: 0.2}
	return vars
}

// ParamsAt returns the typed parameters of compartment ci in given Block
func ParamsAt(pars *mech.Block, ci int) Params {
	var hp Params
	hp.Gbar.SetAll(pars.Row(GNa)[ci], pars.Row(GK)[ci], pars.Row(GLeak)[ci])
	hp.Erev.SetAll(pars.Row(ENa)[ci], pars.Row(EK)[ci], pars.Row(ELeak)[ci])
	return hp
}

// UpdateStates advances all three gates in every compartment by dt.
// The HH gate kinetics do not depend on the parameters.
func (ch *Channel) UpdateStates(st, pars *mech.Block, vm []float32, dt float32) *mech.Block {
	ns := st.NewLike()
	m, h, n := st.Row(M), st.Row(H), st.Row(N)
	nm, nh, nn := ns.Row(M), ns.Row(H), ns.Row(N)
	for ci, v := range vm {
		nm[ci], nh[ci], nn[ci] = UpdateGates(m[ci], h[ci], n[ci], v, dt)
	}
	return ns
}

// Current returns the net HH current in every compartment (uA/cm^2)
func (ch *Channel) Current(st, pars *mech.Block, vm []float32) []float32 {
	cur := make([]float32, len(vm))
	m, h, n := st.Row(M), st.Row(H), st.Row(N)
	for ci, v := range vm {
		hp := ParamsAt(pars, ci)
		cur[ci] = hp.Current(m[ci], h[ci], n[ci], v)
	}
	return cur
}

// SteadyStates returns a state Block with every gate at its steady state
// for the corresponding compartment potential, e.g., to start a simulation at rest.
func (ch *Channel) SteadyStates(vm []float32) *mech.Block {
	ns := mech.NewBlock(ch.StateVars(), len(vm))
	m, h, n := ns.Row(M), ns.Row(H), ns.Row(N)
	for ci, v := range vm {
		m[ci], h[ci], n[ci] = SteadyGates(v)
	}
	return ns
}
