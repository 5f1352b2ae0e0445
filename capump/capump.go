// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package capump implements intracellular calcium dynamics in a thin shell
below the membrane, modified from Destexhe et al. (1994), as a mech.PumpMech.

The pump does not integrate its own state: StateDeriv returns the rate of
change of the calcium concentration, combining the influx driven by the
calcium current with first-order decay toward the resting minimum:

	dCa/dt = -DriveScale * (iCa / ICaScale) * gamma / (2 F depth) - (Ca + minCai) / decay

All parameters are prefixed by the instance name, so several pumps can
coexist on one model.
*/
package capump

import (
	"github.com/emer/biophys/mech"
	"github.com/goki/ki/kit"
)

const (
	// Faraday is the Faraday constant, in Coulombs per mole
	Faraday = 96485

	// DriveScale converts the calcium influx into mM/ms for a depth in um
	DriveScale = 10000

	// ICaScale is the fixed conversion applied to the incoming calcium current
	ICaScale = 1000
)

// Parameter row indexes in the pump parameter Block
const (
	Gamma = iota
	Decay
	Depth
	MinCai
	NParams
)

// State row indexes in the pump state Block
const (
	CaCon = iota
	NStates
)

// Params are the calcium shell parameters
type Params struct {
	Gamma  float32 `def:"0.05" desc:"fraction of free calcium (not buffered)"`
	Decay  float32 `def:"80" desc:"buffering time constant, in ms"`
	Depth  float32 `def:"0.1" desc:"depth of the shell below the membrane, in um"`
	MinCai float32 `def:"0.0001" desc:"minimum intracellular calcium concentration, in mM"`
}

func (cp *Params) Defaults() {
	cp.Gamma = 0.05
	cp.Decay = 80
	cp.Depth = 0.1
	cp.MinCai = 1.0e-4
}

// Drive returns the rate of change of calcium (mM/ms) due to calcium current ica
func (cp *Params) Drive(ica float32) float32 {
	return -DriveScale * (ica / ICaScale) * cp.Gamma / (2 * Faraday * cp.Depth)
}

// DCa returns the rate of change of calcium concentration ca (mM/ms)
// given calcium current ica (inward negative)
func (cp *Params) DCa(ca, ica float32) float32 {
	return cp.Drive(ica) - (ca+cp.MinCai)/cp.Decay
}

// Pump is the calcium pump mechanism.
// It holds only its name: all state and parameters are passed in as Blocks.
type Pump struct {
	Nm string `desc:"instance name, prefix of all parameter names"`
}

var KiT_Pump = kit.Types.AddType(&Pump{}, nil)

// New returns a new calcium pump with given instance name
func New(name string) *Pump {
	return &Pump{Nm: name}
}

func (pm *Pump) Name() string     { return pm.Nm }
func (pm *Pump) Role() mech.Roles { return mech.Pump }

// ParamVars returns the pump parameters, prefixed by the instance name
func (pm *Pump) ParamVars() []mech.Var {
	var cp Params
	cp.Defaults()
	vars := make([]mech.Var, NParams)
	vars[Gamma] = mech.Var{Name: pm.Nm + "_gamma", Def: cp.Gamma}
	vars[Decay] = mech.Var{Name: pm.Nm + "_decay", Def: cp.Decay}
	vars[Depth] = mech.Var{Name: pm.Nm + "_depth", Def: cp.Depth}
	vars[MinCai] = mech.Var{Name: pm.Nm + "_minCai", Def: cp.MinCai}
	return vars
}

// StateVars returns the intracellular calcium concentration, in mM
func (pm *Pump) StateVars() []mech.Var {
	return []mech.Var{CaCon: {Name: "CaCon_i", Def: 5.0e-5}}
}

// ParamsAt returns the typed parameters of compartment ci in given Block
func ParamsAt(pars *mech.Block, ci int) Params {
	return Params{
		Gamma:  pars.Row(Gamma)[ci],
		Decay:  pars.Row(Decay)[ci],
		Depth:  pars.Row(Depth)[ci],
		MinCai: pars.Row(MinCai)[ci],
	}
}

// UpdateStates returns an unchanged copy of the state: pump state is
// integrated by the driver from StateDeriv.
func (pm *Pump) UpdateStates(st, pars *mech.Block, vm []float32, dt float32) *mech.Block {
	return st.Clone()
}

// StateDeriv returns dCa/dt (mM/ms) in every compartment
func (pm *Pump) StateDeriv(st, pars *mech.Block, vm, ica []float32) *mech.Block {
	ds := st.NewLike()
	ca := st.Row(CaCon)
	dca := ds.Row(CaCon)
	for ci := range vm {
		cp := ParamsAt(pars, ci)
		dca[ci] = cp.DCa(ca[ci], ica[ci])
	}
	return ds
}
