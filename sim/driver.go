// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sim is a reference driver for the mechanism contract: it advances a
set of independent (uncoupled) point compartments, each with an HH channel and
any number of calcium pumps, and records the time course of compartment 0.

Each step, every mechanism's state is advanced with UpdateStates, then the
driver dispatches on the mechanism role: channel currents are summed into the
membrane current balance, and pump state derivatives are integrated with
forward Euler.  The membrane potential is then advanced with forward Euler
from the injected and ionic currents.
*/
package sim

import (
	"fmt"
	"log"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/biophys/capump"
	"github.com/emer/biophys/hh"
	"github.com/emer/biophys/mech"
	"github.com/emer/emergent/timer"
)

// Driver runs a simulation of independent compartments
type Driver struct {
	Cfg    Config         `desc:"configuration of the run"`
	Reg    *mech.Registry `desc:"assembled mechanisms with their parameter blocks"`
	HH     *hh.Channel    `desc:"the HH channel"`
	HHIdx  int            `desc:"registry handle of the HH channel"`
	Pumps  []int          `desc:"registry handles of the pumps, in Cfg.Pumps order"`
	States []*mech.Block  `desc:"current state block of each mechanism, indexed by handle"`
	Vm     []float32      `desc:"membrane potential per compartment, in mV"`
	Iion   []float32      `desc:"total channel current per compartment, in uA/cm^2, from the last step"`
	ICa    []float32      `desc:"calcium current per compartment driving the pumps, in uA/cm^2"`
	IStim  []float32      `desc:"injected current per compartment, in uA/cm^2"`
	Time   Time           `desc:"timing state"`
	Trace  *Trace         `desc:"recorded time course of compartment 0"`
	Timer  timer.Time     `view:"-" desc:"wall-clock timer for Run"`
}

// NewDriver assembles the mechanisms for given config and initializes the state
func NewDriver(cf *Config) (*Driver, error) {
	if err := cf.Validate(); err != nil {
		return nil, fmt.Errorf("sim.NewDriver: %w", err)
	}
	dr := &Driver{Cfg: *cf}
	dr.Reg = mech.NewRegistry(cf.NComp)
	dr.HH = hh.New()
	h, err := dr.Reg.Add(dr.HH)
	if err != nil {
		return nil, err
	}
	dr.HHIdx = h
	for _, pn := range cf.Pumps {
		h, err := dr.Reg.Add(capump.New(pn))
		if err != nil {
			return nil, err
		}
		dr.Pumps = append(dr.Pumps, h)
	}
	ovr := make(map[string]float32, len(cf.Params))
	for k, v := range cf.Params {
		ovr[k] = v
	}
	if err := dr.Reg.ApplyOverrides(ovr); err != nil {
		return nil, fmt.Errorf("sim.NewDriver: %w", err)
	}
	nc := cf.NComp
	dr.Vm = make([]float32, nc)
	dr.Iion = make([]float32, nc)
	dr.ICa = make([]float32, nc)
	dr.IStim = make([]float32, nc)
	dr.Time.Dt = cf.Dt
	dr.Init()
	return dr, nil
}

// Init resets time, state, potentials and the trace to their initial values
func (dr *Driver) Init() {
	dr.Time.Reset()
	dr.States = dr.Reg.InitStates()
	for ci := range dr.Vm {
		dr.Vm[ci] = dr.Cfg.Vinit
		dr.Iion[ci] = 0
	}
	if dr.Cfg.InitSteady {
		dr.States[dr.HHIdx] = dr.HH.SteadyStates(dr.Vm)
	}
	dr.Trace = NewTrace(dr.Cfg.Pumps)
	dr.Record()
}

// SetInputs sets the injected and calcium currents for the current time
func (dr *Driver) SetInputs() {
	tm := dr.Time.Time
	stim := dr.Cfg.Stim.Val(tm)
	ica := dr.Cfg.Ca.Val(tm)
	for ci := range dr.Vm {
		dr.IStim[ci] = stim
		dr.ICa[ci] = ica
	}
}

// Step advances the whole model by one time step.
// IStim and ICa are used as set by the caller (see SetInputs).
func (dr *Driver) Step() {
	dt := dr.Cfg.Dt
	for ci := range dr.Iion {
		dr.Iion[ci] = 0
	}
	for h, m := range dr.Reg.Mechs {
		pars := dr.Reg.Params[h]
		st := m.UpdateStates(dr.States[h], pars, dr.Vm, dt)
		switch m.Role() {
		case mech.Channel:
			cur := m.(mech.ChannelMech).Current(st, pars, dr.Vm)
			for ci, c := range cur {
				dr.Iion[ci] += c
			}
		case mech.Pump:
			ds := m.(mech.PumpMech).StateDeriv(st, pars, dr.Vm, dr.ICa)
			EulerStep(st, ds, dt)
		}
		dr.States[h] = st
	}
	for ci := range dr.Vm {
		dr.Vm[ci] += dt * (dr.IStim[ci] - dr.Iion[ci]) / dr.Cfg.Cm
	}
	dr.Time.StepInc()
	dr.Record()
}

// EulerStep integrates state block st in place by one forward Euler step of
// size dt, given the derivative block ds with the same shape.
func EulerStep(st, ds *mech.Block, dt float32) {
	sv := st.Vals.Values
	for i, d := range ds.Vals.Values {
		sv[i] += dt * d
	}
}

// Record adds the current state of compartment 0 to the trace
func (dr *Driver) Record() {
	hs := dr.States[dr.HHIdx]
	ca := make([]float32, len(dr.Pumps))
	for i, h := range dr.Pumps {
		ca[i] = dr.States[h].Row(capump.CaCon)[0]
	}
	dr.Trace.Record(dr.Time.Time, dr.Vm[0], dr.Iion[0], hs.Row(hh.M)[0], hs.Row(hh.H)[0], hs.Row(hh.N)[0], ca)
}

// Run runs the configured duration from the current state, returning the trace
func (dr *Driver) Run() *Trace {
	nst := dr.Cfg.NSteps()
	dr.Timer.Start()
	for i := 0; i < nst; i++ {
		dr.SetInputs()
		dr.Step()
	}
	dr.Timer.Stop()
	log.Printf("sim: %d steps of %v ms over %d compartments in %6.4g s, Vm range: [%g, %g] mV, trace mem: %v\n",
		nst, dr.Cfg.Dt, dr.Cfg.NComp, dr.Timer.TotalSecs(), dr.Trace.VmRange.Min, dr.Trace.VmRange.Max,
		(datasize.ByteSize)(dr.Trace.MemBytes()).HumanReadable())
	return dr.Trace
}

// SizeReport returns a string reporting the size of each mechanism's
// parameter and state blocks.
func (dr *Driver) SizeReport() string {
	var b strings.Builder
	tot := 0
	for h, m := range dr.Reg.Mechs {
		pmem := 4 * len(dr.Reg.Params[h].Vals.Values)
		smem := 4 * len(dr.States[h].Vals.Values)
		tot += pmem + smem
		fmt.Fprintf(&b, "%14s:\t Role: %v\t Params: %v\t States: %v\n", m.Name(), m.Role(), (datasize.ByteSize)(pmem).HumanReadable(), (datasize.ByteSize)(smem).HumanReadable())
	}
	fmt.Fprintf(&b, "\n%14s:\t Comps: %d\t Mem: %v\n", "Total", dr.Cfg.NComp, (datasize.ByteSize)(tot).HumanReadable())
	return b.String()
}
