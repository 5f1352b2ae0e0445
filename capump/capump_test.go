// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capump

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/biophys/mech"
	"gonum.org/v1/gonum/diff/fd"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-10)

func TestPureDecay(t *testing.T) {
	var cp Params
	cp.Defaults()
	for _, ca := range []float32{0, 5.0e-5, 1.0e-3, 0.01} {
		d := cp.DCa(ca, 0)
		cor := -(ca + cp.MinCai) / cp.Decay
		if math32.Abs(d-cor) > difTol {
			t.Errorf("decay only: ca: %v, dca: %v, cor: %v\n", ca, d, cor)
		}
	}
}

func TestPureInflux(t *testing.T) {
	var cp Params
	cp.Defaults()
	cp.Decay = 1.0e30
	for _, ica := range []float32{-5, -1, -0.1, 0.5} {
		d := cp.DCa(5.0e-5, ica)
		cor := float32(-10000 * (float64(ica) / 1000) * 0.05 / (2 * 96485 * 0.1))
		if math32.Abs(d-cor) > 1.0e-6*math32.Abs(cor) {
			t.Errorf("influx only: ica: %v, dca: %v, cor: %v\n", ica, d, cor)
		}
	}
	// inward (negative) calcium current raises calcium
	if d := cp.Drive(-1); d <= 0 {
		t.Errorf("inward current should increase calcium: %v\n", d)
	}
}

func TestNamespacing(t *testing.T) {
	reg := mech.NewRegistry(3)
	h1, err := reg.Add(New("CaPump1"))
	if err != nil {
		t.Fatal(err)
	}
	h2, err := reg.Add(New("CaPump2"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Add(New("CaPump1")); err == nil {
		t.Errorf("duplicate pump name should be an error\n")
	}
	if err := reg.Override("CaPump1_decay", 20); err != nil {
		t.Fatal(err)
	}
	if d := reg.Params[h1].Row(Decay)[2]; d != 20 {
		t.Errorf("CaPump1 decay: %v, cor: 20\n", d)
	}
	if d := reg.Params[h2].Row(Decay)[2]; d != 80 {
		t.Errorf("CaPump2 decay changed: %v, cor: 80\n", d)
	}
	if reg.Params[h2].Vars[Gamma].Name != "CaPump2_gamma" {
		t.Errorf("param name: %v\n", reg.Params[h2].Vars[Gamma].Name)
	}
}

func TestStateDeriv(t *testing.T) {
	pm := New("CaPump")
	vm := []float32{-65, -20, 10}
	ica := []float32{0, -2, -0.5}
	st := mech.NewBlock(pm.StateVars(), len(vm))
	pars := mech.NewBlock(pm.ParamVars(), len(vm))
	st.Row(CaCon)[1] = 2.0e-4
	ds := pm.StateDeriv(st, pars, vm, ica)
	var cp Params
	cp.Defaults()
	for ci := range vm {
		cor := cp.DCa(st.Row(CaCon)[ci], ica[ci])
		if ds.Row(CaCon)[ci] != cor {
			t.Errorf("StateDeriv comp %v: %v, cor: %v\n", ci, ds.Row(CaCon)[ci], cor)
		}
	}

	ns := pm.UpdateStates(st, pars, vm, 0.025)
	if ns == st {
		t.Errorf("UpdateStates must return a new block\n")
	}
	for ci := range vm {
		if ns.Row(CaCon)[ci] != st.Row(CaCon)[ci] {
			t.Errorf("UpdateStates changed pump state at comp %v\n", ci)
		}
	}
}

func TestSensitivity(t *testing.T) {
	var cp Params
	cp.Defaults()
	set := &fd.Settings{Formula: fd.Central, Step: 1.0e-3}
	dg := fd.Derivative(func(g float64) float64 {
		p := cp
		p.Gamma = float32(g)
		return float64(p.DCa(1.0e-4, -2))
	}, float64(cp.Gamma), set)
	cor := -10000 * (-2.0 / 1000) / (2 * 96485 * 0.1)
	if math.IsNaN(dg) || math.Abs(dg-cor) > 0.01*math.Abs(cor) {
		t.Errorf("dDCa/dgamma: %v, cor: %v\n", dg, cor)
	}
}
