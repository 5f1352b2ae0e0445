// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emer/biophys/capump"
	"github.com/emer/biophys/hh"
)

func TestRest(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	cf.Stim.Amp = 0
	cf.Ca.Amp = 0
	dr, err := NewDriver(cf)
	if err != nil {
		t.Fatal(err)
	}
	tr := dr.Run()
	if tr.Rows() != cf.NSteps()+1 {
		t.Errorf("trace rows: %v, cor: %v\n", tr.Rows(), cf.NSteps()+1)
	}
	if tr.VmRange.Min < -67 || tr.VmRange.Max > -63 {
		t.Errorf("Vm left rest without input: [%v, %v]\n", tr.VmRange.Min, tr.VmRange.Max)
	}
}

func TestSpike(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	dr, err := NewDriver(cf)
	if err != nil {
		t.Fatal(err)
	}
	tr := dr.Run()
	if tr.VmRange.Max < 0 {
		t.Errorf("no spike with suprathreshold input: max Vm: %v\n", tr.VmRange.Max)
	}
	for ri := 0; ri < tr.Rows(); ri++ {
		for _, col := range []string{"m", "h", "n"} {
			if x := tr.Val(col, ri); x < 0 || x > 1 || math.IsNaN(x) {
				t.Fatalf("gate %s out of range at row %v: %v\n", col, ri, x)
			}
		}
	}
}

// TestPumpDecay checks Euler integration of the pump follows the analytic
// decay toward -minCai when there is no calcium current.
func TestPumpDecay(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	cf.Ca.Amp = 0
	cf.Pumps = []string{"CaA", "CaB"}
	cf.Params["CaB_decay"] = 20
	dr, err := NewDriver(cf)
	if err != nil {
		t.Fatal(err)
	}
	tr := dr.Run()
	last := tr.Rows() - 1
	tm := tr.Val("Time", last)
	for i, decay := range []float64{80, 20} {
		ca := tr.Val(tr.CaCols[i], last)
		minCai := 1.0e-4
		cor := -minCai + (5.0e-5+minCai)*math.Exp(-tm/decay)
		if math.Abs(ca-cor) > 1.0e-6 {
			t.Errorf("pump %v ca: %v, cor: %v\n", i, ca, cor)
		}
	}
}

func TestPumpInflux(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	cf.Stim.Amp = 0
	cf.Ca = StimParams{Amp: -5, Start: 0, Dur: 50}
	dr, err := NewDriver(cf)
	if err != nil {
		t.Fatal(err)
	}
	tr := dr.Run()
	ca0 := tr.Val("Ca_CaPump", 0)
	ca1 := tr.Val("Ca_CaPump", tr.Rows()-1)
	if ca1 <= ca0 {
		t.Errorf("inward calcium current should raise calcium: %v -> %v\n", ca0, ca1)
	}
}

func TestCompartmentsIndependent(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	cf.NComp = 3
	cf.Duration = 10
	dr, err := NewDriver(cf)
	if err != nil {
		t.Fatal(err)
	}
	dr.Run()
	for ci := 1; ci < cf.NComp; ci++ {
		if dr.Vm[ci] != dr.Vm[0] {
			t.Errorf("identical compartments diverged: comp %v: %v vs %v\n", ci, dr.Vm[ci], dr.Vm[0])
		}
	}
	if rep := dr.SizeReport(); !strings.Contains(rep, "HH") || !strings.Contains(rep, "CaPump") {
		t.Errorf("size report missing mechanisms:\n%s", rep)
	}
}

func TestOverrides(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	cf.Params["gna"] = 0.06
	cf.Params["CaPump_gamma"] = 0.1
	dr, err := NewDriver(cf)
	if err != nil {
		t.Fatal(err)
	}
	if g := dr.Reg.Params[dr.HHIdx].Row(hh.GNa)[0]; g != 0.06 {
		t.Errorf("gNa override: %v\n", g)
	}
	if g := dr.Reg.Params[dr.Pumps[0]].Row(capump.Gamma)[0]; g != 0.1 {
		t.Errorf("gamma override: %v\n", g)
	}

	cf.Params["nosuch"] = 1
	if _, err := NewDriver(cf); err == nil {
		t.Errorf("unknown override should be an error\n")
	}
}

func TestWriteCSV(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	cf.Duration = 1
	dr, err := NewDriver(cf)
	if err != nil {
		t.Fatal(err)
	}
	tr := dr.Run()
	var b bytes.Buffer
	if err := tr.WriteCSV(&b); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != tr.Rows()+1 {
		t.Errorf("csv lines: %v, cor: %v\n", len(lines), tr.Rows()+1)
	}
	if !strings.Contains(lines[0], "Vm") || !strings.Contains(lines[0], "Ca_CaPump") {
		t.Errorf("csv header: %v\n", lines[0])
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "run.toml")
	cfg := `dt = 0.01
duration = 20
ncomp = 2
pumps = ["CaSoma", "CaDend"]

[stim]
amp = 15

[params]
gNa = 0.1
CaDend_decay = 40
`
	if err := os.WriteFile(fn, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	cf, err := LoadConfig(fn)
	if err != nil {
		t.Fatal(err)
	}
	if cf.Dt != 0.01 || cf.Duration != 20 || cf.NComp != 2 {
		t.Errorf("loaded: dt %v duration %v ncomp %v\n", cf.Dt, cf.Duration, cf.NComp)
	}
	if len(cf.Pumps) != 2 || cf.Pumps[1] != "CaDend" {
		t.Errorf("loaded pumps: %v\n", cf.Pumps)
	}
	if cf.Stim.Amp != 15 || cf.Stim.Start != 5 {
		t.Errorf("loaded stim: %+v\n", cf.Stim)
	}
	if cf.Vinit != -65 || !cf.InitSteady {
		t.Errorf("defaults not kept: vinit %v init_steady %v\n", cf.Vinit, cf.InitSteady)
	}
	dr, err := NewDriver(cf)
	if err != nil {
		t.Fatal(err)
	}
	hd, _ := dr.Reg.Handle("CaDend")
	if d := dr.Reg.Params[hd].Row(capump.Decay)[1]; d != 40 {
		t.Errorf("CaDend decay: %v\n", d)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("dt = -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Errorf("negative dt should be an error\n")
	}
}
