// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// StimParams describe a rectangular current pulse
type StimParams struct {
	Amp   float32 `desc:"amplitude of the current, in uA/cm^2"`
	Start float32 `desc:"onset time, in ms"`
	Dur   float32 `desc:"duration, in ms"`
}

// Val returns the pulse current at time t (ms)
func (sp *StimParams) Val(t float32) float32 {
	if t >= sp.Start && t < sp.Start+sp.Dur {
		return sp.Amp
	}
	return 0
}

// Config has the settings for a simulation run
type Config struct {
	Dt         float32            `def:"0.025" desc:"integration time step, in ms"`
	Duration   float32            `def:"50" desc:"total simulated time, in ms"`
	NComp      int                `def:"1" desc:"number of independent (uncoupled) compartments"`
	Vinit      float32            `def:"-65" desc:"initial membrane potential, in mV"`
	Cm         float32            `def:"1" desc:"membrane capacitance, in uF/cm^2"`
	InitSteady bool               `def:"true" desc:"start HH gates at their steady state for Vinit, instead of the default state values"`
	Pumps      []string           `desc:"instance names of the calcium pumps to add"`
	Stim       StimParams         `view:"inline" desc:"injected current, positive = depolarizing"`
	Ca         StimParams         `view:"inline" desc:"calcium current seen by the pumps, negative = inward (raises calcium)"`
	Params     map[string]float32 `desc:"parameter overrides, keyed by parameter name -- HH names are global, pump names are prefixed by the pump name"`
}

func (cf *Config) Defaults() {
	cf.Dt = 0.025
	cf.Duration = 50
	cf.NComp = 1
	cf.Vinit = -65
	cf.Cm = 1
	cf.InitSteady = true
	cf.Pumps = []string{"CaPump"}
	cf.Stim = StimParams{Amp: 10, Start: 5, Dur: 40}
	cf.Ca = StimParams{Amp: -1, Start: 5, Dur: 20}
	cf.Params = make(map[string]float32)
}

// Validate returns an error for settings that cannot be simulated
func (cf *Config) Validate() error {
	var errs []error
	if cf.Dt <= 0 {
		errs = append(errs, fmt.Errorf("dt must be positive, is %v", cf.Dt))
	}
	if cf.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, is %v", cf.Duration))
	}
	if cf.NComp < 1 {
		errs = append(errs, fmt.Errorf("ncomp must be at least 1, is %v", cf.NComp))
	}
	if cf.Cm <= 0 {
		errs = append(errs, fmt.Errorf("cm must be positive, is %v", cf.Cm))
	}
	return errors.Join(errs...)
}

// NSteps returns the number of steps needed to cover Duration
func (cf *Config) NSteps() int {
	return int(cf.Duration/cf.Dt + 0.5)
}

// LoadConfig reads a config file (any format viper supports, by extension),
// starting from Defaults for anything the file does not set.
func LoadConfig(path string) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetDefault("dt", cf.Dt)
	vp.SetDefault("duration", cf.Duration)
	vp.SetDefault("ncomp", cf.NComp)
	vp.SetDefault("vinit", cf.Vinit)
	vp.SetDefault("cm", cf.Cm)
	vp.SetDefault("init_steady", cf.InitSteady)
	vp.SetDefault("pumps", cf.Pumps)
	vp.SetDefault("stim.amp", cf.Stim.Amp)
	vp.SetDefault("stim.start", cf.Stim.Start)
	vp.SetDefault("stim.dur", cf.Stim.Dur)
	vp.SetDefault("ca.amp", cf.Ca.Amp)
	vp.SetDefault("ca.start", cf.Ca.Start)
	vp.SetDefault("ca.dur", cf.Ca.Dur)
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("sim.LoadConfig: %w", err)
	}

	cf.Dt = float32(vp.GetFloat64("dt"))
	cf.Duration = float32(vp.GetFloat64("duration"))
	cf.NComp = vp.GetInt("ncomp")
	cf.Vinit = float32(vp.GetFloat64("vinit"))
	cf.Cm = float32(vp.GetFloat64("cm"))
	cf.InitSteady = vp.GetBool("init_steady")
	cf.Pumps = vp.GetStringSlice("pumps")
	cf.Stim = StimParams{Amp: float32(vp.GetFloat64("stim.amp")), Start: float32(vp.GetFloat64("stim.start")), Dur: float32(vp.GetFloat64("stim.dur"))}
	cf.Ca = StimParams{Amp: float32(vp.GetFloat64("ca.amp")), Start: float32(vp.GetFloat64("ca.start")), Dur: float32(vp.GetFloat64("ca.dur"))}
	for k, v := range vp.GetStringMap("params") {
		f, err := cast.ToFloat32E(v)
		if err != nil {
			return nil, fmt.Errorf("sim.LoadConfig: param %q: %w", k, err)
		}
		cf.Params[k] = f
	}
	if err := cf.Validate(); err != nil {
		return nil, fmt.Errorf("sim.LoadConfig: %s: %w", path, err)
	}
	return cf, nil
}
