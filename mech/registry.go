// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"errors"
	"fmt"
	"strings"
)

// Registry assembles mechanism instances into a model over a fixed number of
// compartments.  Each instance gets a handle (its index) and default parameter
// and state Blocks.  All name resolution happens here, once, at assembly time.
type Registry struct {
	NComp  int         `desc:"number of compartments every block spans"`
	Mechs  []Mechanism `desc:"mechanisms, indexed by handle"`
	Params []*Block    `desc:"parameter block for each mechanism, indexed by handle"`
	States []*Block    `desc:"initial state block for each mechanism, indexed by handle"`

	handles map[string]int
}

// NewRegistry returns a new empty registry for ncomp compartments
func NewRegistry(ncomp int) *Registry {
	rg := &Registry{NComp: ncomp}
	rg.handles = make(map[string]int)
	return rg
}

// Add adds a mechanism, returning its handle.  It is an error to add two
// mechanisms with the same name, or a mechanism whose Role does not match
// the interface it implements.
func (rg *Registry) Add(m Mechanism) (int, error) {
	nm := m.Name()
	if nm == "" {
		return -1, errors.New("mech.Registry: mechanism name is empty")
	}
	key := strings.ToLower(nm)
	if _, has := rg.handles[key]; has {
		return -1, fmt.Errorf("mech.Registry: mechanism named %q already exists", nm)
	}
	if err := CheckRole(m); err != nil {
		return -1, err
	}
	h := len(rg.Mechs)
	rg.Mechs = append(rg.Mechs, m)
	rg.Params = append(rg.Params, NewBlock(m.ParamVars(), rg.NComp))
	rg.States = append(rg.States, NewBlock(m.StateVars(), rg.NComp))
	rg.handles[key] = h
	return h, nil
}

// CheckRole returns an error if the mechanism does not implement the
// interface corresponding to its Role.
func CheckRole(m Mechanism) error {
	switch m.Role() {
	case Channel:
		if _, ok := m.(ChannelMech); !ok {
			return fmt.Errorf("mech: %q has role %v but does not implement ChannelMech", m.Name(), m.Role())
		}
	case Pump:
		if _, ok := m.(PumpMech); !ok {
			return fmt.Errorf("mech: %q has role %v but does not implement PumpMech", m.Name(), m.Role())
		}
	default:
		return fmt.Errorf("mech: %q has invalid role %v", m.Name(), m.Role())
	}
	return nil
}

// Handle returns the handle of the mechanism with given name (case insensitive)
func (rg *Registry) Handle(name string) (int, bool) {
	h, ok := rg.handles[strings.ToLower(name)]
	return h, ok
}

// ByRole returns the handles of all mechanisms with given role, in order added
func (rg *Registry) ByRole(role Roles) []int {
	var hs []int
	for h, m := range rg.Mechs {
		if m.Role() == role {
			hs = append(hs, h)
		}
	}
	return hs
}

// Override sets the parameter with given key to val in all compartments of
// every mechanism that declares it.  Keys of global (unprefixed) parameters
// thus reach every instance sharing them, while instance-prefixed keys reach
// only that instance.  Returns an error if no mechanism declares the key.
func (rg *Registry) Override(key string, val float32) error {
	found := false
	for _, pb := range rg.Params {
		if pb.Set(key, val) {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("mech.Registry: no mechanism has parameter %q", key)
	}
	return nil
}

// ApplyOverrides calls Override for each entry, returning all errors joined
func (rg *Registry) ApplyOverrides(ovr map[string]float32) error {
	var errs []error
	for k, v := range ovr {
		if err := rg.Override(k, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// InitStates returns fresh copies of the initial state blocks, one per handle
func (rg *Registry) InitStates() []*Block {
	sts := make([]*Block, len(rg.States))
	for h, st := range rg.States {
		sts[h] = st.Clone()
	}
	return sts
}
