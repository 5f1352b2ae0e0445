// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"strings"

	"github.com/emer/etable/etensor"
)

// Var is one named parameter or state variable of a mechanism,
// with the default value it takes in every compartment.
type Var struct {
	Name string  `desc:"name of the variable -- unique within the mechanism, prefixed by the instance name for mechanisms that can coexist on one model"`
	Def  float32 `desc:"default value, broadcast to all compartments"`
}

// Block holds the values of a fixed list of Vars across compartments.
// Row i of the Vals tensor is the per-compartment array of Vars[i],
// so mechanisms address variables by their fixed declaration index.
// Blocks are owned by the driver: mechanisms only read them and
// return new ones.
type Block struct {
	Vars []Var           `desc:"variables, in declaration order -- row index = variable index"`
	Vals *etensor.Float32 `desc:"values, shape [len(Vars), NComp]"`
}

// NewBlock returns a new block for given vars over ncomp compartments,
// initialized to the default values.
func NewBlock(vars []Var, ncomp int) *Block {
	bl := &Block{Vars: vars}
	bl.Vals = etensor.NewFloat32([]int{len(vars), ncomp}, nil, []string{"Var", "Comp"})
	bl.Defaults()
	return bl
}

// Defaults sets every compartment of every variable to its default value
func (bl *Block) Defaults() {
	for vi, vr := range bl.Vars {
		row := bl.Row(vi)
		for ci := range row {
			row[ci] = vr.Def
		}
	}
}

// NComp returns the number of compartments
func (bl *Block) NComp() int {
	return bl.Vals.Dim(1)
}

// Row returns the per-compartment values of variable vi, as a slice
// into the underlying tensor (writes go to the block).
func (bl *Block) Row(vi int) []float32 {
	nc := bl.NComp()
	return bl.Vals.Values[vi*nc : (vi+1)*nc]
}

// Index returns the row index of the variable with given name, matched
// without regard to case (config systems often lower-case keys).
// Intended for model assembly, not per-step use.
func (bl *Block) Index(name string) (int, bool) {
	for vi, vr := range bl.Vars {
		if strings.EqualFold(vr.Name, name) {
			return vi, true
		}
	}
	return -1, false
}

// Set broadcasts val to all compartments of the named variable,
// returning false if there is no such variable.
func (bl *Block) Set(name string, val float32) bool {
	vi, ok := bl.Index(name)
	if !ok {
		return false
	}
	row := bl.Row(vi)
	for ci := range row {
		row[ci] = val
	}
	return true
}

// Clone returns a deep copy of the block (Vars are shared, as they are immutable)
func (bl *Block) Clone() *Block {
	nb := NewBlock(bl.Vars, bl.NComp())
	copy(nb.Vals.Values, bl.Vals.Values)
	return nb
}

// NewLike returns a new block with the same vars and compartments,
// with all values zero -- for building derivative or output blocks.
func (bl *Block) NewLike() *Block {
	nb := &Block{Vars: bl.Vars}
	nb.Vals = etensor.NewFloat32([]int{len(bl.Vars), bl.NComp()}, nil, []string{"Var", "Comp"})
	return nb
}
