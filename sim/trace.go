// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"io"
	"strconv"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 6

// Trace records the time course of compartment 0 of a run
type Trace struct {
	Table   *etable.Table `desc:"one row per recorded step"`
	VmRange minmax.F32    `desc:"range of Vm over all recorded steps"`
	CaRange minmax.F32    `desc:"range of calcium over all recorded steps and pumps"`
	CaCols  []string      `desc:"column names of the pump calcium columns, in pump order"`
}

// NewTrace returns a new empty trace with one calcium column per pump name
func NewTrace(pumps []string) *Trace {
	tr := &Trace{}
	tr.Table = &etable.Table{}
	tr.Config(pumps)
	return tr
}

// Config configures the table columns
func (tr *Trace) Config(pumps []string) {
	dt := tr.Table
	dt.SetMetaData("name", "Trace")
	dt.SetMetaData("desc", "membrane potential, currents and mechanism state of compartment 0")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{"Time", etensor.FLOAT64, nil, nil},
		{"Vm", etensor.FLOAT64, nil, nil},
		{"Iion", etensor.FLOAT64, nil, nil},
		{"m", etensor.FLOAT64, nil, nil},
		{"h", etensor.FLOAT64, nil, nil},
		{"n", etensor.FLOAT64, nil, nil},
	}
	tr.CaCols = make([]string, len(pumps))
	for i, pn := range pumps {
		tr.CaCols[i] = "Ca_" + pn
		sch = append(sch, etable.Column{tr.CaCols[i], etensor.FLOAT64, nil, nil})
	}
	dt.SetFromSchema(sch, 0)
	tr.VmRange.SetInfinity()
	tr.CaRange.SetInfinity()
}

// Record adds a row: time, membrane potential, ionic current, HH gates, and
// the calcium of each pump in CaCols order.
func (tr *Trace) Record(tm, vm, iion, m, h, n float32, ca []float32) {
	dt := tr.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Time", row, float64(tm))
	dt.SetCellFloat("Vm", row, float64(vm))
	dt.SetCellFloat("Iion", row, float64(iion))
	dt.SetCellFloat("m", row, float64(m))
	dt.SetCellFloat("h", row, float64(h))
	dt.SetCellFloat("n", row, float64(n))
	for i, cn := range tr.CaCols {
		dt.SetCellFloat(cn, row, float64(ca[i]))
		tr.CaRange.FitValInRange(ca[i])
	}
	tr.VmRange.FitValInRange(vm)
}

// Rows returns the number of recorded rows
func (tr *Trace) Rows() int {
	return tr.Table.Rows
}

// Val returns the value of given column at given row
func (tr *Trace) Val(col string, row int) float64 {
	return tr.Table.CellFloat(col, row)
}

// MemBytes returns the approximate memory used by the recorded values
func (tr *Trace) MemBytes() int {
	return tr.Table.Rows * len(tr.Table.Cols) * 8
}

// WriteCSV writes the trace as comma-separated values with a header row
func (tr *Trace) WriteCSV(w io.Writer) error {
	return tr.Table.WriteCSV(w, etable.Comma, true)
}
