// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hhsim runs independent Hodgkin-Huxley compartments with calcium pumps
// and writes the time course of the first compartment as CSV.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/emer/biophys/sim"
)

func main() {
	var cfgFile, outFile string
	var report bool
	flag.StringVar(&cfgFile, "config", "", "config file (toml, yaml or json); defaults are used if empty")
	flag.StringVar(&outFile, "out", "hhsim.csv", "CSV file to write the trace to")
	flag.BoolVar(&report, "sizes", false, "print the memory used by each mechanism")
	flag.Parse()

	if err := run(cfgFile, outFile, report); err != nil {
		log.Fatalln(err)
	}
}

func run(cfgFile, outFile string, report bool) error {
	cf := &sim.Config{}
	cf.Defaults()
	if cfgFile != "" {
		var err error
		cf, err = sim.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
	}
	dr, err := sim.NewDriver(cf)
	if err != nil {
		return err
	}
	if report {
		fmt.Println(dr.SizeReport())
	}
	tr := dr.Run()

	fp, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := tr.WriteCSV(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	log.Printf("hhsim: wrote %d rows to %s\n", tr.Rows(), outFile)
	return nil
}
