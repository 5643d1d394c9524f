// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Driver runs simulations with one material point following a deformation path
type Driver struct {

	// input
	Mdl   Model // solid model
	large Large // model as large deformation updater

	// settings
	Verbose bool // print each step and each radial return iteration

	// results
	Res  []*State  // states; Res[0] is the initial state
	Wave []float64 // wave speeds; Wave[0] = 0
	Time []float64 // times
}

// Init initialises driver with a model from the database
func (o *Driver) Init(modelname string, prms dbf.Params, opts string) (err error) {
	mdl, err := New(modelname)
	if err != nil {
		return
	}
	err = mdl.Init(prms, opts)
	if err != nil {
		return
	}
	return o.InitWithModel(mdl)
}

// InitWithModel initialises driver with an existent model
func (o *Driver) InitWithModel(mdl Model) (err error) {
	var ok bool
	o.Mdl = mdl
	o.large, ok = mdl.(Large)
	if !ok {
		return chk.Err("driver: model %T cannot handle large deformations", mdl)
	}
	return
}

// Run runs simulation
//  Note: on failure, the results hold the states up to the last successful step
func (o *Driver) Run(pth *Path) (err error) {

	// verbose
	if h, ok := o.Mdl.(*HyperEP); ok {
		h.Trace = nil
		if o.Verbose {
			h.Trace = func(it int, γ, ep, epdot, f float64) {
				io.Pf("%8d%23.15e%23.15e%23.15e%23.15e\n", it, γ, ep, epdot, f)
			}
		}
	}

	// allocate results arrays
	np := len(pth.Steps) + 1
	o.Res = make([]*State, 1, np)
	o.Wave = make([]float64, 1, np)
	o.Time = make([]float64, 1, np)
	o.Res[0] = o.Mdl.InitIntVars()

	// update states
	var wave float64
	for i, stp := range pth.Steps {
		if o.Verbose {
			io.Pf("step %d: t=%g dt=%g temp=%g remap=%v\n", i, o.Time[i], stp.Dt, stp.Temp, stp.Remap)
		}
		s := o.Res[i].GetCopy()
		if stp.Remap {
			wave, err = o.large.Remap(s, stp.F, stp.Dt, stp.Temp)
		} else {
			wave, err = o.large.Update(s, stp.F, stp.Dt, stp.Temp)
		}
		if err != nil {
			var code ErrorCode
			if !errors.As(err, &code) {
				code = ModelEvalFailure
			}
			if o.Verbose {
				io.PfRed("step %d failed: %v\n", i, code)
			}
			return &UpdateError{Code: code, Index: i, Time: o.Time[i]}
		}
		o.Res = append(o.Res, s)
		o.Wave = append(o.Wave, wave)
		o.Time = append(o.Time, o.Time[i]+stp.Dt)
		if o.Verbose {
			io.Pf("  flag=%v nit=%d ep=%g epdot=%g dp=%g localized=%v\n", s.Flag, s.Nit, s.Ep, s.EpDot, s.Dp, s.Localized)
		}
	}
	return
}
