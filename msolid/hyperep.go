// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/hyperep/ten"
)

// HyperEP implements the hyper-elastoplastic model with Johnson-Cook damage
type HyperEP struct {
	Prop  Properties // material properties; read-only after Init
	Rho   float64    // density
	Trace IterFcn    // optional radial return callback
}

// add model to factory
func init() {
	allocators["hyper-ep"] = func() Model { return new(HyperEP) }
}

// Init initialises model
func (o *HyperEP) Init(prms dbf.Params, opts string) (err error) {
	for _, p := range prms {
		if p.N == "rho" {
			o.Rho = p.V
		}
	}
	if o.Rho <= 0 {
		return chk.Err("hyper-ep: density rho=%g must be positive", o.Rho)
	}
	return o.Prop.Init(prms, opts)
}

// GetPrms gets (an example) of parameters
//  steel-like Johnson-Cook parameters in SI units
func (o HyperEP) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 200e9},
		&dbf.P{N: "nu", V: 0.29},
		&dbf.P{N: "rho", V: 7800},
		&dbf.P{N: "A", V: 792e6},
		&dbf.P{N: "B", V: 510e6},
		&dbf.P{N: "n", V: 0.26},
		&dbf.P{N: "C1", V: 298},
		&dbf.P{N: "C2", V: 1793},
		&dbf.P{N: "C3", V: 1.03},
		&dbf.P{N: "C4", V: 0.014},
		&dbf.P{N: "epdot0", V: 1},
		&dbf.P{N: "D1", V: 0.05},
		&dbf.P{N: "D2", V: 3.44},
		&dbf.P{N: "D3", V: -2.12},
		&dbf.P{N: "D4", V: 0.002},
		&dbf.P{N: "D5", V: 0.61},
		&dbf.P{N: "DC", V: 0.9},
		&dbf.P{N: "epsfmin", V: 0.01},
	}
}

// GetOpts gets the option string
func (o HyperEP) GetOpts() string {
	return o.Prop.Options()
}

// InitIntVars initialises internal variables
func (o HyperEP) InitIntVars() *State {
	return NewState()
}

// GetRho returns density
func (o HyperEP) GetRho() float64 {
	return o.Rho
}

// Update updates stresses for new deformation F
func (o *HyperEP) Update(s *State, F ten.T, dt, temp float64) (wave float64, err error) {
	wave, code := o.Prop.UpdatePoint(o.Rho, F, dt, temp, s, FlagTrial, o.Trace)
	return wave, code.Err()
}

// Remap re-projects a state after remeshing
func (o *HyperEP) Remap(s *State, F ten.T, dt, temp float64) (wave float64, err error) {
	wave, code := o.Prop.UpdatePoint(o.Rho, F, dt, temp, s, FlagRemapped, o.Trace)
	return wave, code.Err()
}
