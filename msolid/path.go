// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/hyperep/ten"
)

// Step holds the kinematics of one time step
type Step struct {
	F     ten.T   // deformation gradient at the end of the step
	Dt    float64 // time step size
	Temp  float64 // temperature
	Remap bool    // re-project the state (REMAPPED) instead of a regular update
}

// Path holds a deformation path
//
//  JSON example:
//   {
//     "dt"    : 1e-3,
//     "temp"  : 298,
//     "F"     : [ [[1,0,0],[0,1,0],[0,0,1]], [[1.01,0,0],[0,1,0],[0,0,1]] ],
//     "remap" : [1]
//   }
type Path struct {

	// input
	Dt    float64       `json:"dt"`    // time step size
	Temp  float64       `json:"temp"`  // temperature
	Fs    [][][]float64 `json:"F"`     // deformation gradients [nsteps][3][3]
	Remap []int         `json:"remap"` // indices of steps that re-project the state

	// derived
	Steps []Step `json:"-"`
}

// ReadJson reads path from JSON file
func (o *Path) ReadJson(fn string) (err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return chk.Err("cannot read path file %q: %v", fn, err)
	}
	err = json.Unmarshal(b, o)
	if err != nil {
		return chk.Err("cannot unmarshal path file %q: %v", fn, err)
	}
	return o.Init()
}

// Init sets the steps from the input data
func (o *Path) Init() (err error) {
	if o.Dt <= 0 {
		return chk.Err("path: time step size dt=%g must be positive", o.Dt)
	}
	if len(o.Fs) == 0 {
		return chk.Err("path: at least one deformation gradient is required")
	}
	o.Steps = make([]Step, len(o.Fs))
	for i, f := range o.Fs {
		o.Steps[i].F, err = ten.FromSlice(f)
		if err != nil {
			return chk.Err("path: step %d: %v", i, err)
		}
		if o.Steps[i].F.Det() <= 0 {
			return chk.Err("path: step %d: det(F)=%g must be positive", i, o.Steps[i].F.Det())
		}
		o.Steps[i].Dt = o.Dt
		o.Steps[i].Temp = o.Temp
	}
	for _, idx := range o.Remap {
		if idx < 0 || idx >= len(o.Steps) {
			return chk.Err("path: remap index %d is out of range [0, %d)", idx, len(o.Steps))
		}
		o.Steps[idx].Remap = true
	}
	return
}

// SetSimpleShear sets a simple shear path F = I + γ e₁⊗e₂ with γ ∈ (0, γmax]
func (o *Path) SetSimpleShear(γmax float64, nsteps int, dt, temp float64) error {
	return o.setLinear(γmax, nsteps, dt, temp, func(γ float64) ten.T {
		F := ten.I
		F[0][1] = γ
		return F
	})
}

// SetUniaxial sets a uniaxial strain path F = diag(1 + εmax, 1, 1) with ε ∈ (0, εmax]
func (o *Path) SetUniaxial(εmax float64, nsteps int, dt, temp float64) error {
	return o.setLinear(εmax, nsteps, dt, temp, func(ε float64) ten.T {
		return ten.Diag(1+ε, 1, 1)
	})
}

func (o *Path) setLinear(xmax float64, nsteps int, dt, temp float64, fcn func(x float64) ten.T) error {
	if nsteps < 1 {
		return chk.Err("path: number of steps must be at least 1; %d is invalid", nsteps)
	}
	xs := utl.LinSpace(0, xmax, nsteps+1)
	o.Dt, o.Temp, o.Remap = dt, temp, nil
	o.Fs = make([][][]float64, nsteps)
	for i := 0; i < nsteps; i++ {
		o.Fs[i] = fcn(xs[i+1]).Slice()
	}
	return o.Init()
}
