// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements finite-strain elastoplastic models for solids
//
//  Per material point and per step:
//
//   Fe = F · Fp⁻¹                 elastic predictor   => Te
//   f(Te) ≤ 0 ?                   radial return       => σ, ep, ε̇p
//   B̄e(σ), Ve = √(B̄e J^(2/3))     recovery            => Fp = Ve⁻¹ · F
//   εf(σ*, ε̇p, T*)                damage/localization => dp, erosion
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/hyperep/ten"
)

// Model defines the interface for solid models
type Model interface {
	Init(prms dbf.Params, opts string) error // initialises model
	GetPrms() dbf.Params                     // gets (an example) of parameters
	GetOpts() string                         // gets the option string
	InitIntVars() *State                     // initialises AND allocates internal variables
	GetRho() float64                         // returns density
}

// Large defines solid models for large deformation analyses
type Large interface {
	Update(s *State, F ten.T, dt, temp float64) (wave float64, err error) // updates stresses for new deformation F
	Remap(s *State, F ten.T, dt, temp float64) (wave float64, err error)  // re-projects a state after remeshing
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
