// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/hyperep/ten"

// State holds the internal variables of one material point
type State struct {

	// essential
	Sig ten.T // σ: current Cauchy stress tensor
	Fp  ten.T // plastic deformation gradient

	// plasticity and damage
	Ep        float64 // equivalent plastic strain
	EpDot     float64 // plastic strain rate
	Dp        float64 // scalar damage
	Localized bool    // point has localized (failed)

	// last update
	Flag StateFlag // return-mapping state
	Nit  int       // number of radial return iterations
	Weak bool      // radial return converged with the weak tolerance
}

// NewState returns a state at rest: zero stress and Fp = I
func NewState() *State {
	return &State{Fp: ten.I}
}

// Set copies states
func (o *State) Set(other *State) {
	*o = *other
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := new(State)
	other.Set(o)
	return other
}
