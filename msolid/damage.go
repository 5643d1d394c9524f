// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/hyperep/ten"
)

// damage constants
const (
	DamTol     = 1e-10 // minimum failure strain and minimum damage
	SpallLimit = 1.5   // triaxiality above which spall conditions are assumed
	PorCrit    = 1.0   // critical porosity of the modified TEPLA rule
)

// ScalarDamage returns the updated Johnson-Cook damage
//  dp    -- damage at the beginning of the step
//  epdot -- plastic strain rate
//  Note: returns dp unchanged if damage is off or if the failure strain is too small
func (o *Properties) ScalarDamage(T ten.T, dp, temp, epdot, dt float64) float64 {
	if o.Damage != DamageJohnsonCook {
		return dp
	}
	εf := o.FailureStrain(T, temp, epdot)
	if εf < DamTol {
		return dp
	}
	ddp := epdot * dt / εf
	if dp+ddp < DamTol {
		return 0
	}
	return dp + ddp
}

// FailureStrain computes the Johnson-Cook failure strain
//  εf = (D1 + D2 exp(D3 σ*)) (rate term) (thermal term)
//  where σ* = mean(T) / vm(T) is the triaxiality; εf = EpsFMin under spall conditions (σ* ≥ 1.5)
func (o *Properties) FailureStrain(T ten.T, temp, epdot float64) float64 {
	σm := T.Mean()
	σeq := T.Vm()
	σs := 0.0
	if math.Abs(σeq) > 1e-16 {
		σs = σm / σeq
	}
	if σs >= SpallLimit {
		return o.EpsFMin
	}
	σs = math.Max(math.Min(σs, SpallLimit), -SpallLimit)
	stress := o.D1 + o.D2*math.Exp(o.D3*σs)
	rate := 1 + o.D4*math.Log(epdot)
	if epdot < 1 {
		rate = math.Pow(1+epdot, o.D4)
	}
	thermal := 1.0
	if o.MeltSet() {
		thermal += o.D5 * o.Tstar(temp)
	}
	return stress * rate * thermal
}

// Tepla evaluates the modified TEPLA localization rule
//  (φ/φc)² + ((D0 + dp)/DC)² > 1  with porosity φ = 0
func (o *Properties) Tepla(dp float64) bool {
	const φ = 0.0
	sum := math.Pow(φ/PorCrit, 2) + math.Pow((o.D0+dp)/o.DC, 2)
	return sum > 1
}

// Erode applies the erosion policy to the stress of a localized point
//  p -- pressure = -tr(T)/3 (p < 0 means tension)
func (o *Properties) Erode(T ten.T, p float64) ten.T {
	switch {
	case o.AllowNoTension:
		if p < 0 {
			return ten.T{}
		}
		return ten.I.Scale(-p)
	case o.AllowNoShear:
		return ten.I.Scale(-p)
	case o.SetStressToZero:
		return ten.T{}
	}
	return T
}
