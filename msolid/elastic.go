// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/hyperep/ten"
)

// TrialStress computes the elastic predictor Te from the elastic deformation gradient Fe
//  jac -- det(F)
func (o *Properties) TrialStress(Fe ten.T, jac float64) (ten.T, ErrorCode) {
	switch o.Elastic {
	case ElasticLinear:
		return o.linearElasticStress(Fe), Success
	case ElasticNeoHookean:
		return o.neoHookeanStress(Fe, jac), Success
	}
	return ten.T{}, ModelEvalFailure
}

// linearElasticStress computes σ = 3K εiso + 2G εdev with ε = sym(Fe - I)
func (o *Properties) linearElasticStress(Fe ten.T) ten.T {
	K, G := o.Bulk(), o.Shear()
	ε := Fe.Sub(ten.I).Sym()
	return ε.Iso().Scale(3.0 * K).Add(ε.Dev().Scale(2.0 * G))
}

// neoHookeanStress computes σ = (2 C10 / J) dev(B̄) + 2 (J - 1) / D1 I
func (o *Properties) neoHookeanStress(Fe ten.T, jac float64) ten.T {
	C10 := o.E / (4.0 * (1.0 + o.Nu))
	D1 := o.BulkCompliance()
	Fb := Fe.Scale(math.Pow(jac, -1.0/3.0))
	Bb := Fb.Mul(Fb.Transpose())
	T := Bb.Dev().Scale(2.0 * C10 / jac)
	pr := 2.0 / D1 * (jac - 1.0)
	for i := 0; i < 3; i++ {
		T[i][i] += pr
	}
	return T
}
