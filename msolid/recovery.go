// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/hyperep/ten"
)

// recovery constants
const (
	BbeMaxIt = 25    // maximum number of iterations in FindBbe
	BbeTol   = 1e-12 // tolerance on the squared increment of B̄e_zz
	MINDET   = 1e-20 // minimum determinant when inverting Fp or Ve
)

// FindBbe computes the isochoric elastic left Cauchy-Green tensor B̄e from the stress τ
//
//  For isotropic elasticity, dev(τ) = μ dev(B̄e) and det(B̄e) = 1; hence B̄e is found by
//  solving det(B̄e(b)) = 1 for b = B̄e_zz with Newton's method, where
//   B̄e_xx = b + (τxx - τzz) / μ,  B̄e_yy = b + (τyy - τzz) / μ,  B̄e_ij = τij / μ (i ≠ j)
func FindBbe(τ ten.T, μ float64) (Bbe ten.T, code ErrorCode) {
	txx, tyy, tzz := τ[0][0], τ[1][1], τ[2][2]
	txy := 0.5 * (τ[0][1] + τ[1][0])
	txz := 0.5 * (τ[0][2] + τ[2][0])
	tyz := 0.5 * (τ[1][2] + τ[2][1])
	Bbe = τ.Dev().Scale(1.0 / μ)
	μ2, μ3 := μ*μ, μ*μ*μ
	bold, bnew := 1.0, 1.0
	for it := 0; it < BbeMaxIt; it++ {
		a := bold*μ + txx - tzz
		b := bold*μ + tyy - tzz
		det := (bold*μ*(-txy*txy+a*b) + 2.0*txy*txz*tyz - txz*txz*b - tyz*tyz*a) / μ3
		ddet := (bold*μ*(2.0*bold*μ+txx+tyy-2.0*tzz) - txy*txy - txz*txz - tyz*tyz + a*b) / μ2
		bnew = bold - (det-1.0)/ddet
		Bbe[0][0] = (μ*bnew + txx - tzz) / μ
		Bbe[1][1] = (μ*bnew + tyy - tzz) / μ
		Bbe[2][2] = bnew
		if (bnew-bold)*(bnew-bold) < BbeTol {
			return Bbe, Success
		}
		bold = bnew
	}
	return Bbe, ElasticDeformationUpdateFailure
}

// RecoverPlastic computes the plastic deformation gradient Fp = Ve⁻¹ F consistent with the
// returned stress T, where Ve = √(B̄e J^(2/3)).
//  Note: if flag == FlagRemapped, the diagonal of the returned stress is replaced by the
//        Neo-Hookean pressure corrected by the current mean stress
func (o *Properties) RecoverPlastic(T, F ten.T, flag StateFlag) (Tnew, Fp ten.T, code ErrorCode) {
	Tnew = T
	jac := F.Det()
	Bbe, code := FindBbe(T, o.Shear())
	if code != Success {
		return
	}
	Be := Bbe.Scale(math.Pow(jac, 2.0/3.0))
	Ve, err := ten.SqrtSPD(Be)
	if err != nil {
		return Tnew, Fp, ModelEvalFailure
	}
	Vei, err := Ve.Inv(MINDET)
	if err != nil {
		return Tnew, Fp, ModelEvalFailure
	}
	Fp = Vei.Mul(F)
	if flag == FlagRemapped {
		D1 := o.BulkCompliance()
		p := 2.0*jac/D1*(jac-1.0) - T.Trace()/3.0
		for i := 0; i < 3; i++ {
			Tnew[i][i] = p
		}
	}
	return Tnew, Fp, Success
}
