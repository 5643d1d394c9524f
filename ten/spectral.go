// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// EigenSym computes the eigenvalues λ and eigenvectors n of the symmetric part of a
//  n -- eigenvectors stored as columns: n[i][k] is component i of vector k
func EigenSym(a T) (λ [3]float64, n T, err error) {
	s := a.Sym()
	sym := mat.NewSymDense(3, []float64{
		s[0][0], s[0][1], s[0][2],
		s[1][0], s[1][1], s[1][2],
		s[2][0], s[2][1], s[2][2],
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return λ, n, chk.Err("symmetric eigen-decomposition failed")
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	for k := 0; k < 3; k++ {
		λ[k] = vals[k]
		for i := 0; i < 3; i++ {
			n[i][k] = vecs.At(i, k)
		}
	}
	return
}

// SpectralCompose recreates a tensor from its eigenvalues and eigenvectors (as columns)
func SpectralCompose(λ [3]float64, n T) (a T) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = λ[0]*n[i][0]*n[j][0] + λ[1]*n[i][1]*n[j][1] + λ[2]*n[i][2]*n[j][2]
		}
	}
	return
}

// SqrtSPD returns the symmetric positive-definite square root V of a (V·V = a)
//  Note: a must be symmetric positive-definite
func SqrtSPD(a T) (v T, err error) {
	λ, n, err := EigenSym(a)
	if err != nil {
		return
	}
	for k := 0; k < 3; k++ {
		if λ[k] <= 0 {
			return v, chk.Err("cannot compute square root: tensor is not positive-definite (λ%d=%g)", k, λ[k])
		}
		λ[k] = math.Sqrt(λ[k])
	}
	return SpectralCompose(λ, n), nil
}
