// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ten implements second order tensors in 3D as fixed-size values
package ten

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// T is a second order tensor stored as a 3x3 matrix (row-major)
type T [3][3]float64

// constants
const (
	SQ2    = math.Sqrt2         // √2
	SQ3    = 1.7320508075688772 // √3
	SQ2by3 = 0.8164965809277261 // √(2/3)
	SQ3by2 = 1.224744871391589  // √(3/2)
	TwoBy3 = 2.0 / 3.0          // 2/3
)

// I is the second order identity tensor
var I = T{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Diag returns a diagonal tensor
func Diag(a, b, c float64) T {
	return T{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// Add returns a + b
func (a T) Add(b T) (c T) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
	return
}

// Sub returns a - b
func (a T) Sub(b T) (c T) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] - b[i][j]
		}
	}
	return
}

// Scale returns s * a
func (a T) Scale(s float64) (c T) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = s * a[i][j]
		}
	}
	return
}

// Mul returns the single contraction a · b
func (a T) Mul(b T) (c T) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return
}

// Transpose returns aᵀ
func (a T) Transpose() (c T) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[j][i]
		}
	}
	return
}

// Trace returns tr(a)
func (a T) Trace() float64 {
	return a[0][0] + a[1][1] + a[2][2]
}

// Mean returns tr(a)/3
func (a T) Mean() float64 {
	return a.Trace() / 3.0
}

// Det returns det(a)
func (a T) Det() float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Inv returns the inverse of a
//  Note: an error is returned if |det(a)| < minDet
func (a T) Inv(minDet float64) (ai T, err error) {
	det := a.Det()
	if math.Abs(det) < minDet {
		return ai, chk.Err("cannot invert tensor: |det|=%g is smaller than %g", math.Abs(det), minDet)
	}
	ai[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	ai[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	ai[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	ai[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	ai[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	ai[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	ai[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	ai[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	ai[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
	return
}

// Iso returns the isotropic part (tr(a)/3) I
func (a T) Iso() T {
	return I.Scale(a.Mean())
}

// Dev returns the deviator a - (tr(a)/3) I
func (a T) Dev() (c T) {
	c = a
	m := a.Mean()
	for i := 0; i < 3; i++ {
		c[i][i] -= m
	}
	return
}

// Sym returns the symmetric part (a + aᵀ)/2
func (a T) Sym() (c T) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = (a[i][j] + a[j][i]) / 2.0
		}
	}
	return
}

// Norm returns the Frobenius norm √(a:a)
func (a T) Norm() float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += a[i][j] * a[i][j]
		}
	}
	return math.Sqrt(sum)
}

// Vm returns the von Mises equivalent value √(3/2) ||dev(a)||
func (a T) Vm() float64 {
	return SQ3by2 * a.Dev().Norm()
}

// IsZero tells whether all components are exactly zero
func (a T) IsZero() bool {
	return a == T{}
}

// Slice returns a newly allocated [3][3] slice copy of a
func (a T) Slice() [][]float64 {
	m := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		m[i] = []float64{a[i][0], a[i][1], a[i][2]}
	}
	return m
}

// FromSlice converts a [3][3] slice into a tensor
func FromSlice(m [][]float64) (a T, err error) {
	if len(m) != 3 {
		return a, chk.Err("tensor must have 3 rows; %d is invalid", len(m))
	}
	for i := 0; i < 3; i++ {
		if len(m[i]) != 3 {
			return a, chk.Err("tensor row %d must have 3 columns; %d is invalid", i, len(m[i]))
		}
		for j := 0; j < 3; j++ {
			a[i][j] = m[i][j]
		}
	}
	return
}
