// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// Calc_K_from_Enu computes the bulk modulus K from Young's modulus and Poisson's coefficient
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu computes the shear modulus G from Young's modulus and Poisson's coefficient
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}

// WaveSpeed computes the elastic (plane) wave speed √((K + 4G/3) / ρ)
func WaveSpeed(E, ν, ρ float64) float64 {
	K := Calc_K_from_Enu(E, ν)
	G := Calc_G_from_Enu(E, ν)
	return math.Sqrt((K + 4.0*G/3.0) / ρ)
}
