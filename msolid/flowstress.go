// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// SMALL replaces non-positive arguments of √ep and 1/ε̇p in derivatives
const SMALL = 1e-8

// FlowStress computes the current yield strength Y(ep, ε̇p, temp) scaled by (1 - dp)
func (o *Properties) FlowStress(temp, ep, epdot, dp float64) float64 {
	var Y float64
	switch o.Hardening {
	case HardeningNone:
		Y = o.A
	case HardeningLinearIsotropic:
		Y = o.A + o.B*ep
	case HardeningPowerLaw:
		Y = o.powerLaw(ep)
	case HardeningZerilliArmstrong:
		Y = o.powerLaw(ep)
		Y += (o.C1 + o.C2*math.Sqrt(ep)) * math.Exp(-o.zaAlpha(epdot)*temp)
	case HardeningJohnsonCook:
		Y = o.A
		if o.B > 0 {
			if math.Abs(o.N) > 0 {
				Y += o.B * math.Pow(ep, o.N)
			} else {
				Y += o.B
			}
		}
		Y *= o.jcThermal(temp)
	}
	if o.RateDep == RateJohnsonCook && o.C4 > 0 {
		rfac := epdot / o.EpDot0
		if rfac < 1 {
			Y *= math.Pow(1+rfac, o.C4)
		} else {
			Y *= 1 + o.C4*math.Log(rfac)
		}
	}
	return (1 - dp) * Y
}

// FlowStressDeriv computes dY/dep scaled by (1 - dp)
//  Note: rate-dependent laws add the ε̇p contribution through ε̇p = Δep/dt
//  Note: no √(2/3) factor is included, unlike an iteration on ep; the radial return uses
//        dg/dγ = -(2/3) dY/dep - 2μ
func (o *Properties) FlowStressDeriv(temp, ep, epdot, dt, dp float64) float64 {
	var deriv float64
	switch o.Hardening {
	case HardeningLinearIsotropic:
		deriv = o.B
	case HardeningPowerLaw:
		deriv = o.powerLawDeriv(ep)
	case HardeningZerilliArmstrong:
		deriv = o.powerLawDeriv(ep)
		alpha := o.zaAlpha(epdot)
		ex := math.Exp(-alpha * temp)
		deriv += 0.5 * o.C2 / math.Sqrt(guard(ep)) * ex
		if o.RateDep == RateZerilliArmstrong {
			term1 := o.C1 * o.C4 * temp * ex
			term2 := o.C2 * math.Sqrt(ep) * o.C4 * temp * ex
			deriv += (term1 + term2) / guard(epdot) / dt
		}
	case HardeningJohnsonCook:
		θ := o.jcThermal(temp)
		if ep > 0 {
			deriv = o.B * o.N * math.Pow(ep, o.N-1) * θ
		}
		if o.RateDep == RateJohnsonCook {
			rfac := epdot / o.EpDot0
			var term1, term2 float64
			term2 = (o.A + o.B*math.Pow(ep, o.N)) * θ
			if rfac < 1 {
				term1 = math.Pow(1+rfac, o.C4)
				term2 *= o.C4 * math.Pow(1+rfac, o.C4-1)
			} else {
				term1 = 1 + o.C4*math.Log(rfac)
				term2 *= o.C4 / rfac
			}
			deriv = deriv*term1 + term2/dt
		}
	}
	return (1 - dp) * deriv
}

// powerLaw returns A + B epⁿ for ep > 0; A otherwise
func (o *Properties) powerLaw(ep float64) float64 {
	if ep > 0 {
		return o.A + o.B*math.Pow(ep, o.N)
	}
	return o.A
}

func (o *Properties) powerLawDeriv(ep float64) float64 {
	if ep > 0 {
		return o.B * o.N * math.Pow(ep, o.N-1)
	}
	return 0
}

// zaAlpha returns the Zerilli-Armstrong thermal exponent α = C3 - C4 ln(ε̇p)
func (o *Properties) zaAlpha(epdot float64) float64 {
	if o.RateDep == RateZerilliArmstrong {
		return o.C3 - o.C4*math.Log(guard(epdot))
	}
	return o.C3
}

// jcThermal returns the Johnson-Cook thermal softening factor; 1 if Tmelt is not set
func (o *Properties) jcThermal(temp float64) float64 {
	if !o.MeltSet() {
		return 1
	}
	tstar := o.Tstar(temp)
	if tstar < 0 {
		return 1 - tstar
	}
	return 1 - math.Pow(tstar, o.C3)
}

func guard(x float64) float64 {
	if x <= 0 {
		return SMALL
	}
	return x
}
