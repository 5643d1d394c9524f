// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/hyperep/ten"
)

// StateFlag tags the return-mapping state of one update
type StateFlag int

// return-mapping states
const (
	FlagTrial    StateFlag = iota // trial state; not yet checked
	FlagElastic                   // trial stress is admissible
	FlagPlastic                   // trial stress was returned to the yield surface
	FlagRemapped                  // state re-projected by the caller (e.g. after remeshing)
)

func (o StateFlag) String() string {
	switch o {
	case FlagTrial:
		return "trial"
	case FlagElastic:
		return "elastic"
	case FlagPlastic:
		return "plastic"
	case FlagRemapped:
		return "remapped"
	}
	return "invalid"
}

// radial return constants
const (
	RetMaxIt   = 100    // maximum number of Newton iterations
	RetTol     = 1e-12  // tolerance on the yield function
	RetWeakIt  = 24     // weak convergence is only accepted after this iteration
	RetWeakFac = 1000.0 // weak tolerance = RetWeakFac * RetTol
)

// IterFcn is called after each radial return iteration
type IterFcn func(it int, γ, ep, epdot, f float64)

// ReturnResult holds the output of the radial return
type ReturnResult struct {
	Sig   ten.T     // returned stress
	Ep    float64   // equivalent plastic strain
	EpDot float64   // plastic strain rate
	Gam   float64   // γ: plastic multiplier (consistency parameter × dt)
	F     float64   // final value of the yield function
	Flag  StateFlag // ELASTIC, PLASTIC or REMAPPED
	Nit   int       // number of iterations
	Weak  bool      // converged with the weak tolerance
}

// RadialReturn projects the trial stress Te onto the yield surface
//
//  Yield function:   f = ||dev(σ)|| / √2 - Y / √3
//  Residual:         g(γ) = ||dev(Te)|| - √(2/3) Y(ep(γ)) - 2 μ γ
//  Plastic strain:   ep(γ) = ep_n + max(√(2/3) γ, 0),  ε̇p = (ep - ep_n) / dt
//
//  Input:
//   ep, epdot -- values at the beginning of the step
//   flag      -- FlagTrial or FlagRemapped
//   trace     -- may be nil
//
//  Note: the inputs are not modified; on failure, the returned result holds the last iterate
//        and must be discarded
func RadialReturn(p *Properties, Te ten.T, ep, epdot, dp, temp, dt float64, flag StateFlag, trace IterFcn) (res ReturnResult, code ErrorCode) {

	// initial state
	res = ReturnResult{Sig: Te, Ep: ep, EpDot: epdot, Flag: FlagTrial}
	if flag == FlagRemapped {
		res.Flag = FlagRemapped
	}

	// check yield
	twoμ := 2.0 * p.Shear()
	Y := p.FlowStress(temp, ep, epdot, dp)
	S0 := Te.Dev()
	normS0 := S0.Norm()
	res.F = normS0/ten.SQ2 - Y/ten.SQ3
	if res.F <= RetTol {
		if res.Flag != FlagRemapped {
			res.Flag = FlagElastic
		}
		return res, Success
	}
	if res.Flag != FlagRemapped {
		res.Flag = FlagPlastic
	}
	if dt <= 0 {
		return res, ModelEvalFailure
	}

	// Newton iterations with fixed flow direction
	N := S0.Scale(1.0 / normS0)
	tol2 := math.Min(dt, 1e-6)
	epn := ep
	γ := epdot * dt * ten.SQ3by2
	ep = epn + math.Max(ten.SQ2by3*γ, 0)
	epdot = (ep - epn) / dt
	var conv bool
	for it := 0; it < RetMaxIt; it++ {
		Y = p.FlowStress(temp, ep, epdot, dp)
		g := normS0 - ten.SQ2by3*Y - twoμ*γ
		dg := -ten.TwoBy3*p.FlowStressDeriv(temp, ep, epdot, dt, dp) - twoμ
		Δγ := -g / dg
		γ += Δγ
		ep = epn + math.Max(ten.SQ2by3*γ, 0)
		epdot = (ep - epn) / dt

		// yield function at updated state
		Y = p.FlowStress(temp, ep, epdot, dp)
		res.F = S0.Sub(N.Scale(twoμ*γ)).Norm()/ten.SQ2 - Y/ten.SQ3
		res.Nit = it + 1
		if trace != nil {
			trace(res.Nit, γ, ep, epdot, res.F)
		}
		conv, res.Weak = retConverged(it, res.F, Δγ, tol2)
		if conv {
			break
		}
	}

	// results
	res.Sig = Te.Sub(N.Scale(twoμ * γ))
	res.Ep, res.EpDot, res.Gam = ep, epdot, γ
	if !conv {
		return res, RadialReturnFailure
	}
	return res, Success
}

// retConverged checks the convergence of radial return iteration it (0-based)
//  f   -- yield function at the updated state
//  Δγ  -- last Newton increment
//  tol -- tolerance on |Δγ|
//  Note: weak convergence (f ≤ RetWeakFac·RetTol) is only accepted after RetWeakIt iterations
func retConverged(it int, f, Δγ, tol float64) (conv, weak bool) {
	if f < RetTol || math.Abs(Δγ) < tol {
		return true, false
	}
	if it > RetWeakIt && f <= RetWeakFac*RetTol {
		return true, true
	}
	return false, false
}
