// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/hyperep/ten"

// UpdatePoint updates the stress and internal variables of one material point
//
//  Input:
//   rho   -- density
//   F     -- deformation gradient at the end of the step
//   dt    -- time step size
//   temp  -- temperature
//   flag  -- FlagTrial, or FlagRemapped after an external re-projection
//   trace -- radial return callback; may be nil
//  Output:
//   wave -- elastic wave speed
//   code -- Success or the status of the first failed stage
//
//  Note: s is only modified if code == Success
func (o *Properties) UpdatePoint(rho float64, F ten.T, dt, temp float64, s *State, flag StateFlag, trace IterFcn) (wave float64, code ErrorCode) {

	// wave speed
	wave = WaveSpeed(o.E, o.Nu, rho)

	// elastic predictor
	jac := F.Det()
	Fpi, err := s.Fp.Inv(MINDET)
	if err != nil {
		return wave, ModelEvalFailure
	}
	Te, code := o.TrialStress(F.Mul(Fpi), jac)
	if code != Success {
		return
	}

	// return mapping
	if flag != FlagRemapped {
		flag = FlagTrial
	}
	res, code := RadialReturn(o, Te, s.Ep, s.EpDot, s.Dp, temp, dt, flag, trace)
	if code != Success {
		return
	}

	// plastic deformation
	T, Fp := res.Sig, s.Fp
	if res.Flag != FlagElastic {
		T, Fp, code = o.RecoverPlastic(res.Sig, F, res.Flag)
		if code != Success {
			return
		}
	}

	// damage and localization
	dp, localized := s.Dp, s.Localized
	if o.Damage != DamageNone {
		p := -T.Trace() / 3.0
		if localized {
			T = o.Erode(T, p)
		}
		dp = o.ScalarDamage(T, dp, temp, res.EpDot, dt)
		if o.Tepla(dp) {
			if localized {
				T = ten.T{}
			} else {
				localized = true
				T = o.Erode(T, p)
			}
			dp = 0
		}
	}

	// commit
	s.Sig, s.Fp = T, Fp
	s.Ep, s.EpDot, s.Dp, s.Localized = res.Ep, res.EpDot, dp, localized
	s.Flag, s.Nit, s.Weak = res.Flag, res.Nit, res.Weak
	return
}
