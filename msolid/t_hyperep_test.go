// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hyperep/ten"
	"github.com/google/go-cmp/cmp"
)

// shear returns F = I + γ e₁⊗e₂
func shear(γ float64) ten.T {
	F := ten.I
	F[0][1] = γ
	return F
}

// yieldFcn computes ||dev(σ)||/√2 - Y/√3 at the state s
func yieldFcn(p *Properties, s *State, temp float64) float64 {
	return s.Sig.Dev().Norm()/ten.SQ2 - p.FlowStress(temp, s.Ep, s.EpDot, s.Dp)/ten.SQ3
}

// linHard returns nondimensional properties with linear isotropic hardening
func linHard(tst *testing.T, opts string) *Properties {
	return newProps(tst, "hardening=linear isotropic;"+opts,
		&dbf.P{N: "E", V: 200},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "A", V: 0.3},
		&dbf.P{N: "B", V: 1},
	)
}

func Test_elastic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elastic01")

	// linear elastic closed form
	E, ν, γ := 1e9, 0.3, 1e-4
	p := newProps(tst, "elastic=linear elastic;hardening=none", &dbf.P{N: "E", V: E}, &dbf.P{N: "nu", V: ν}, &dbf.P{N: "A", V: 1e8})
	G := E / 2 / (1 + ν)
	F := shear(γ)
	Te, code := p.TrialStress(F, F.Det())
	if code != Success {
		tst.Errorf("TrialStress failed: %v\n", code)
		return
	}
	io.Pforan("Te = %v\n", Te)
	chk.Float64(tst, "Txy", 1e-8, Te[0][1], G*γ)
	chk.Float64(tst, "Tyx", 1e-8, Te[1][0], G*γ)
	chk.Float64(tst, "tr(Te)", 1e-8, Te.Trace(), 0)

	// the update keeps the trial stress
	s := NewState()
	wave, code := p.UpdatePoint(7800, F, 1e-6, 298, s, FlagTrial, nil)
	if code != Success {
		tst.Errorf("UpdatePoint failed: %v\n", code)
		return
	}
	if s.Flag != FlagElastic {
		tst.Errorf("state should be elastic: %v\n", s.Flag)
	}
	if s.Sig != Te {
		tst.Errorf("elastic stress must equal the trial stress exactly:\n%v\n%v\n", s.Sig, Te)
	}
	if s.Fp != ten.I {
		tst.Errorf("Fp must be unchanged in elastic updates: %v\n", s.Fp)
	}
	chk.Float64(tst, "wave", 1e-10, wave, math.Sqrt((p.Bulk()+4*G/3)/7800))

	// neo-hookean approaches linear elasticity for small strains
	q := newProps(tst, "elastic=neo hookean", &dbf.P{N: "E", V: E}, &dbf.P{N: "nu", V: ν}, &dbf.P{N: "A", V: 1e8})
	Tn, _ := q.TrialStress(F, F.Det())
	io.Pforan("Tn = %v\n", Tn)
	chk.Float64(tst, "neo: Txy/(Gγ)", 1e-6, Tn[0][1]/(G*γ), 1)

	// neo-hookean uniaxial closed form
	λ := 1.2
	Fu := ten.Diag(λ, 1, 1)
	Tu, _ := q.TrialStress(Fu, λ)
	μ := q.Shear()
	D1 := q.BulkCompliance()
	J23 := math.Pow(λ, -2.0/3.0)
	chk.Float64(tst, "neo: Txx", 1e-3, Tu[0][0], μ/λ*J23*(λ*λ-(λ*λ+2)/3)+2*(λ-1)/D1)
	chk.Float64(tst, "neo: Tyy", 1e-3, Tu[1][1], μ/λ*J23*(1-(λ*λ+2)/3)+2*(λ-1)/D1)
	chk.Float64(tst, "neo: Tyy-Tzz", 1e-6, Tu[1][1], Tu[2][2])
}

func Test_rest01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rest01")

	for _, elastic := range []string{"linear elastic", "neo hookean"} {
		for _, hard := range []string{"none", "linear isotropic", "power law", "zerilli armstrong", "johnson cook"} {
			p := newProps(tst, io.Sf("elastic=%s;hardening=%s", elastic, hard),
				&dbf.P{N: "E", V: 200e9},
				&dbf.P{N: "nu", V: 0.3},
				&dbf.P{N: "A", V: 3e8},
				&dbf.P{N: "B", V: 1e8},
				&dbf.P{N: "n", V: 0.5},
				&dbf.P{N: "C1", V: 1e7},
				&dbf.P{N: "C3", V: 1e-3},
			)
			s := NewState()
			_, code := p.UpdatePoint(7800, ten.I, 1e-6, 298, s, FlagTrial, nil)
			if code != Success {
				tst.Errorf("%s/%s: update failed: %v\n", elastic, hard, code)
				continue
			}
			if !s.Sig.IsZero() || s.Flag != FlagElastic || s.Ep != 0 {
				tst.Errorf("%s/%s: rest state must have zero stress: σ=%v flag=%v ep=%v\n", elastic, hard, s.Sig, s.Flag, s.Ep)
			}
		}
	}
}

func Test_return01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("return01")

	// linear hardening: Newton converges in one iteration
	p := linHard(tst, "")
	μ := p.Shear()
	F := shear(0.01)
	Te, _ := p.TrialStress(F, 1)
	normS0 := Te.Dev().Norm()
	res, code := RadialReturn(p, Te, 0, 0, 0, 0, 1, FlagTrial, nil)
	if code != Success {
		tst.Errorf("RadialReturn failed: %v\n", code)
		return
	}
	io.Pforan("res = %+v\n", res)
	if res.Flag != FlagPlastic {
		tst.Errorf("flag should be plastic: %v\n", res.Flag)
	}
	γ := (normS0 - ten.SQ2by3*0.3) / (2*μ + ten.TwoBy3)
	chk.Float64(tst, "γ", 1e-14, res.Gam, γ)
	chk.Float64(tst, "ep", 1e-14, res.Ep, ten.SQ2by3*γ)
	chk.Float64(tst, "epdot", 1e-14, res.EpDot, ten.SQ2by3*γ)
	chk.Float64(tst, "Txy", 1e-14, res.Sig[0][1], Te[0][1]*(1-2*μ*γ/normS0))
	chk.Float64(tst, "tr(T)", 1e-14, res.Sig.Trace(), Te.Trace())
	s := &State{Sig: res.Sig, Ep: res.Ep, EpDot: res.EpDot}
	f := yieldFcn(p, s, 0)
	io.Pforan("f = %v\n", f)
	if math.Abs(f) > RetWeakFac*RetTol {
		tst.Errorf("returned stress is not on the yield surface: f=%v\n", f)
	}

	// elastic: stress unchanged and no iterations
	Te, _ = p.TrialStress(shear(1e-3), 1)
	res, code = RadialReturn(p, Te, 0.1, 0, 0, 0, 1, FlagTrial, nil)
	if code != Success || res.Flag != FlagElastic || res.Sig != Te || res.Nit != 0 || res.Ep != 0.1 {
		tst.Errorf("elastic return failed: code=%v res=%+v\n", code, res)
	}
}

func Test_return02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("return02")

	// power law: ep and ε̇p must not decrease during the iterations
	p := newProps(tst, "hardening=power law",
		&dbf.P{N: "E", V: 200},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "A", V: 0.3},
		&dbf.P{N: "B", V: 1},
		&dbf.P{N: "n", V: 0.5},
	)
	Te, _ := p.TrialStress(shear(0.01), 1)
	var eps, epdots []float64
	trace := func(it int, γ, ep, epdot, f float64) {
		io.Pf("%3d γ=%23.15e ep=%23.15e epdot=%23.15e f=%23.15e\n", it, γ, ep, epdot, f)
		eps = append(eps, ep)
		epdots = append(epdots, epdot)
	}
	epn, dt := 0.01, 0.5
	res, code := RadialReturn(p, Te, epn, 0, 0, 0, dt, FlagTrial, trace)
	if code != Success {
		tst.Errorf("RadialReturn failed: %v\n", code)
		return
	}
	if len(eps) != res.Nit || res.Nit < 2 {
		tst.Errorf("number of iterations is incorrect: nit=%d len=%d\n", res.Nit, len(eps))
	}
	prevEp, prevEpdot := epn, 0.0
	for i := range eps {
		if eps[i] < prevEp || epdots[i] < prevEpdot || epdots[i] < 0 {
			tst.Errorf("iteration %d: ep or epdot decreased: ep=%v (%v) epdot=%v (%v)\n", i+1, eps[i], prevEp, epdots[i], prevEpdot)
		}
		prevEp, prevEpdot = eps[i], epdots[i]
	}
	chk.Float64(tst, "epdot", 1e-15, res.EpDot, (res.Ep-epn)/dt)
	s := &State{Sig: res.Sig, Ep: res.Ep, EpDot: res.EpDot}
	f := yieldFcn(p, s, 0)
	io.Pforan("f = %v weak = %v\n", f, res.Weak)
	if math.Abs(f) > RetWeakFac*RetTol {
		tst.Errorf("returned stress is not on the yield surface: f=%v\n", f)
	}
}

func Test_return03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("return03")

	// softening faster than the elastic response: Newton diverges
	p := newProps(tst, "hardening=linear isotropic",
		&dbf.P{N: "E", V: 1},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "A", V: 1e-3},
		&dbf.P{N: "B", V: -2.4},
	)
	nit := 0
	trace := func(it int, γ, ep, epdot, f float64) { nit = it }
	s := NewState()
	_, code := p.UpdatePoint(1, shear(0.01), 1, 0, s, FlagTrial, trace)
	if code != RadialReturnFailure {
		tst.Errorf("update should have failed with RADIAL_RETURN_FAILURE; got %v\n", code)
	}
	chk.Int(tst, "nit", nit, RetMaxIt)
	if diff := cmp.Diff(NewState(), s); diff != "" {
		tst.Errorf("state must not be modified on failure (-want +got):\n%s", diff)
	}

	// through the model interface
	mdl := &HyperEP{Prop: *p, Rho: 1}
	_, err := mdl.Update(s, shear(0.01), 1, 0)
	if err != RadialReturnFailure {
		tst.Errorf("Update should return RADIAL_RETURN_FAILURE; got %v\n", err)
	}
}

func Test_return04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("return04")

	// power law starting with a nonzero plastic strain rate
	p := newProps(tst, "hardening=power law",
		&dbf.P{N: "E", V: 200},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "A", V: 0.3},
		&dbf.P{N: "B", V: 1},
		&dbf.P{N: "n", V: 0.5},
	)
	Te, _ := p.TrialStress(shear(0.01), 1)
	epn, dt := 0.01, 0.5
	ref, code := RadialReturn(p, Te, epn, 0, 0, 0, dt, FlagTrial, nil)
	if code != Success {
		tst.Errorf("RadialReturn failed: %v\n", code)
		return
	}
	nit := 0
	trace := func(it int, γ, ep, epdot, f float64) {
		io.Pf("%3d γ=%23.15e ep=%23.15e epdot=%23.15e f=%23.15e\n", it, γ, ep, epdot, f)
		if ep < epn {
			tst.Errorf("iteration %d: ep=%v is smaller than ep_n\n", it, ep)
		}
		nit = it
	}
	res, code := RadialReturn(p, Te, epn, 1, 0, 0, dt, FlagTrial, trace)
	if code != Success {
		tst.Errorf("RadialReturn failed: %v\n", code)
		return
	}
	io.Pforan("res = %+v\n", res)
	chk.Int(tst, "nit", nit, res.Nit)
	chk.Float64(tst, "ep", 1e-10, res.Ep, ref.Ep)
	chk.Float64(tst, "epdot", 1e-15, res.EpDot, (res.Ep-epn)/dt)
	s := &State{Sig: res.Sig, Ep: res.Ep, EpDot: res.EpDot}
	if f := yieldFcn(p, s, 0); math.Abs(f) > RetWeakFac*RetTol {
		tst.Errorf("returned stress is not on the yield surface: f=%v\n", f)
	}

	// no time step in the plastic branch
	res, code = RadialReturn(p, Te, epn, 0, 0, 0, 0, FlagTrial, nil)
	if code != ModelEvalFailure || res.Nit != 0 {
		tst.Errorf("dt=0 should give MODEL_EVAL_FAILURE without iterations: %v %+v\n", code, res)
	}
	st := NewState()
	_, code = p.UpdatePoint(1, shear(0.01), 0, 0, st, FlagTrial, nil)
	if code != ModelEvalFailure {
		tst.Errorf("update with dt=0 should give MODEL_EVAL_FAILURE: %v\n", code)
	}
	if diff := cmp.Diff(NewState(), st); diff != "" {
		tst.Errorf("state must not be modified on failure (-want +got):\n%s", diff)
	}

	// convergence criteria
	for _, c := range []struct {
		it         int
		f, Δγ      float64
		conv, weak bool
	}{
		{0, 1e-13, 1, true, false},
		{0, 1e-3, 1e-7, true, false},
		{0, 1e-10, 1e-3, false, false},
		{RetWeakIt, 1e-10, 1e-3, false, false},
		{RetWeakIt + 1, 1e-10, 1e-3, true, true},
		{RetWeakIt + 1, 1e-8, 1e-3, false, false},
	} {
		conv, weak := retConverged(c.it, c.f, c.Δγ, 1e-6)
		if conv != c.conv || weak != c.weak {
			tst.Errorf("it=%d f=%g Δγ=%g: conv=%v weak=%v; want %v %v\n", c.it, c.f, c.Δγ, conv, weak, c.conv, c.weak)
		}
	}
}

func Test_recovery01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recovery01")

	// B̄ of simple shear has det = 1
	μ, γ := 80.0, 0.3
	F := shear(γ)
	Bb := F.Mul(F.Transpose())
	τ := Bb.Dev().Scale(μ).Add(ten.I.Scale(-5))
	Bbe, code := FindBbe(τ, μ)
	if code != Success {
		tst.Errorf("FindBbe failed: %v\n", code)
		return
	}
	io.Pforan("Bbe = %v\n", Bbe)
	chk.Deep2(tst, "Bbe", 1e-10, Bbe.Slice(), Bb.Slice())
	chk.Float64(tst, "det(Bbe)", 1e-10, Bbe.Det(), 1)

	// plastic update recovers a volume-preserving Fp
	for _, elastic := range []string{"linear elastic", "neo hookean"} {
		p := linHard(tst, "elastic="+elastic)
		s := NewState()
		_, code = p.UpdatePoint(1, shear(0.02), 1e-3, 0, s, FlagTrial, nil)
		if code != Success {
			tst.Errorf("%s: update failed: %v\n", elastic, code)
			continue
		}
		io.Pforan("%s: Fp = %v\n", elastic, s.Fp)
		if s.Flag != FlagPlastic || s.Ep <= 0 {
			tst.Errorf("%s: state should be plastic: %v ep=%v\n", elastic, s.Flag, s.Ep)
		}
		chk.Float64(tst, elastic+": det(Fp)", 1e-9, s.Fp.Det(), 1)
		if s.Fp[0][1] <= 0 {
			tst.Errorf("%s: plastic shear should be positive: %v\n", elastic, s.Fp[0][1])
		}
		if f := yieldFcn(p, s, 0); math.Abs(f) > RetWeakFac*RetTol {
			tst.Errorf("%s: stress is not on the yield surface: f=%v\n", elastic, f)
		}
		Bbe, code = FindBbe(s.Sig, p.Shear())
		if code != Success || math.Abs(Bbe.Det()-1) > 1e-10 {
			tst.Errorf("%s: det(Bbe) = %v (code=%v)\n", elastic, Bbe.Det(), code)
		}
	}
}

func Test_recovery02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recovery02")

	// the Newton iterations on B̄e_zz do not converge
	for _, txx := range []float64{-100, -1e3, -1e4} {
		Bbe, code := FindBbe(ten.Diag(txx, 0, 0), 1)
		io.Pforan("txx=%g: det(Bbe)=%v code=%v\n", txx, Bbe.Det(), code)
		if code != ElasticDeformationUpdateFailure {
			tst.Errorf("txx=%g: FindBbe should fail with ELASTIC_DEFORMATION_UPDATE_FAILURE; got %v\n", txx, code)
		}
	}

	// the failure is returned by the recovery
	p := newProps(tst, "", &dbf.P{N: "E", V: 2}, &dbf.P{N: "nu", V: 0})
	chk.Float64(tst, "μ", 1e-17, p.Shear(), 1)
	_, _, code := p.RecoverPlastic(ten.Diag(-100, 0, 0), ten.I, FlagPlastic)
	if code != ElasticDeformationUpdateFailure {
		tst.Errorf("RecoverPlastic should fail with ELASTIC_DEFORMATION_UPDATE_FAILURE; got %v\n", code)
	}
}

func Test_remap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("remap01")

	p := newProps(tst, "elastic=neo hookean", &dbf.P{N: "E", V: 200}, &dbf.P{N: "nu", V: 0.3}, &dbf.P{N: "A", V: 1e3})
	λ := 1.01
	F := ten.Diag(λ, 1/math.Sqrt(λ), 1/math.Sqrt(λ))
	jac := F.Det()
	Te, _ := p.TrialStress(F, jac)
	s := NewState()
	_, code := p.UpdatePoint(1, F, 1e-3, 0, s, FlagRemapped, nil)
	if code != Success {
		tst.Errorf("remap failed: %v\n", code)
		return
	}
	if s.Flag != FlagRemapped {
		tst.Errorf("flag should be remapped: %v\n", s.Flag)
	}
	pr := 2*jac/p.BulkCompliance()*(jac-1) - Te.Trace()/3
	io.Pforan("σ = %v\n", s.Sig)
	for i := 0; i < 3; i++ {
		chk.Float64(tst, io.Sf("σ%d%d", i, i), 1e-12, s.Sig[i][i], pr)
	}
	chk.Deep2(tst, "Fp", 1e-9, s.Fp.Slice(), ten.I.Slice())
}

func Test_damage01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("damage01")

	p := newProps(tst, "damage=johnson cook",
		&dbf.P{N: "E", V: 200},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "A", V: 1},
		&dbf.P{N: "D1", V: 0.1},
		&dbf.P{N: "D2", V: 0.2},
		&dbf.P{N: "D3", V: -1.5},
		&dbf.P{N: "DC", V: 0.5},
		&dbf.P{N: "epsfmin", V: 0.5},
	)

	// pure shear: σ* = 0
	τ := ten.T{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}}
	chk.Float64(tst, "εf(shear)", 1e-15, p.FailureStrain(τ, 0, 0.5), 0.3)
	chk.Float64(tst, "dp(shear)", 1e-15, p.ScalarDamage(τ, 0.1, 0, 0.5, 0.1), 0.1+0.05/0.3)

	// spall: σ* ≥ 1.5
	sp := ten.Diag(4, 3, 3)
	chk.Float64(tst, "εf(spall)", 1e-15, p.FailureStrain(sp, 0, 0.5), 0.5)

	// clamped triaxiality
	cp := ten.Diag(-4, -3, -3)
	chk.Float64(tst, "εf(compression)", 1e-15, p.FailureStrain(cp, 0, 0), 0.1+0.2*math.Exp(2.25))

	// no plastic flow
	chk.Float64(tst, "dp(epdot=0)", 1e-17, p.ScalarDamage(τ, 0, 0, 0, 0.1), 0)

	// rate and thermal terms
	q := newProps(tst, "damage=johnson cook",
		&dbf.P{N: "E", V: 200},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "D1", V: 0.1},
		&dbf.P{N: "D2", V: 0.2},
		&dbf.P{N: "D4", V: 0.1},
		&dbf.P{N: "D5", V: 0.5},
		&dbf.P{N: "C1", V: 300},
		&dbf.P{N: "C2", V: 1300},
		&dbf.P{N: "DC", V: 0.5},
	)
	chk.Float64(tst, "εf(rate,temp)", 1e-15, q.FailureStrain(τ, 800, math.E), 0.3*1.1*1.25)
	chk.Float64(tst, "εf(slow)", 1e-15, q.FailureStrain(τ, 300, 0.5), 0.3*math.Pow(1.5, 0.1))

	// failed material
	r := newProps(tst, "damage=johnson cook", &dbf.P{N: "E", V: 200}, &dbf.P{N: "nu", V: 0.3}, &dbf.P{N: "DC", V: 0.5})
	chk.Float64(tst, "dp(εf=0)", 1e-17, r.ScalarDamage(τ, 0.2, 0, 10, 1), 0.2)

	// no damage
	n := linHard(tst, "")
	chk.Float64(tst, "dp(none)", 1e-17, n.ScalarDamage(τ, 0.2, 0, 10, 1), 0.2)

	// modified TEPLA rule
	if p.Tepla(0.4) || !p.Tepla(0.6) {
		tst.Errorf("TEPLA rule failed\n")
	}
}

func Test_erosion01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("erosion01")

	tens := ten.T{{1, 0.5, 0}, {0.5, 2, 0}, {0, 0, 3}}
	comp := tens.Scale(-1)
	pt, pc := -tens.Trace()/3, -comp.Trace()/3

	p := NewProperties()
	if !p.Erode(tens, pt).IsZero() {
		tst.Errorf("no tension: tensile stress must be eroded to zero\n")
	}
	chk.Deep2(tst, "no tension: compression", 1e-15, p.Erode(comp, pc).Slice(), ten.I.Scale(-2).Slice())

	p.AllowNoTension, p.AllowNoShear = false, true
	chk.Deep2(tst, "no shear: tension", 1e-15, p.Erode(tens, pt).Slice(), ten.I.Scale(2).Slice())
	chk.Deep2(tst, "no shear: compression", 1e-15, p.Erode(comp, pc).Slice(), ten.I.Scale(-2).Slice())

	p.AllowNoShear, p.SetStressToZero = false, true
	if !p.Erode(comp, pc).IsZero() {
		tst.Errorf("zero: stress must be eroded to zero\n")
	}

	p.SetStressToZero = false
	if p.Erode(comp, pc) != comp {
		tst.Errorf("none: stress must not be changed\n")
	}
}

func Test_localization01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("localization01")

	p := newProps(tst, "damage=johnson cook;erosion=no tension",
		&dbf.P{N: "E", V: 200},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "A", V: 1e3},
		&dbf.P{N: "D0", V: 0.1},
		&dbf.P{N: "DC", V: 0.5},
	)
	K := p.Bulk()
	Fc := ten.Diag(0.999, 1, 1)
	Ft := ten.Diag(1.001, 1, 1)

	// already localized: tension => zero stress
	s := NewState()
	s.Localized = true
	_, code := p.UpdatePoint(1, Ft, 1e-3, 0, s, FlagTrial, nil)
	if code != Success || !s.Sig.IsZero() {
		tst.Errorf("localized point in tension must have zero stress: σ=%v code=%v\n", s.Sig, code)
	}

	// already localized: compression => -p I
	s = NewState()
	s.Localized = true
	_, code = p.UpdatePoint(1, Fc, 1e-3, 0, s, FlagTrial, nil)
	if code != Success {
		tst.Errorf("update failed: %v\n", code)
		return
	}
	chk.Deep2(tst, "σ(compression)", 1e-14, s.Sig.Slice(), ten.I.Scale(-1e-3*K).Slice())

	// first localization: (D0 + dp)/DC > 1
	s = NewState()
	s.Dp = 0.45
	_, code = p.UpdatePoint(1, Fc, 1e-3, 0, s, FlagTrial, nil)
	if code != Success || !s.Localized || s.Dp != 0 {
		tst.Errorf("point should localize with dp reset: localized=%v dp=%v code=%v\n", s.Localized, s.Dp, code)
	}
	chk.Deep2(tst, "σ(localized)", 1e-14, s.Sig.Slice(), ten.I.Scale(-1e-3*K).Slice())

	// localized again: fully eroded
	s.Dp = 0.45
	_, code = p.UpdatePoint(1, Fc, 1e-3, 0, s, FlagTrial, nil)
	if code != Success || !s.Localized || s.Dp != 0 || !s.Sig.IsZero() {
		tst.Errorf("re-localized point must be fully eroded: σ=%v dp=%v code=%v\n", s.Sig, s.Dp, code)
	}
}

func Test_damage02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("damage02")

	// damage accumulates under plastic shear and stays in [0,1)
	p := newProps(tst, "hardening=linear isotropic;damage=johnson cook",
		&dbf.P{N: "E", V: 200},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "A", V: 0.3},
		&dbf.P{N: "B", V: 1},
		&dbf.P{N: "D1", V: 0.01},
		&dbf.P{N: "D2", V: 0.01},
		&dbf.P{N: "DC", V: 0.9},
	)
	s := NewState()
	dt := 1e-3
	dpOld := 0.0
	localizedAt := -1
	for i := 1; i <= 60; i++ {
		_, code := p.UpdatePoint(1, shear(0.002*float64(i)), dt, 0, s, FlagTrial, nil)
		if code != Success {
			tst.Errorf("step %d failed: %v\n", i, code)
			return
		}
		io.Pf("%3d ep=%.6f dp=%.6f localized=%v\n", i, s.Ep, s.Dp, s.Localized)
		if s.Dp < 0 || s.Dp >= 1 {
			tst.Errorf("step %d: dp=%v is out of [0,1)\n", i, s.Dp)
		}
		if s.Localized && localizedAt < 0 {
			localizedAt = i
			if s.Dp != 0 {
				tst.Errorf("dp must be reset when localizing\n")
			}
		} else if s.Dp < dpOld && !(s.Localized && s.Dp == 0) {
			tst.Errorf("step %d: dp decreased without localization: %v < %v\n", i, s.Dp, dpOld)
		}
		dpOld = s.Dp
	}
	if localizedAt < 0 {
		tst.Errorf("point should have localized\n")
	}
}
