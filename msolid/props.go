// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Elastic selects the elastic stress predictor
type Elastic int

// elastic models
const (
	ElasticLinear     Elastic = iota // small-strain linear elasticity on Fe
	ElasticNeoHookean                // compressible Neo-Hookean hyperelasticity
)

// Hardening selects the flow stress law
type Hardening int

// hardening laws
const (
	HardeningNone             Hardening = iota // Y = A
	HardeningLinearIsotropic                   // Y = A + B ep
	HardeningPowerLaw                          // Y = A + B epⁿ
	HardeningZerilliArmstrong                  // power law + thermal (C1 + C2 √ep) exp(-α T)
	HardeningJohnsonCook                       // (A + B epⁿ) (1 - T*ᵐ)
)

// RateDep selects the strain-rate dependence of the flow stress
type RateDep int

// rate dependence laws
const (
	RateNone             RateDep = iota // rate independent
	RateZerilliArmstrong                // α = C3 - C4 ln(ε̇p)
	RateJohnsonCook                     // Y *= 1 + C ln(ε̇p/ε̇0)
)

// Damage selects the scalar damage law
type Damage int

// damage laws
const (
	DamageNone        Damage = iota // no damage
	DamageJohnsonCook               // Johnson-Cook ductile damage
)

// option strings
var (
	elasticOpts = map[string]Elastic{
		"linear elastic": ElasticLinear,
		"neo hookean":    ElasticNeoHookean,
	}
	hardeningOpts = map[string]Hardening{
		"none":              HardeningNone,
		"linear isotropic":  HardeningLinearIsotropic,
		"power law":         HardeningPowerLaw,
		"zerilli armstrong": HardeningZerilliArmstrong,
		"johnson cook":      HardeningJohnsonCook,
	}
	rateOpts = map[string]RateDep{
		"none":              RateNone,
		"zerilli armstrong": RateZerilliArmstrong,
		"johnson cook":      RateJohnsonCook,
	}
	damageOpts = map[string]Damage{
		"none":         DamageNone,
		"johnson cook": DamageJohnsonCook,
	}
	erosionOpts = []string{"no tension", "no shear", "zero", "none"}
)

func (o Elastic) String() string   { return optName(elasticOpts, o) }
func (o Hardening) String() string { return optName(hardeningOpts, o) }
func (o RateDep) String() string   { return optName(rateOpts, o) }
func (o Damage) String() string    { return optName(damageOpts, o) }

// optName finds the option string of an enumerated value
func optName[K comparable](opts map[string]K, val K) string {
	if name, ok := codeOf(opts, val); ok {
		return name
	}
	return io.Sf("%d(invalid)", val)
}

// codeOf finds the option string of val; ok is false if val has none
func codeOf[K comparable](opts map[string]K, val K) (name string, ok bool) {
	for n, v := range opts {
		if v == val {
			return n, true
		}
	}
	return "", false
}

// optKeys returns the sorted option strings of a map
func optKeys[K any](opts map[string]K) []string {
	keys := make([]string, 0, len(opts))
	for name := range opts {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Properties holds the material parameters of the hyper-elastoplastic model.
// Properties are set once, validated, and then shared (read-only) by all points of a material.
//
//  Johnson-Cook laws use C1 = T0 (reference temperature), C2 = Tmelt (melting temperature),
//  C3 = m (thermal softening exponent) and C4 = C (rate coefficient).
//  Zerilli-Armstrong uses C1..C4 as the thermal coefficients.
//  Tmelt = math.MaxFloat64 means "melting temperature not set" => no thermal softening.
type Properties struct {

	// elasticity
	Elastic Elastic // elastic model
	E       float64 // Young's modulus
	Nu      float64 // Poisson's coefficient

	// plasticity
	Hardening Hardening // hardening law
	RateDep   RateDep   // rate dependence law
	A         float64   // initial yield stress
	B         float64   // hardening modulus
	N         float64   // hardening exponent
	C1        float64   // ZA: C1; JC: T0
	C2        float64   // ZA: C2; JC: Tmelt
	C3        float64   // ZA: C3; JC: m
	C4        float64   // ZA: C4; JC: C
	EpDot0    float64   // reference plastic strain rate (JC rate dependence)

	// damage
	Damage          Damage  // damage law
	AllowNoTension  bool    // eroded points carry compressive pressure only
	AllowNoShear    bool    // eroded points carry pressure only
	SetStressToZero bool    // eroded points carry no stress
	D0              float64 // initial damage (TEPLA)
	D1              float64 // JC damage: D1
	D2              float64 // JC damage: D2
	D3              float64 // JC damage: D3
	D4              float64 // JC damage: rate coefficient
	D5              float64 // JC damage: temperature coefficient
	DC              float64 // critical damage (TEPLA); 0 < DC < 1 + D0 keeps dp < 1
	EpsFMin         float64 // failure strain under spall conditions
}

// NewProperties returns properties with the default options
//  linear elastic, no hardening, no rate dependence, no damage, no-tension erosion
//  Note: Init resets C2 to zero if it is not given and no Johnson-Cook law uses it as Tmelt
func NewProperties() *Properties {
	return &Properties{AllowNoTension: true, C2: math.MaxFloat64}
}

// Init sets properties from a list of parameters and an option string; e.g.
//  opts = "elastic=neo hookean; hardening=johnson cook; rate=johnson cook; damage=johnson cook; erosion=no tension"
func (o *Properties) Init(prms dbf.Params, opts string) (err error) {
	*o = *NewProperties()
	err = o.SetOptions(opts)
	if err != nil {
		return
	}
	meltGiven := false
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "A":
			o.A = p.V
		case "B":
			o.B = p.V
		case "n":
			o.N = p.V
		case "C1":
			o.C1 = p.V
		case "C2":
			o.C2, meltGiven = p.V, true
		case "C3":
			o.C3 = p.V
		case "C4":
			o.C4 = p.V
		case "epdot0":
			o.EpDot0 = p.V
		case "D0":
			o.D0 = p.V
		case "D1":
			o.D1 = p.V
		case "D2":
			o.D2 = p.V
		case "D3":
			o.D3 = p.V
		case "D4":
			o.D4 = p.V
		case "D5":
			o.D5 = p.V
		case "DC":
			o.DC = p.V
		case "epsfmin":
			o.EpsFMin = p.V
		case "rho":
		default:
			return chk.Err("hyper-ep: parameter named %q is incorrect\n", p.N)
		}
	}
	if !meltGiven && o.Hardening != HardeningJohnsonCook && o.Damage != DamageJohnsonCook {
		o.C2 = 0
	}
	return o.Validate()
}

// SetOptions parses "key=value" pairs separated by semicolons
//  keys: elastic, hardening, rate, damage, erosion
func (o *Properties) SetOptions(opts string) (err error) {
	for _, item := range strings.Split(opts, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		kv := strings.SplitN(item, "=", 2)
		if len(kv) != 2 {
			return chk.Err("hyper-ep: option %q must be given as key=value", item)
		}
		key := strings.TrimSpace(kv[0])
		val := strings.ToLower(strings.Join(strings.Fields(kv[1]), " "))
		var ok bool
		switch key {
		case "elastic":
			o.Elastic, ok = elasticOpts[val]
			if !ok {
				return chk.Err("hyper-ep: elastic model %q is invalid; options are %q", val, optKeys(elasticOpts))
			}
		case "hardening":
			o.Hardening, ok = hardeningOpts[val]
			if !ok {
				return chk.Err("hyper-ep: hardening %q is invalid; options are %q", val, optKeys(hardeningOpts))
			}
		case "rate":
			o.RateDep, ok = rateOpts[val]
			if !ok {
				return chk.Err("hyper-ep: rate dependence %q is invalid; options are %q", val, optKeys(rateOpts))
			}
		case "damage":
			o.Damage, ok = damageOpts[val]
			if !ok {
				return chk.Err("hyper-ep: damage %q is invalid; options are %q", val, optKeys(damageOpts))
			}
		case "erosion":
			o.AllowNoTension, o.AllowNoShear, o.SetStressToZero = false, false, false
			switch val {
			case "no tension":
				o.AllowNoTension = true
			case "no shear":
				o.AllowNoShear = true
			case "zero":
				o.SetStressToZero = true
			case "none":
			default:
				return chk.Err("hyper-ep: erosion %q is invalid; options are %q", val, erosionOpts)
			}
		default:
			return chk.Err("hyper-ep: option key %q is invalid", key)
		}
	}
	return
}

// Options returns the option string corresponding to these properties
func (o *Properties) Options() string {
	erosion := "none"
	switch {
	case o.AllowNoTension:
		erosion = "no tension"
	case o.AllowNoShear:
		erosion = "no shear"
	case o.SetStressToZero:
		erosion = "zero"
	}
	return io.Sf("elastic=%v;hardening=%v;rate=%v;damage=%v;erosion=%s", o.Elastic, o.Hardening, o.RateDep, o.Damage, erosion)
}

// Validate checks parameters and the combination of options
func (o *Properties) Validate() error {
	if _, ok := codeOf(elasticOpts, o.Elastic); !ok {
		return chk.Err("hyper-ep: elastic model %d is invalid", int(o.Elastic))
	}
	if _, ok := codeOf(hardeningOpts, o.Hardening); !ok {
		return chk.Err("hyper-ep: hardening %d is invalid", int(o.Hardening))
	}
	if _, ok := codeOf(rateOpts, o.RateDep); !ok {
		return chk.Err("hyper-ep: rate dependence %d is invalid", int(o.RateDep))
	}
	if _, ok := codeOf(damageOpts, o.Damage); !ok {
		return chk.Err("hyper-ep: damage %d is invalid", int(o.Damage))
	}
	if o.E <= 0 {
		return chk.Err("hyper-ep: Young's modulus E=%g must be positive", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("hyper-ep: Poisson's coefficient nu=%g must be in (-1, 0.5)", o.Nu)
	}
	switch o.RateDep {
	case RateZerilliArmstrong:
		if o.Hardening != HardeningZerilliArmstrong {
			return chk.Err("hyper-ep: zerilli armstrong rate dependence requires zerilli armstrong hardening (got %q)", o.Hardening)
		}
	case RateJohnsonCook:
		if o.Hardening != HardeningJohnsonCook {
			return chk.Err("hyper-ep: johnson cook rate dependence requires johnson cook hardening (got %q)", o.Hardening)
		}
		if o.EpDot0 <= 0 {
			return chk.Err("hyper-ep: johnson cook rate dependence requires epdot0 > 0 (got %g)", o.EpDot0)
		}
	}
	if o.Damage == DamageJohnsonCook {
		if o.DC <= 0 {
			return chk.Err("hyper-ep: johnson cook damage requires DC > 0 (got %g)", o.DC)
		}
		// TEPLA must localize the point before dp reaches 1
		if o.DC >= 1+o.D0 {
			return chk.Err("hyper-ep: johnson cook damage requires DC < 1 + D0 (got DC=%g, D0=%g)", o.DC, o.D0)
		}
	}
	return nil
}

// Shear returns the shear modulus G = μ
func (o *Properties) Shear() float64 {
	return Calc_G_from_Enu(o.E, o.Nu)
}

// Bulk returns the bulk modulus K
func (o *Properties) Bulk() float64 {
	return Calc_K_from_Enu(o.E, o.Nu)
}

// BulkCompliance returns D1 = 6 (1 - 2ν) / E of the Neo-Hookean pressure law p = 2 (J - 1) / D1
func (o *Properties) BulkCompliance() float64 {
	return 6.0 * (1.0 - 2.0*o.Nu) / o.E
}

// MeltSet tells whether the melting temperature (C2) is set
func (o *Properties) MeltSet() bool {
	return math.Abs(o.C2-math.MaxFloat64)+1.0 != 1.0
}

// Tstar returns the homologous temperature (temp - T0) / (Tmelt - T0); 1 above melting
func (o *Properties) Tstar(temp float64) float64 {
	if temp > o.C2 {
		return 1.0
	}
	return (temp - o.C1) / (o.C2 - o.C1)
}
