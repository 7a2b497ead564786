// SPDX-License-Identifier: MIT
// Package: lvlens/halo
//
// nfw.go — NFW structural parameters, 3D density and closed-form projections.
//
// Projected shapes (x = R / r_s), Wright & Brainerd (2000):
//
//	Σ(x)   = 2 r_s δ_c ρ_m f(x)
//	f(x)   = [1 − 2/√(1−x²) · artanh √((1−x)/(1+x))] / (x² − 1)   x < 1
//	       = 1/3                                                  x = 1
//	       = [1 − 2/√(x²−1) · arctan √((x−1)/(1+x))] / (x² − 1)   x > 1
//
//	Σ̄(<x) = 4 r_s δ_c ρ_m g(x) / x²
//	g(x)   = ln(x/2) + 2/√(1−x²) · artanh √((1−x)/(1+x))         x < 1
//	       = ln(1/2) + 1                                          x = 1
//	       = ln(x/2) + 2/√(x²−1) · arctan √((x−1)/(1+x))          x > 1

package halo

import (
	"fmt"
	"math"
)

// CriticalDensity is ρ_crit,0 in h² Msun / Mpc³.
const CriticalDensity = 2.77536627e11

// mpc2ToPc2 converts a per-Mpc² surface density to per-pc².
const mpc2ToPc2 = 1e-12

// unityBand is the half-width around x = 1 where f and g use their limits.
// Outside it the closed forms lose at most ~1e-10 to cancellation.
const unityBand = 1e-6

// params are the derived NFW quantities shared by every kernel.
type params struct {
	rhoM   float64 // mean matter density, h² Msun / Mpc³
	rs     float64 // scale radius, Mpc/h
	deltaC float64 // characteristic overdensity
}

// MeanMatterDensity returns ρ_m = Ωm ρ_crit,0 in h² Msun / Mpc³.
func MeanMatterDensity(omegaM float64) float64 {
	return omegaM * CriticalDensity
}

// Radius returns R_Δ, the radius enclosing mean density Δ·ρ_m, in Mpc/h.
func Radius(mass, omegaM float64, delta int) float64 {
	return math.Cbrt(3 * mass / (4 * math.Pi * float64(delta) * MeanMatterDensity(omegaM)))
}

// ScaleRadius returns r_s = R_Δ / c in Mpc/h.
func ScaleRadius(mass, concentration, omegaM float64, delta int) float64 {
	return Radius(mass, omegaM, delta) / concentration
}

// CharacteristicOverdensity returns δ_c = (Δ/3) c³ / [ln(1+c) − c/(1+c)].
func CharacteristicOverdensity(concentration float64, delta int) float64 {
	c := concentration

	return float64(delta) / 3 * c * c * c / (math.Log1p(c) - c/(1+c))
}

// newParams validates the halo description and derives its NFW parameters.
func newParams(mass, concentration, omegaM float64, delta int) (params, error) {
	switch {
	case !positive(mass):
		return params{}, fmt.Errorf("mass=%v: %w", mass, ErrInvalidHalo)
	case !positive(concentration):
		return params{}, fmt.Errorf("concentration=%v: %w", concentration, ErrInvalidHalo)
	case !positive(omegaM):
		return params{}, fmt.Errorf("Omega_m=%v: %w", omegaM, ErrInvalidHalo)
	case delta <= 0:
		return params{}, fmt.Errorf("Delta=%d: %w", delta, ErrInvalidHalo)
	}

	return params{
		rhoM:   MeanMatterDensity(omegaM),
		rs:     ScaleRadius(mass, concentration, omegaM, delta),
		deltaC: CharacteristicOverdensity(concentration, delta),
	}, nil
}

// density returns ρ(r) for one radius.
func (p params) density(r float64) float64 {
	x := r / p.rs

	return p.rhoM * p.deltaC / (x * (1 + x) * (1 + x))
}

// sigma returns Σ(R) for one radius in h Msun / pc².
func (p params) sigma(r float64) float64 {
	return 2 * p.rs * p.deltaC * p.rhoM * sigmaShape(r/p.rs) * mpc2ToPc2
}

// meanSigma returns Σ̄(<R) for one radius in h Msun / pc².
func (p params) meanSigma(r float64) float64 {
	x := r / p.rs

	return 4 * p.rs * p.deltaC * p.rhoM * meanShape(x) / (x * x) * mpc2ToPc2
}

// sigmaShape is f(x).
func sigmaShape(x float64) float64 {
	switch {
	case math.Abs(x-1) < unityBand:
		return 1.0 / 3.0
	case x < 1:
		s := math.Sqrt(1 - x*x)

		return (1 - 2/s*math.Atanh(math.Sqrt((1-x)/(1+x)))) / (x*x - 1)
	default:
		s := math.Sqrt(x*x - 1)

		return (1 - 2/s*math.Atan(math.Sqrt((x-1)/(1+x)))) / (x*x - 1)
	}
}

// meanShape is g(x).
func meanShape(x float64) float64 {
	switch {
	case math.Abs(x-1) < unityBand:
		return math.Log(0.5) + 1
	case x < 1:
		return math.Log(x/2) + 2/math.Sqrt(1-x*x)*math.Atanh(math.Sqrt((1-x)/(1+x)))
	default:
		return math.Log(x/2) + 2/math.Sqrt(x*x-1)*math.Atan(math.Sqrt((x-1)/(1+x)))
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
