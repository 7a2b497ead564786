// SPDX-License-Identifier: MIT
// Package: lvlens/halo
//
// kernels.go — elementwise NFW kernels over radius slices.
//
// Contract:
//   • Inputs are never mutated; each call allocates one result slice.
//   • out[i] depends only on r[i] (and the support grid for ΔΣ).
//   • r = 0 is accepted and yields +Inf for ρ and Σ.

package halo

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
)

// DensityAtRadius returns the NFW 3D density ρ(r) in h² Msun / Mpc³.
//
// Inputs: r3d in Mpc/h, mass in Msun/h, concentration, Ωm and Δ.
// Errors: ErrEmptyInput, ErrNegativeRadius, ErrInvalidHalo.
// Complexity: O(n).
func DensityAtRadius(r3d []float64, mass, concentration, omegaM float64, delta int) ([]float64, error) {
	p, err := prepare("DensityAtRadius", r3d, mass, concentration, omegaM, delta)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(r3d))
	for i, r := range r3d {
		out[i] = p.density(r)
	}

	return out, nil
}

// SurfaceDensityAtRadius returns the NFW projected surface density Σ(R) in
// h Msun / pc².
//
// Errors: ErrEmptyInput, ErrNegativeRadius, ErrInvalidHalo.
// Complexity: O(n).
func SurfaceDensityAtRadius(rProj []float64, mass, concentration, omegaM float64, delta int) ([]float64, error) {
	p, err := prepare("SurfaceDensityAtRadius", rProj, mass, concentration, omegaM, delta)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(rProj))
	for i, r := range rProj {
		out[i] = p.sigma(r)
	}

	return out, nil
}

// MeanSurfaceDensityAtRadius returns the closed-form mean surface density
// inside R, Σ̄(<R) = 2/R² ∫₀ᴿ R'Σ(R') dR', in h Msun / pc².
//
// Errors: ErrEmptyInput, ErrNegativeRadius, ErrInvalidHalo.
// Complexity: O(n).
func MeanSurfaceDensityAtRadius(rProj []float64, mass, concentration, omegaM float64, delta int) ([]float64, error) {
	p, err := prepare("MeanSurfaceDensityAtRadius", rProj, mass, concentration, omegaM, delta)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(rProj))
	for i, r := range rProj {
		out[i] = p.meanSigma(r)
	}

	return out, nil
}

// ExcessSurfaceDensityAtRadius returns ΔΣ(R) = Σ̄(<R) − Σ(R) in h Msun / pc²
// from Σ tabulated on a support grid.
//
// Implementation:
//   - Stage 1: validate halo, targets and grid (rGrid strictly increasing,
//     rGrid[0] > 0, sigmaGrid > 0 and finite, equal lengths ≥ 2).
//   - Stage 2: the mass inside rGrid[0] comes from the closed-form Σ̄.
//   - Stage 3: ∫ R'Σ dR' = ∫ R'²Σ d ln R' from rGrid[0] to R by the trapezoid
//     rule over the grid nodes below R, plus one partial panel ending at R.
//   - Stage 4: Σ(R) is log-log interpolated between the bracketing nodes.
//
// Errors: ErrEmptyInput, ErrNegativeRadius, ErrInvalidHalo, ErrBadGrid,
// ErrOutsideSupport (R < rGrid[0] or R > rGrid[n−1]).
// Complexity: O(n·k) time for n targets over a k-point grid, O(k) space.
func ExcessSurfaceDensityAtRadius(rTarget, rGrid, sigmaGrid []float64, mass, concentration, omegaM float64, delta int) ([]float64, error) {
	const op = "ExcessSurfaceDensityAtRadius"
	p, err := prepare(op, rTarget, mass, concentration, omegaM, delta)
	if err != nil {
		return nil, err
	}
	if err = validateGrid(rGrid, sigmaGrid); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	k := len(rGrid)
	lnR := make([]float64, k)
	lnSigma := make([]float64, k)
	weighted := make([]float64, k) // R² Σ
	for i := range rGrid {
		lnR[i] = math.Log(rGrid[i])
		lnSigma[i] = math.Log(sigmaGrid[i])
		weighted[i] = rGrid[i] * rGrid[i] * sigmaGrid[i]
	}
	rMin, rMax := rGrid[0], rGrid[k-1]
	inner := 0.5 * rMin * rMin * p.meanSigma(rMin)

	out := make([]float64, len(rTarget))
	for i, r := range rTarget {
		if r < rMin || r > rMax {
			return nil, fmt.Errorf("%s: r[%d]=%v not in [%v, %v]: %w", op, i, r, rMin, rMax, ErrOutsideSupport)
		}

		j := sort.SearchFloat64s(rGrid, r) // first node with rGrid[j] >= r
		var sigmaR, enclosed float64
		if rGrid[j] == r {
			sigmaR = sigmaGrid[j]
			enclosed = inner + trapezoid(lnR[:j+1], weighted[:j+1])
		} else {
			j-- // lower bracketing node
			lr := math.Log(r)
			t := (lr - lnR[j]) / (lnR[j+1] - lnR[j])
			sigmaR = math.Exp(lnSigma[j] + t*(lnSigma[j+1]-lnSigma[j]))
			panel := 0.5 * (weighted[j] + r*r*sigmaR) * (lr - lnR[j])
			enclosed = inner + trapezoid(lnR[:j+1], weighted[:j+1]) + panel
		}
		out[i] = 2*enclosed/(r*r) - sigmaR
	}

	return out, nil
}

// prepare validates radii and the halo description for kernel op.
func prepare(op string, r []float64, mass, concentration, omegaM float64, delta int) (params, error) {
	if len(r) == 0 {
		return params{}, fmt.Errorf("%s: %w", op, ErrEmptyInput)
	}
	for i, v := range r {
		if v < 0 || math.IsNaN(v) {
			return params{}, fmt.Errorf("%s: r[%d]=%v: %w", op, i, v, ErrNegativeRadius)
		}
	}
	p, err := newParams(mass, concentration, omegaM, delta)
	if err != nil {
		return params{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// validateGrid checks the ΔΣ support grid.
func validateGrid(rGrid, sigmaGrid []float64) error {
	if len(rGrid) < 2 || len(rGrid) != len(sigmaGrid) {
		return fmt.Errorf("len(rGrid)=%d len(sigmaGrid)=%d: %w", len(rGrid), len(sigmaGrid), ErrBadGrid)
	}
	if !positive(rGrid[0]) {
		return fmt.Errorf("rGrid[0]=%v: %w", rGrid[0], ErrBadGrid)
	}
	for i := range rGrid {
		if i > 0 && !(rGrid[i] > rGrid[i-1]) {
			return fmt.Errorf("rGrid[%d]=%v not increasing: %w", i, rGrid[i], ErrBadGrid)
		}
		if !positive(sigmaGrid[i]) {
			return fmt.Errorf("sigmaGrid[%d]=%v: %w", i, sigmaGrid[i], ErrBadGrid)
		}
	}

	return nil
}

// trapezoid integrates f over x; a single node spans no area.
func trapezoid(x, f []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	return integrate.Trapezoidal(x, f)
}
