// SPDX-License-Identifier: MIT
// Package: lvlens/lensing
//
// observables.go — tangential shear, convergence and reduced tangential
// shear, dispatched on the source-redshift model.

package lensing

import (
	"fmt"

	"github.com/katalvlaran/lvlens/cosmology"
	"github.com/katalvlaran/lvlens/profile"
)

// TangentialShear returns γ_t = ΔΣ / Σ_crit at projected radii r (Mpc/h).
//
// Errors: ErrUnsupportedSourceModel, ErrNotImplemented, ErrEmptyInput,
// ErrLengthMismatch, ErrSourceNotBehindLens (domain checks), plus the
// profile, halo and cosmology sentinels.
func TangentialShear(r []float64, mass, concentration, zCluster float64, zSource []float64, c cosmology.Cosmology, opts ...Option) ([]float64, error) {
	const op = "TangentialShear"
	o := gatherOptions(opts...)
	if err := checkModel(op, o.model); err != nil {
		return nil, err
	}

	return singlePlane(op, profile.ExcessSurfaceDensity, r, mass, concentration, zCluster, zSource, c, o, opts)
}

// Convergence returns κ = Σ / Σ_crit at projected radii r (Mpc/h).
//
// Errors: as TangentialShear.
func Convergence(r []float64, mass, concentration, zCluster float64, zSource []float64, c cosmology.Cosmology, opts ...Option) ([]float64, error) {
	const op = "Convergence"
	o := gatherOptions(opts...)
	if err := checkModel(op, o.model); err != nil {
		return nil, err
	}

	return singlePlane(op, profile.SurfaceDensity, r, mass, concentration, zCluster, zSource, c, o, opts)
}

// ReducedTangentialShear returns g_t = γ_t / (1 − κ) at projected radii r
// (Mpc/h). κ and γ_t are each computed in full by Convergence and
// TangentialShear.
//
// Errors: as TangentialShear, plus ErrStrongLensing when κ ≥ 1 under domain
// checks.
func ReducedTangentialShear(r []float64, mass, concentration, zCluster float64, zSource []float64, c cosmology.Cosmology, opts ...Option) ([]float64, error) {
	const op = "ReducedTangentialShear"
	o := gatherOptions(opts...)
	if err := checkModel(op, o.model); err != nil {
		return nil, err
	}

	kappa, err := Convergence(r, mass, concentration, zCluster, zSource, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	gamma, err := TangentialShear(r, mass, concentration, zCluster, zSource, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]float64, len(r))
	for i := range out {
		if o.domainChecks && kappa[i] >= 1 {
			return nil, fmt.Errorf("%s: r[%d]=%v: kappa=%v: %w", op, i, r[i], kappa[i], ErrStrongLensing)
		}
		out[i] = gamma[i] / (1 - kappa[i])
	}

	return out, nil
}

// checkModel fails fast on every model but SinglePlane.
func checkModel(op string, m SourceModel) error {
	switch m {
	case SinglePlane:
		return nil
	case KnownZSource, ZSourceDistribution:
		return fmt.Errorf("%s: source model %q: %w", op, string(m), ErrNotImplemented)
	}

	return fmt.Errorf("%s: source model %q: %w", op, string(m), ErrUnsupportedSourceModel)
}

// densityFunc is the shape shared by profile.SurfaceDensity and
// profile.ExcessSurfaceDensity.
type densityFunc func([]float64, float64, float64, cosmology.Cosmology, ...profile.Option) ([]float64, error)

// singlePlane divides density(r) by Σ_crit(zCluster, zSource) elementwise.
func singlePlane(op string, density densityFunc, r []float64, mass, concentration, zCluster float64, zSource []float64, c cosmology.Cosmology, o Options, opts []Option) ([]float64, error) {
	if len(r) == 0 {
		return nil, fmt.Errorf("%s: r: %w", op, ErrEmptyInput)
	}
	if len(zSource) != 1 && len(zSource) != len(r) {
		return nil, fmt.Errorf("%s: len(zSource)=%d, len(r)=%d: %w", op, len(zSource), len(r), ErrLengthMismatch)
	}

	num, err := density(r, mass, concentration, c, o.profile...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	crit, err := CriticalSurfaceDensity(c, zCluster, zSource, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]float64, len(r))
	for i := range out {
		out[i] = num[i] / crit[sourceIndex(i, len(crit))]
	}

	return out, nil
}

// sourceIndex maps radius i onto a zSource of length n (1 or len(r)).
func sourceIndex(i, n int) int {
	if n == 1 {
		return 0
	}

	return i
}
