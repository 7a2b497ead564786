// SPDX-License-Identifier: MIT
// Package: lvlens/profile
//
// profile.go — 3D density, surface density and excess surface density.

package profile

import (
	"fmt"

	"github.com/katalvlaran/lvlens/cosmology"
	"github.com/katalvlaran/lvlens/halo"
)

// Halo describes a cluster halo: mass in Msun/h, concentration, overdensity
// Δ and profile family.
type Halo struct {
	Mass             float64
	Concentration    float64
	Delta            int
	Parameterization Parameterization
}

// Options returns the evaluation options carried by h. Zero fields keep
// their defaults.
func (h Halo) Options() []Option {
	var opts []Option
	if h.Delta > 0 {
		opts = append(opts, WithDelta(h.Delta))
	}
	if h.Parameterization != "" {
		opts = append(opts, WithParameterization(h.Parameterization))
	}

	return opts
}

// Density3D returns ρ(r) in h² Msun / Mpc³ at 3D radii r3d (Mpc/h).
//
// Errors: cosmology.ErrInvalidCosmology, ErrUnsupportedParameterization and
// the halo kernel sentinels.
func Density3D(r3d []float64, mass, concentration float64, c cosmology.Cosmology, opts ...Option) ([]float64, error) {
	const op = "Density3D"
	o := gatherOptions(opts...)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch o.parameterization {
	case NFW:
		rho, err := halo.DensityAtRadius(r3d, mass, concentration, c.OmegaM(), o.delta)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return rho, nil
	}

	return nil, unsupported(op, o.parameterization)
}

// SurfaceDensity returns Σ(R) in h Msun / pc² at projected radii rProj
// (Mpc/h).
//
// Errors: as Density3D.
func SurfaceDensity(rProj []float64, mass, concentration float64, c cosmology.Cosmology, opts ...Option) ([]float64, error) {
	const op = "SurfaceDensity"
	o := gatherOptions(opts...)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch o.parameterization {
	case NFW:
		sigma, err := halo.SurfaceDensityAtRadius(rProj, mass, concentration, c.OmegaM(), o.delta)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return sigma, nil
	}

	return nil, unsupported(op, o.parameterization)
}

// ExcessSurfaceDensity returns ΔΣ(R) = Σ̄(<R) − Σ(R) in h Msun / pc² at
// projected radii rProj (Mpc/h).
//
// Σ is first tabulated on the support grid (see WithSupportGrid); the kernel
// then integrates that table up to each requested radius.
//
// Errors: as Density3D, plus halo.ErrOutsideSupport for radii outside the
// support grid.
func ExcessSurfaceDensity(rProj []float64, mass, concentration float64, c cosmology.Cosmology, opts ...Option) ([]float64, error) {
	const op = "ExcessSurfaceDensity"
	o := gatherOptions(opts...)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch o.parameterization {
	case NFW:
		omegaM := c.OmegaM()
		grid := o.supportGrid()
		sigma, err := halo.SurfaceDensityAtRadius(grid, mass, concentration, omegaM, o.delta)
		if err != nil {
			return nil, fmt.Errorf("%s: support grid: %w", op, err)
		}
		dsigma, err := halo.ExcessSurfaceDensityAtRadius(rProj, grid, sigma, mass, concentration, omegaM, o.delta)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return dsigma, nil
	}

	return nil, unsupported(op, o.parameterization)
}
