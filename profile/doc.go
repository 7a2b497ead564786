// SPDX-License-Identifier: MIT

// Package profile evaluates halo mass profiles for a given mass,
// concentration and background cosmology.
//
// It is the dispatch layer between lensing and the halo kernels: it derives
// Ωm = Ωc + Ωb from the Cosmology record, resolves the overdensity Δ and the
// profile parameterization, and forwards to the kernel for that
// parameterization. Only NFW is provided; any other tag fails fast with
// ErrUnsupportedParameterization naming the received value.
//
// ⚙️ Usage:
//
//	c := cosmology.New(0.225, 0.045, 0.7)
//	r := []float64{0.1, 0.5, 1, 2}
//	sigma, err := profile.SurfaceDensity(r, 1e15, 4, c)
//	dsigma, err := profile.ExcessSurfaceDensity(r, 1e15, 4, c,
//		profile.WithDelta(500),
//		profile.WithSupportGrid(1e-4, 1e3, 2000),
//	)
//
// ExcessSurfaceDensity tabulates Σ on an internal log-spaced support grid
// (default [1e-3, 1e4] Mpc/h, 1000 points) independent of the requested
// radii; every requested radius must lie inside that grid.
package profile
