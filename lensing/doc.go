// SPDX-License-Identifier: MIT

// Package lensing predicts weak-lensing observables of a cluster halo.
//
// It combines the profile evaluator (Σ, ΔΣ) with the critical surface
// density Σ_crit built from cosmological distances:
//
//	Σ_crit = d_s / (d_l · d_ls) · c² / (4πG)      [h Msun / pc²]
//	γ_t    = ΔΣ / Σ_crit
//	κ      = Σ / Σ_crit
//	g_t    = γ_t / (1 − κ)
//
// d_l and d_s come from the selected cosmology.Backend; d_ls always comes
// from the FlatLambdaCDM two-point distance. c and G are taken from the
// backend's constant set.
//
// Source redshifts are consumed according to a SourceModel. Only
// SinglePlane is implemented; KnownZSource and ZSourceDistribution return
// ErrNotImplemented. The model is checked before any computation.
//
// ⚙️ Usage:
//
//	c := cosmology.FromSource(cosmology.NewFlatLambdaCDM(70, 0.27, 0.045))
//	r := []float64{0.5, 1, 2}
//	gt, err := lensing.ReducedTangentialShear(r, 1e15, 4, 1.0, []float64{2.0}, c,
//		lensing.WithDelta(200),
//		lensing.WithDomainChecks(),
//	)
//
// zSource of length 1 applies to every radius; a zSource as long as r is
// paired elementwise. Without WithDomainChecks, sources in front of the lens
// and κ ≥ 1 produce whatever the arithmetic yields (negative, zero or
// infinite values); with it they fail with ErrSourceNotBehindLens and
// ErrStrongLensing.
package lensing
