// SPDX-License-Identifier: MIT

// Package halo implements the Navarro–Frenk–White (NFW) halo kernels that
// lensing predictions are built on.
//
// 🚀 What is an NFW halo?
//
//	ρ(r) = ρ_m δ_c / [(r/r_s)(1 + r/r_s)²]
//
//	with ρ_m = Ωm ρ_crit,0 the mean matter density, r_s = R_Δ / c the scale
//	radius, R_Δ the radius enclosing mean density Δ·ρ_m, and
//	δ_c = (Δ/3) c³ / [ln(1+c) − c/(1+c)].
//
// ✨ Kernels (all elementwise over the radius slice):
//
//   - DensityAtRadius                 — ρ(r), h² Msun / Mpc³.
//   - SurfaceDensityAtRadius          — Σ(R), closed form, h Msun / pc².
//   - ExcessSurfaceDensityAtRadius    — ΔΣ(R) = Σ̄(<R) − Σ(R) from a tabulated
//     Σ on a support grid, h Msun / pc².
//   - MeanSurfaceDensityAtRadius      — closed-form Σ̄(<R), h Msun / pc².
//
// Radii are in Mpc/h and masses in Msun/h. Each output element depends only
// on the matching input radius, so a one-element call reproduces the same
// element of a longer call bit for bit.
//
// Errors (sentinel): ErrEmptyInput, ErrNegativeRadius, ErrInvalidHalo,
// ErrBadGrid, ErrOutsideSupport.
package halo
