// Package lvlens predicts weak-lensing observables for galaxy-cluster halos:
// density, surface density, shear and convergence of an NFW halo of given
// mass and concentration in a flat ΛCDM background.
//
// 🚀 What is lvlens?
//
//	A small set of stateless, elementwise transforms over []float64:
//		• ρ(r), Σ(R), ΔΣ(R) of an NFW halo
//		• Σ_crit for a lens/source redshift pair
//		• γ_t = ΔΣ/Σ_crit, κ = Σ/Σ_crit, g_t = γ_t/(1−κ)
//
// Everything is organized under these subpackages:
//
//	scale/     — redshift ↔ scale factor
//	constants/ — c and G in pc / Msun units (two constant sets)
//	cosmology/ — Cosmology record, FlatLambdaCDM and comoving distance backends
//	halo/      — NFW kernels (ρ, Σ, Σ̄, ΔΣ over a support grid)
//	profile/   — parameterization dispatch over the halo kernels
//	lensing/   — Σ_crit and the shear / convergence observables
//	config/    — YAML + LVLENS_* configuration for the lvlens CLI
//
// Units: radii in Mpc/h, masses in Msun/h, ρ in h² Msun/Mpc³, Σ and ΔΣ in
// h Msun/pc², distances in pc/h.
//
// Quick example:
//
//	c := cosmology.FromSource(cosmology.NewFlatLambdaCDM(70, 0.27, 0.045))
//	r := []float64{0.1, 1, 10}
//	gt, err := lensing.ReducedTangentialShear(r, 1e15, 4, 1.0, []float64{2.0}, c)
//
//	go install github.com/katalvlaran/lvlens/cmd/lvlens@latest
//	lvlens predict --zsource 2.0 -f json
package lvlens
