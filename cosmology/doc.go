// SPDX-License-Identifier: MIT

// Package cosmology holds the background-cosmology record used across lvlens
// and the distance backends that turn it into lensing distances.
//
// 🚀 What lives here?
//
//   - Cosmology — the {Omega_c, Omega_b, h, H0} value type. Ωm = Ωc + Ωb is
//     the only matter density used anywhere in the module.
//   - Adapters — FromSource maps an astropy-style object (Om0, Ob0, h, H0)
//     into a Cosmology; FromParams / Params round-trip the mapping form
//     {"Omega_c", "Omega_b", "h", "H0"}.
//   - Backends — two interchangeable distance engines behind Backend:
//     ComovingBackend (integrates in scale factor, returns χ(a)·a) and
//     FlatLambdaCDMBackend (integrates in redshift, returns D_A(z)).
//     They agree to quadrature precision.
//
// ⚙️ Usage:
//
//	c := cosmology.FromSource(cosmology.NewFlatLambdaCDM(70, 0.27, 0.045))
//	b, err := cosmology.NewBackend(cosmology.KindAuto)
//	if err != nil {
//		return err
//	}
//	dl, err := cosmology.ComovingAngularDistance(b, c, 0.5)          // pc/h
//	dls, err := cosmology.ComovingAngularDistanceBetween(c, 0.5, 1/3.) // pc/h
//
// Backend selection is explicit: NewBackend resolves a Kind once, Probe picks
// the first available candidate. Nothing is cached between calls.
//
// Units: scale factors are dimensionless, Mpc at the kernel boundary
// (FlatLambdaCDM, Comoving), pc/h at the package boundary.
package cosmology
