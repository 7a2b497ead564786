// SPDX-License-Identifier: MIT
// Package: lvlens/cosmology
//
// flatlcdm.go — a flat ΛCDM cosmology object with redshift-space distances.
//
// Model:
//   E(z)   = sqrt(Ωm (1+z)³ + ΩΛ),  ΩΛ = 1 − Ωm, no radiation term.
//   χ(z)   = D_H ∫₀ᶻ dz'/E(z'),     D_H = c / H0 (Mpc).
//   D_A(z) = χ(z) / (1+z).
//   D_A(z1, z2) = (χ(z2) − χ(z1)) / (1+z2)  (flat space).

package cosmology

import (
	"math"

	"github.com/katalvlaran/lvlens/constants"
)

// FlatLambdaCDM is a flat ΛCDM cosmology built from (H0, Om0, Ob0).
// It implements Source, so FromSource(NewFlatLambdaCDM(...)) yields the
// matching Cosmology record.
type FlatLambdaCDM struct {
	h0, om0, ob0 float64
	points       int
	consts       constants.Set
}

// NewFlatLambdaCDM returns a flat ΛCDM model. H0 is in km s⁻¹ Mpc⁻¹.
func NewFlatLambdaCDM(h0, om0, ob0 float64, opts ...Option) *FlatLambdaCDM {
	o := gatherOptions(opts...)

	return &FlatLambdaCDM{
		h0:     h0,
		om0:    om0,
		ob0:    ob0,
		points: o.points,
		consts: o.constantsOr(constants.CODATA2018),
	}
}

// Om0 returns the matter density today.
func (f *FlatLambdaCDM) Om0() float64 { return f.om0 }

// Ob0 returns the baryon density today.
func (f *FlatLambdaCDM) Ob0() float64 { return f.ob0 }

// Odm0 returns the dark-matter density today, Om0 − Ob0.
func (f *FlatLambdaCDM) Odm0() float64 { return f.om0 - f.ob0 }

// Ode0 returns the dark-energy density today, 1 − Om0.
func (f *FlatLambdaCDM) Ode0() float64 { return 1 - f.om0 }

// H0 returns the Hubble constant in km s⁻¹ Mpc⁻¹.
func (f *FlatLambdaCDM) H0() float64 { return f.h0 }

// H returns the reduced Hubble constant H0/100.
func (f *FlatLambdaCDM) H() float64 { return f.h0 / hubbleUnit }

// Efunc returns the dimensionless Hubble rate E(z) = H(z)/H0.
func (f *FlatLambdaCDM) Efunc(z float64) float64 {
	zp1 := 1 + z

	return math.Sqrt(f.om0*zp1*zp1*zp1 + f.Ode0())
}

// HubbleDistance returns c/H0 in Mpc.
func (f *FlatLambdaCDM) HubbleDistance() float64 {
	return f.consts.SpeedOfLightKmPerS() / f.h0
}

// ComovingDistance returns the line-of-sight comoving distance to z in Mpc.
func (f *FlatLambdaCDM) ComovingDistance(z float64) float64 {
	inv := func(x float64) float64 { return 1 / f.Efunc(x) }

	return f.HubbleDistance() * integrate(inv, 0, z, f.points)
}

// AngularDiameterDistance returns D_A to redshift z in Mpc.
func (f *FlatLambdaCDM) AngularDiameterDistance(z float64) float64 {
	return f.ComovingDistance(z) / (1 + z)
}

// AngularDiameterDistanceZ1Z2 returns D_A between z1 and z2 in Mpc.
// It is negative when z2 < z1; no guard is applied.
func (f *FlatLambdaCDM) AngularDiameterDistanceZ1Z2(z1, z2 float64) float64 {
	inv := func(x float64) float64 { return 1 / f.Efunc(x) }

	return f.HubbleDistance() * integrate(inv, z1, z2, f.points) / (1 + z2)
}
