// SPDX-License-Identifier: MIT
// Package: lvlens/cosmology
//
// comoving.go — scale-factor-space distances for a Cosmology record.
//
// Model:
//   E(a) = sqrt(Ωm a⁻³ + 1 − Ωm)
//   χ(a) = D_H ∫ₐ¹ da' / (a'² E(a'))
//        = D_H ∫ₐ¹ da' / sqrt(Ωm a' + (1 − Ωm) a'⁴)

package cosmology

import (
	"math"

	"github.com/katalvlaran/lvlens/constants"
)

// Comoving computes distances directly from a Cosmology record by
// integrating over the scale factor.
type Comoving struct {
	points int
	consts constants.Set
}

// NewComoving returns a Comoving distance engine.
func NewComoving(opts ...Option) Comoving {
	o := gatherOptions(opts...)

	return Comoving{points: o.points, consts: o.constantsOr(constants.CODATA2014)}
}

// ComovingRadialDistance returns χ(a) in Mpc.
func (m Comoving) ComovingRadialDistance(c Cosmology, a float64) float64 {
	om := c.OmegaM()
	ol := 1 - om
	integrand := func(x float64) float64 {
		x2 := x * x

		return 1 / math.Sqrt(om*x+ol*x2*x2)
	}
	dh := m.consts.SpeedOfLightKmPerS() / c.H0

	return dh * integrate(integrand, a, 1, m.points)
}

// ComovingAngularDistance returns the transverse comoving distance to a in
// Mpc. In flat space it equals the radial distance.
func (m Comoving) ComovingAngularDistance(c Cosmology, a float64) float64 {
	return m.ComovingRadialDistance(c, a)
}
