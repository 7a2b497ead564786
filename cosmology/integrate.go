// SPDX-License-Identifier: MIT
// Package: lvlens/cosmology

package cosmology

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// mpcToPc converts megaparsecs to parsecs.
const mpcToPc = 1e6

// integrate returns ∫_lo^hi f with an n-point Gauss–Legendre rule.
// Reversed bounds flip the sign; equal bounds give exactly zero.
func integrate(f func(float64) float64, lo, hi float64, n int) float64 {
	switch {
	case lo == hi:
		return 0
	case lo > hi:
		return -quad.Fixed(f, hi, lo, n, quad.Legendre{}, 0)
	}

	return quad.Fixed(f, lo, hi, n, quad.Legendre{}, 0)
}

// validScale reports whether a is a usable scale factor.
func validScale(a float64) bool {
	return a > 0 && !math.IsInf(a, 0) && !math.IsNaN(a)
}
