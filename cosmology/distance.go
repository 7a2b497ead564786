// SPDX-License-Identifier: MIT
// Package: lvlens/cosmology
//
// distance.go — package-level distance entry points in pc/h.

package cosmology

import (
	"fmt"

	"github.com/katalvlaran/lvlens/scale"
)

// ComovingAngularDistance returns the angular distance to scale factor a in
// pc/h using backend b.
//
// Errors: ErrNoBackend (b == nil), ErrBackendUnavailable,
// ErrInvalidCosmology, ErrInvalidScaleFactor.
func ComovingAngularDistance(b Backend, c Cosmology, a float64) (float64, error) {
	if b == nil {
		return 0, fmt.Errorf("ComovingAngularDistance: %w", ErrNoBackend)
	}
	d, err := b.AngularDistance(c, a)
	if err != nil {
		return 0, fmt.Errorf("ComovingAngularDistance: %w", err)
	}

	return d, nil
}

// ComovingAngularDistanceBetween returns the lens–source angular distance
// between scale factors a1 and a2 in pc/h.
//
// Only the FlatLambdaCDM path defines a two-point distance, so it is used
// regardless of the caller's backend. The model is built from (H0, Ωm, Ωb).
// The result is negative when a2 > a1 (source in front of lens).
func ComovingAngularDistanceBetween(c Cosmology, a1, a2 float64, opts ...Option) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("ComovingAngularDistanceBetween: %w", err)
	}
	for _, a := range []float64{a1, a2} {
		if !validScale(a) {
			return 0, fmt.Errorf("ComovingAngularDistanceBetween: a=%v: %w", a, ErrInvalidScaleFactor)
		}
	}

	f := NewFlatLambdaCDM(c.H0, c.OmegaM(), c.OmegaB, opts...)
	z1, z2 := scale.RedshiftFromScale(a1), scale.RedshiftFromScale(a2)

	return f.AngularDiameterDistanceZ1Z2(z1, z2) * c.H * mpcToPc, nil
}

// ComovingAngularDistanceToToday is ComovingAngularDistanceBetween with
// a2 = 1 (the observer).
func ComovingAngularDistanceToToday(c Cosmology, a1 float64, opts ...Option) (float64, error) {
	return ComovingAngularDistanceBetween(c, a1, 1.0, opts...)
}
