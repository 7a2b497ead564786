// SPDX-License-Identifier: MIT
// Package: lvlens/lensing
//
// critical.go — critical surface density Σ_crit.

package lensing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlens/cosmology"
	"github.com/katalvlaran/lvlens/scale"
)

// CriticalSurfaceDensity returns Σ_crit in h Msun / pc² for a lens at
// zCluster and each source redshift in zSource.
//
// d_l and d_s come from the resolved backend, d_ls from
// cosmology.ComovingAngularDistanceBetween; c and G from the backend's
// constant set. Only WithBackend and WithDomainChecks affect the result.
//
// Errors: ErrEmptyInput, ErrSourceNotBehindLens (domain checks only) and the
// cosmology sentinels.
func CriticalSurfaceDensity(c cosmology.Cosmology, zCluster float64, zSource []float64, opts ...Option) ([]float64, error) {
	const op = "CriticalSurfaceDensity"
	if len(zSource) == 0 {
		return nil, fmt.Errorf("%s: zSource: %w", op, ErrEmptyInput)
	}
	o := gatherOptions(opts...)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if o.domainChecks {
		for i, zs := range zSource {
			if !(zs > zCluster) {
				return nil, fmt.Errorf("%s: zSource[%d]=%v, zCluster=%v: %w", op, i, zs, zCluster, ErrSourceNotBehindLens)
			}
		}
	}

	b, err := o.resolveBackend()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	aL := scale.ScaleFromRedshift(zCluster)
	dl, err := cosmology.ComovingAngularDistance(b, c, aL)
	if err != nil {
		return nil, fmt.Errorf("%s: lens: %w", op, err)
	}

	consts := b.Constants()
	cl := consts.SpeedOfLight()
	k := cl * cl / (4 * math.Pi * consts.Gravitational())

	out := make([]float64, len(zSource))
	for i, zs := range zSource {
		aS := scale.ScaleFromRedshift(zs)
		ds, err := cosmology.ComovingAngularDistance(b, c, aS)
		if err != nil {
			return nil, fmt.Errorf("%s: zSource[%d]: %w", op, i, err)
		}
		dls, err := cosmology.ComovingAngularDistanceBetween(c, aL, aS)
		if err != nil {
			return nil, fmt.Errorf("%s: zSource[%d]: %w", op, i, err)
		}
		out[i] = ds / (dl * dls) * k
	}

	return out, nil
}
