// SPDX-License-Identifier: MIT
package halo_test

import (
	"testing"

	"github.com/katalvlaran/lvlens/halo"
)

// BenchmarkExcessSurfaceDensity measures ΔΣ for 100 targets on a 1000-point grid.
func BenchmarkExcessSurfaceDensity(b *testing.B) {
	gridR := logRadii(1e-3, 1e4, 1000)
	gridR[0], gridR[len(gridR)-1] = 1e-3, 1e4
	gridS, err := halo.SurfaceDensityAtRadius(gridR, mass, conc, omegaM, delta)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}
	r := logRadii(1e-2, 1e2, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := halo.ExcessSurfaceDensityAtRadius(r, gridR, gridS, mass, conc, omegaM, delta); err != nil {
			b.Fatalf("ExcessSurfaceDensityAtRadius: %v", err)
		}
	}
}

// BenchmarkSurfaceDensity measures the closed-form Σ on 1000 radii.
func BenchmarkSurfaceDensity(b *testing.B) {
	r := logRadii(1e-3, 1e4, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := halo.SurfaceDensityAtRadius(r, mass, conc, omegaM, delta); err != nil {
			b.Fatalf("SurfaceDensityAtRadius: %v", err)
		}
	}
}
