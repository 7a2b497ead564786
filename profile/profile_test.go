// SPDX-License-Identifier: MIT
package profile_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlens/cosmology"
	"github.com/katalvlaran/lvlens/halo"
	"github.com/katalvlaran/lvlens/profile"
)

const (
	clusterMass          = 1e15
	clusterConcentration = 4.0
)

// fixture holds the per-test inputs of the reference cluster.
type fixture struct {
	cosmo cosmology.Cosmology
	r     []float64
	last  []float64
}

func newFixture() fixture {
	r := floats.LogSpan(make([]float64, 100), 1e-2, 1e2)

	return fixture{
		cosmo: cosmology.FromSource(cosmology.NewFlatLambdaCDM(70, 0.27, 0.045)),
		r:     r,
		last:  []float64{r[len(r)-1]},
	}
}

type evaluator func([]float64, float64, float64, cosmology.Cosmology, ...profile.Option) ([]float64, error)

var evaluators = map[string]evaluator{
	"Density3D":            profile.Density3D,
	"SurfaceDensity":       profile.SurfaceDensity,
	"ExcessSurfaceDensity": profile.ExcessSurfaceDensity,
}

// TestEvaluators_ElementwiseAndPositive checks f(r)[-1] == f(r[-1]) and positivity.
func TestEvaluators_ElementwiseAndPositive(t *testing.T) {
	fx := newFixture()
	for name, eval := range evaluators {
		t.Run(name, func(t *testing.T) {
			all, err := eval(fx.r, clusterMass, clusterConcentration, fx.cosmo, profile.WithDelta(200), profile.WithParameterization(profile.NFW))
			require.NoError(t, err)
			one, err := eval(fx.last, clusterMass, clusterConcentration, fx.cosmo)
			require.NoError(t, err)

			require.Len(t, all, len(fx.r))
			assert.Equal(t, all[len(all)-1], one[0])
			for i, v := range all {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s[%d] not finite", name, i)
				assert.Greater(t, v, 0.0, "%s[%d]", name, i)
			}
		})
	}
}

// TestEvaluators_UseTotalMatter verifies Ωm = Ωc + Ωb reaches the kernels.
func TestEvaluators_UseTotalMatter(t *testing.T) {
	fx := newFixture()
	got, err := profile.SurfaceDensity(fx.r, clusterMass, clusterConcentration, fx.cosmo)
	require.NoError(t, err)
	want, err := halo.SurfaceDensityAtRadius(fx.r, clusterMass, clusterConcentration, 0.27, 200)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-9)

	rho, err := profile.Density3D(fx.r, clusterMass, clusterConcentration, fx.cosmo)
	require.NoError(t, err)
	wantRho, err := halo.DensityAtRadius(fx.r, clusterMass, clusterConcentration, fx.cosmo.OmegaM(), 200)
	require.NoError(t, err)
	assert.Equal(t, wantRho, rho)
}

// TestExcessSurfaceDensity_DeltaChangesProfile checks Δ is forwarded.
func TestExcessSurfaceDensity_DeltaChangesProfile(t *testing.T) {
	fx := newFixture()
	d200, err := profile.ExcessSurfaceDensity(fx.r, clusterMass, clusterConcentration, fx.cosmo)
	require.NoError(t, err)
	d500, err := profile.ExcessSurfaceDensity(fx.r, clusterMass, clusterConcentration, fx.cosmo, profile.WithDelta(500))
	require.NoError(t, err)

	// Same mass inside a smaller radius is more concentrated in the core.
	assert.Greater(t, d500[0], d200[0])
}

// TestExcessSurfaceDensity_SupportGrid covers grid tuning and its bounds.
func TestExcessSurfaceDensity_SupportGrid(t *testing.T) {
	fx := newFixture()
	coarse, err := profile.ExcessSurfaceDensity(fx.r, clusterMass, clusterConcentration, fx.cosmo, profile.WithSupportGrid(1e-3, 1e3, 400))
	require.NoError(t, err)
	fine, err := profile.ExcessSurfaceDensity(fx.r, clusterMass, clusterConcentration, fx.cosmo)
	require.NoError(t, err)
	for i := range fine {
		assert.InEpsilon(t, fine[i], coarse[i], 5e-3, "R=%v", fx.r[i])
	}

	_, err = profile.ExcessSurfaceDensity([]float64{50}, clusterMass, clusterConcentration, fx.cosmo, profile.WithSupportGrid(1e-3, 10, 100))
	assert.ErrorIs(t, err, halo.ErrOutsideSupport)
}

// TestSupportGrid_Defaults checks the default grid shape.
func TestSupportGrid_Defaults(t *testing.T) {
	grid := profile.SupportGrid()
	require.Len(t, grid, profile.DefaultGridPoints)
	assert.Equal(t, profile.DefaultGridMin, grid[0])
	assert.Equal(t, profile.DefaultGridMax, grid[len(grid)-1])
	for i := 1; i < len(grid); i++ {
		assert.Greater(t, grid[i], grid[i-1])
	}
	assert.InEpsilon(t, grid[1]/grid[0], grid[501]/grid[500], 1e-9)
}

// TestUnsupportedParameterization verifies the configuration error names the tag.
func TestUnsupportedParameterization(t *testing.T) {
	fx := newFixture()
	for name, eval := range evaluators {
		out, err := eval(fx.r, clusterMass, clusterConcentration, fx.cosmo, profile.WithParameterization("einasto"))
		assert.Nil(t, out, name)
		assert.ErrorIs(t, err, profile.ErrUnsupportedParameterization, name)
		assert.Contains(t, err.Error(), `"einasto"`, name)
		assert.Contains(t, err.Error(), name)
	}
}

// TestEvaluators_Errors covers cosmology and halo validation pass-through.
func TestEvaluators_Errors(t *testing.T) {
	fx := newFixture()
	bad := fx.cosmo
	bad.H = 0
	_, err := profile.SurfaceDensity(fx.r, clusterMass, clusterConcentration, bad)
	assert.ErrorIs(t, err, cosmology.ErrInvalidCosmology)

	_, err = profile.ExcessSurfaceDensity(fx.r, -1, clusterConcentration, fx.cosmo)
	assert.ErrorIs(t, err, halo.ErrInvalidHalo)

	_, err = profile.Density3D(nil, clusterMass, clusterConcentration, fx.cosmo)
	assert.ErrorIs(t, err, halo.ErrEmptyInput)
}

// TestOptions_Panics covers option constructor validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { profile.WithDelta(0) })
	assert.Panics(t, func() { profile.WithSupportGrid(0, 1, 10) })
	assert.Panics(t, func() { profile.WithSupportGrid(1, 1, 10) })
	assert.Panics(t, func() { profile.WithSupportGrid(1e-3, math.Inf(1), 10) })
	assert.Panics(t, func() { profile.WithSupportGrid(1e-3, 1, 1) })
	assert.NotPanics(t, func() { profile.WithParameterization("anything") })
}

// TestHalo_Options checks the descriptor forwards non-zero fields only.
func TestHalo_Options(t *testing.T) {
	fx := newFixture()
	h := profile.Halo{Mass: clusterMass, Concentration: clusterConcentration}
	assert.Empty(t, h.Options())

	h.Delta = 500
	h.Parameterization = profile.NFW
	assert.Len(t, h.Options(), 2)

	got, err := profile.SurfaceDensity(fx.r, h.Mass, h.Concentration, fx.cosmo, h.Options()...)
	require.NoError(t, err)
	want, err := profile.SurfaceDensity(fx.r, h.Mass, h.Concentration, fx.cosmo, profile.WithDelta(500))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
