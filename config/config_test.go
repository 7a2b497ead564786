// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlens/config"
	"github.com/katalvlaran/lvlens/cosmology"
	"github.com/katalvlaran/lvlens/lensing"
	"github.com/katalvlaran/lvlens/profile"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
cosmology:
  h0: 67.7
  omega_m: 0.31
  omega_b: 0.049
halo:
  mass: 5e14
  concentration: 5
  delta: 500
redshift:
  cluster: 0.3
  source: [1.0]
radii:
  min: 0.1
  max: 10
  points: 20
backend:
  kind: flatlcdm
logging:
  level: debug
  format: json
domain_checks: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 67.7, cfg.Cosmology.H0)
	assert.Equal(t, 5e14, cfg.Halo.Mass)
	assert.Equal(t, 500, cfg.Halo.Delta)
	assert.Equal(t, []float64{1.0}, cfg.Redshift.Source)
	assert.Equal(t, "flatlcdm", cfg.Backend.Kind)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.DomainChecks)

	// untouched sections keep defaults
	assert.Equal(t, "nfw", cfg.Halo.Parameterization)
	assert.Equal(t, "single_plane", cfg.Redshift.Model)
	assert.Equal(t, profile.DefaultGridPoints, cfg.Radii.Support.Points)
	assert.Equal(t, cosmology.DefaultQuadraturePoints, cfg.Backend.QuadraturePoints)

	r := cfg.RadiiSample()
	require.Len(t, r, 20)
	assert.Equal(t, 0.1, r[0])
	assert.Equal(t, 10.0, r[19])

	c := cfg.CosmologyRecord()
	assert.InDelta(t, 0.31, c.OmegaM(), 1e-12)
	assert.InDelta(t, 0.677, c.H, 1e-12)
	assert.NoError(t, c.Validate())
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	c := cfg.CosmologyRecord()
	assert.InDelta(t, 0.225, c.OmegaC, 1e-12)
	assert.InDelta(t, 0.045, c.OmegaB, 1e-12)
	assert.InDelta(t, 0.7, c.H, 1e-12)
	assert.Equal(t, 70.0, c.H0)

	h := cfg.HaloDescriptor()
	assert.Equal(t, profile.Halo{Mass: 1e15, Concentration: 4, Delta: 200, Parameterization: profile.NFW}, h)
	assert.Equal(t, 1.0, cfg.Redshift.Cluster)
	assert.Equal(t, []float64{2.0}, cfg.Redshift.Source)
	assert.Len(t, cfg.RadiiSample(), 100)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.DomainChecks)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
halo:
  mass: ${LVLENS_TEST_MASS}
backend:
  kind: comoving
`)
	t.Setenv("LVLENS_TEST_MASS", "2e14")
	t.Setenv("LVLENS_HALO_CONCENTRATION", "6.5")
	t.Setenv("LVLENS_REDSHIFT_SOURCE", "1.5, 2.5")
	t.Setenv("LVLENS_BACKEND", "flatlcdm")
	t.Setenv("LVLENS_DOMAIN_CHECKS", "yes")

	cfg, err := config.Load(path)
	// two source redshifts against 100 radii
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Nil(t, cfg)

	t.Setenv("LVLENS_REDSHIFT_SOURCE", "1.5")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2e14, cfg.Halo.Mass)
	assert.Equal(t, 6.5, cfg.Halo.Concentration)
	assert.Equal(t, []float64{1.5}, cfg.Redshift.Source)
	assert.Equal(t, "flatlcdm", cfg.Backend.Kind)
	assert.True(t, cfg.DomainChecks)

	t.Setenv("LVLENS_HALO_DELTA", "two hundred")
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("LVLENS_LOG_LEVEL", "warn")
	cfg, err := config.LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 1e15, cfg.Halo.Mass)

	_, err = config.LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_ParseError(t *testing.T) {
	_, err := config.Load(writeConfig(t, "halo: [not, a, map"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate func(*config.Config)
		field  string
	}{
		"h0":           {func(c *config.Config) { c.Cosmology.H0 = -1 }, "cosmology.h0"},
		"omega_b>m":    {func(c *config.Config) { c.Cosmology.OmegaB = 0.5 }, "omega_b"},
		"mass":         {func(c *config.Config) { c.Halo.Mass = -1 }, "halo.mass"},
		"delta":        {func(c *config.Config) { c.Halo.Delta = -200 }, "halo.delta"},
		"cluster":      {func(c *config.Config) { c.Redshift.Cluster = -0.1 }, "redshift.cluster"},
		"radii":        {func(c *config.Config) { c.Radii.Max = 0.001 }, "radii needs"},
		"support":      {func(c *config.Config) { c.Radii.Support.Points = 1 }, "radii.support"},
		"backend":      {func(c *config.Config) { c.Backend.Kind = "ccl" }, "backend.kind"},
		"quadrature":   {func(c *config.Config) { c.Backend.QuadraturePoints = 1 }, "quadrature_points"},
		"log level":    {func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		"log format":   {func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		"source count": {func(c *config.Config) { c.Redshift.Source = []float64{1, 2} }, "redshift.source"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestParseFloatList(t *testing.T) {
	got, err := config.ParseFloatList(" 1.5,2 ,, 3e0")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, 3}, got)

	_, err = config.ParseFloatList("1,x")
	assert.Error(t, err)
}

func TestLensingOptions_Drive(t *testing.T) {
	cfg := config.Default()
	cfg.DomainChecks = true
	b, err := cfg.DistanceBackend()
	require.NoError(t, err)
	assert.Equal(t, string(cosmology.KindComoving), b.Name())

	c, r := cfg.CosmologyRecord(), cfg.RadiiSample()
	kappa, err := lensing.Convergence(r, cfg.Halo.Mass, cfg.Halo.Concentration, cfg.Redshift.Cluster, cfg.Redshift.Source, c, cfg.LensingOptions(b)...)
	require.NoError(t, err)
	assert.Len(t, kappa, len(r))

	cfg.Redshift.Source = []float64{0.5}
	_, err = lensing.Convergence(r, cfg.Halo.Mass, cfg.Halo.Concentration, cfg.Redshift.Cluster, cfg.Redshift.Source, c, cfg.LensingOptions(b)...)
	assert.ErrorIs(t, err, lensing.ErrSourceNotBehindLens)
}
