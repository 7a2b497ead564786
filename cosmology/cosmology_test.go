// SPDX-License-Identifier: MIT
package cosmology_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlens/cosmology"
)

// referenceSource mirrors FlatLambdaCDM(H0=70, Om0=0.27, Ob0=0.045).
func referenceSource() *cosmology.FlatLambdaCDM {
	return cosmology.NewFlatLambdaCDM(70, 0.27, 0.045)
}

// TestFromSource_PreservesMatterDensity checks Ωc + Ωb == Odm0 + Ob0 == Om0.
func TestFromSource_PreservesMatterDensity(t *testing.T) {
	src := referenceSource()
	c := cosmology.FromSource(src)

	assert.InDelta(t, src.Odm0()+src.Ob0(), c.OmegaC+c.OmegaB, 1e-15)
	assert.InDelta(t, src.Om0(), c.OmegaM(), 1e-15)
	assert.Equal(t, 0.045, c.OmegaB)
	assert.Equal(t, 0.7, c.H)
	assert.Equal(t, 70.0, c.H0)
	require.NoError(t, c.Validate())
}

// TestNew_DerivesH0 checks the h → H0 relation.
func TestNew_DerivesH0(t *testing.T) {
	c := cosmology.New(0.25, 0.05, 0.67)
	assert.InDelta(t, 67.0, c.H0, 1e-12)
	assert.InDelta(t, 0.30, c.OmegaM(), 1e-15)
}

// TestValidate_Table covers every invariant of the record.
func TestValidate_Table(t *testing.T) {
	good := cosmology.New(0.25, 0.05, 0.7)
	cases := []struct {
		name  string
		tweak func(*cosmology.Cosmology)
	}{
		{"negative OmegaC", func(c *cosmology.Cosmology) { c.OmegaC = -0.1 }},
		{"NaN OmegaC", func(c *cosmology.Cosmology) { c.OmegaC = math.NaN() }},
		{"negative OmegaB", func(c *cosmology.Cosmology) { c.OmegaB = -1e-3 }},
		{"zero h", func(c *cosmology.Cosmology) { c.H = 0 }},
		{"Inf H0", func(c *cosmology.Cosmology) { c.H0 = math.Inf(1) }},
		{"zero H0", func(c *cosmology.Cosmology) { c.H0 = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := good
			tc.tweak(&c)
			assert.ErrorIs(t, c.Validate(), cosmology.ErrInvalidCosmology)
		})
	}
	assert.NoError(t, good.Validate())
}

// TestParams_RoundTrip checks the mapping form in both directions.
func TestParams_RoundTrip(t *testing.T) {
	c := cosmology.FromSource(referenceSource())
	back, err := cosmology.FromParams(c.Params())
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

// TestFromParams_DefaultsAndAliases covers optional H0 and the H_0 alias.
func TestFromParams_DefaultsAndAliases(t *testing.T) {
	c, err := cosmology.FromParams(map[string]float64{"Omega_c": 0.25, "Omega_b": 0.05, "h": 0.7})
	require.NoError(t, err)
	assert.InDelta(t, 70.0, c.H0, 1e-12)

	c, err = cosmology.FromParams(map[string]float64{"Omega_c": 0.25, "Omega_b": 0.05, "h": 0.7, "H_0": 71})
	require.NoError(t, err)
	assert.Equal(t, 71.0, c.H0)
}

// TestFromParams_Errors covers missing keys and invalid values.
func TestFromParams_Errors(t *testing.T) {
	_, err := cosmology.FromParams(map[string]float64{"Omega_c": 0.25, "h": 0.7})
	assert.ErrorIs(t, err, cosmology.ErrMissingParameter)
	assert.Contains(t, err.Error(), "Omega_b")

	_, err = cosmology.FromParams(map[string]float64{"Omega_c": 0.25, "Omega_b": 0.05, "h": -1})
	assert.ErrorIs(t, err, cosmology.ErrInvalidCosmology)
}
