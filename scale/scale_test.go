// SPDX-License-Identifier: MIT
package scale_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlens/scale"
)

// TestScaleFromRedshift_KnownValues checks exact values on binary-friendly inputs.
func TestScaleFromRedshift_KnownValues(t *testing.T) {
	cases := []struct {
		z, a float64
	}{
		{0, 1},
		{1, 0.5},
		{3, 0.25},
		{-0.5, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.a, scale.ScaleFromRedshift(tc.z), "z=%v", tc.z)
		assert.Equal(t, tc.z, scale.RedshiftFromScale(tc.a), "a=%v", tc.a)
	}
}

// TestRoundTrip verifies z → a → z for a sweep of physical redshifts.
func TestRoundTrip(t *testing.T) {
	for z := -0.9; z < 20; z += 0.137 {
		got := scale.RedshiftFromScale(scale.ScaleFromRedshift(z))
		assert.InDelta(t, z, got, 1e-12*(1+math.Abs(z)), "round trip z=%v", z)
	}
}

// TestRedshiftFromScale_ZeroScale documents the unguarded a=0 behaviour.
func TestRedshiftFromScale_ZeroScale(t *testing.T) {
	assert.True(t, math.IsInf(scale.RedshiftFromScale(0), 1))
	assert.True(t, math.IsInf(scale.ScaleFromRedshift(-1), 1))
}

// TestSliceForms checks elementwise consistency with the scalar forms.
func TestSliceForms(t *testing.T) {
	z := []float64{0, 0.3, 1, 2.5}
	a := scale.ScalesFromRedshifts(z)
	assert.Len(t, a, len(z))
	for i := range z {
		assert.Equal(t, scale.ScaleFromRedshift(z[i]), a[i])
	}

	back := scale.RedshiftsFromScales(a)
	for i := range z {
		assert.Equal(t, scale.RedshiftFromScale(a[i]), back[i])
		assert.InDelta(t, z[i], back[i], 1e-12)
	}

	assert.Empty(t, scale.ScalesFromRedshifts(nil))
}
