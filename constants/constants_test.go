// SPDX-License-Identifier: MIT
package constants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlens/constants"
)

// TestSets_Agree verifies both sources give the same physics within their spread.
func TestSets_Agree(t *testing.T) {
	a, b := constants.CODATA2014, constants.CODATA2018

	assert.InEpsilon(t, a.SpeedOfLight(), b.SpeedOfLight(), 1e-4)
	assert.InEpsilon(t, a.Gravitational(), b.Gravitational(), 1e-3)
}

// TestSpeedOfLight_Units checks c in pc/s against its textbook value.
func TestSpeedOfLight_Units(t *testing.T) {
	// c ≈ 9.7156e-9 pc/s
	assert.InEpsilon(t, 9.7156e-9, constants.CODATA2018.SpeedOfLight(), 1e-4)
	assert.Equal(t, 299792.458, constants.CODATA2018.SpeedOfLightKmPerS())
}

// TestGravitational_Units checks G in pc³ Msun⁻¹ s⁻² against its textbook value.
func TestGravitational_Units(t *testing.T) {
	// G ≈ 4.5171e-30 pc³ Msun⁻¹ s⁻²
	assert.InEpsilon(t, 4.5171e-30, constants.CODATA2018.Gravitational(), 1e-3)
}
