// SPDX-License-Identifier: MIT
// Package: lvlens/constants
//
// constants.go — physical constants in the parsec / solar-mass unit system
// used by lensing-critical surface densities.
//
// Contract:
//   • A Set stores SI values plus the two unit factors it was published with.
//   • SpeedOfLight() is in pc/s; Gravitational() is in pc³ Msun⁻¹ s⁻².
//   • Sets are plain values; pick one per distance backend and never mutate.

// Package constants provides the speed of light and Newton's constant in
// the units lensing needs, from two published sources.
//
// CODATA2014 reproduces the cosmology-library convention (CODATA 2014 G with
// rounded metre→parsec and kilogram→solar-mass factors); CODATA2018 follows
// the IAU 2015 parsec and nominal solar mass with CODATA 2018 G. The two
// agree to about 1e-4 relative, which is the spread between the sources.
package constants

// Set is one coherent source of physical constants.
type Set struct {
	// Name identifies the source in logs and CLI output.
	Name string

	// SpeedOfLightSI is c in m/s.
	SpeedOfLightSI float64

	// GravitationalSI is G in m³ kg⁻¹ s⁻².
	GravitationalSI float64

	// ParsecsPerMetre converts metres to parsecs.
	ParsecsPerMetre float64

	// SolarMassesPerKilogram converts kilograms to solar masses.
	SolarMassesPerKilogram float64
}

// CODATA2014 is the constant set paired with the comoving-distance backend.
var CODATA2014 = Set{
	Name:                   "codata2014",
	SpeedOfLightSI:         299792458.0,
	GravitationalSI:        6.67408e-11,
	ParsecsPerMetre:        3.2408e-17,
	SolarMassesPerKilogram: 5.0279e-31,
}

// CODATA2018 is the constant set paired with the FlatLambdaCDM backend.
var CODATA2018 = Set{
	Name:                   "codata2018",
	SpeedOfLightSI:         299792458.0,
	GravitationalSI:        6.67430e-11,
	ParsecsPerMetre:        1.0 / 3.0856775814913673e16,
	SolarMassesPerKilogram: 1.0 / 1.988409870698051e30,
}

// SpeedOfLight returns c in pc/s.
func (s Set) SpeedOfLight() float64 {
	return s.SpeedOfLightSI * s.ParsecsPerMetre
}

// SpeedOfLightKmPerS returns c in km/s, the unit Hubble distances use.
func (s Set) SpeedOfLightKmPerS() float64 {
	return s.SpeedOfLightSI / 1e3
}

// Gravitational returns G in pc³ Msun⁻¹ s⁻².
//
// m³ → pc³ multiplies by ParsecsPerMetre³; kg⁻¹ → Msun⁻¹ divides by
// SolarMassesPerKilogram.
func (s Set) Gravitational() float64 {
	p := s.ParsecsPerMetre

	return s.GravitationalSI * p * p * p / s.SolarMassesPerKilogram
}
