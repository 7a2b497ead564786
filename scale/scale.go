// SPDX-License-Identifier: MIT
// Package: lvlens/scale
//
// scale.go — redshift ↔ scale-factor conversion.
//
// Contract:
//   • a = 1/(1+z) and z = 1/a − 1, evaluated with IEEE-754 semantics.
//   • No domain guards: z ≤ −1 yields a ≤ 0 or ±Inf, a = 0 yields +Inf.
//     Callers own the physical domain (z > −1, a > 0).
//   • Slice forms allocate a new result and never mutate their input.

// Package scale converts between cosmological redshift z and scale factor a.
//
// Both conversions are pure algebra and round-trip for every finite z > −1
// up to floating-point rounding:
//
//	a := scale.ScaleFromRedshift(1.0) // 0.5
//	z := scale.RedshiftFromScale(a)   // 1.0
package scale

// ScaleFromRedshift returns the scale factor a = 1/(1+z).
// Complexity: O(1).
func ScaleFromRedshift(z float64) float64 {
	return 1.0 / (1.0 + z)
}

// RedshiftFromScale returns the redshift z = 1/a − 1.
// Complexity: O(1).
func RedshiftFromScale(a float64) float64 {
	return 1.0/a - 1.0
}

// ScalesFromRedshifts applies ScaleFromRedshift elementwise.
// Complexity: O(n) time, O(n) space.
func ScalesFromRedshifts(z []float64) []float64 {
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = ScaleFromRedshift(v)
	}

	return out
}

// RedshiftsFromScales applies RedshiftFromScale elementwise.
// Complexity: O(n) time, O(n) space.
func RedshiftsFromScales(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = RedshiftFromScale(v)
	}

	return out
}
