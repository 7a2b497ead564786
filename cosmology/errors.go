// SPDX-License-Identifier: MIT
// Package: lvlens/cosmology
//
// errors.go — sentinel errors for the cosmology package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context (operation, parameter, value) with %w.
//   • Option constructors panic on meaningless values; distance functions
//     never panic on user input.

package cosmology

import "errors"

var (
	// ErrInvalidCosmology indicates a Cosmology record violating its invariants
	// (Ωc ≥ 0, Ωb ≥ 0, h > 0, H0 > 0, all finite).
	ErrInvalidCosmology = errors.New("cosmology: invalid cosmology")

	// ErrMissingParameter indicates that a mapping-form cosmology lacks a
	// required key.
	ErrMissingParameter = errors.New("cosmology: missing parameter")

	// ErrUnknownBackend indicates an unrecognised backend Kind.
	ErrUnknownBackend = errors.New("cosmology: unknown distance backend")

	// ErrBackendUnavailable indicates that a backend cannot serve requests
	// (e.g. a zero-value backend that was never configured).
	ErrBackendUnavailable = errors.New("cosmology: distance backend unavailable")

	// ErrNoBackend indicates that a nil backend was supplied or that no probe
	// candidate was available.
	ErrNoBackend = errors.New("cosmology: no distance backend")

	// ErrInvalidScaleFactor indicates a scale factor that is not finite and
	// strictly positive.
	ErrInvalidScaleFactor = errors.New("cosmology: scale factor must be finite and > 0")
)
