// SPDX-License-Identifier: MIT
// Package: lvlens/halo
//
// errors.go — sentinel errors for the halo kernels.

package halo

import "errors"

var (
	// ErrEmptyInput indicates an empty radius slice.
	ErrEmptyInput = errors.New("halo: empty radius input")

	// ErrNegativeRadius indicates a negative or NaN radius.
	ErrNegativeRadius = errors.New("halo: radius must be >= 0")

	// ErrInvalidHalo indicates a non-physical halo description
	// (mass, concentration, Ωm or Δ not strictly positive and finite).
	ErrInvalidHalo = errors.New("halo: invalid halo parameters")

	// ErrBadGrid indicates a malformed support grid: fewer than two points,
	// mismatched lengths, non-increasing radii, or non-positive Σ values.
	ErrBadGrid = errors.New("halo: invalid support grid")

	// ErrOutsideSupport indicates a ΔΣ target radius outside the support grid.
	ErrOutsideSupport = errors.New("halo: radius outside support grid")
)
