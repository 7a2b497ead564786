// SPDX-License-Identifier: MIT
// Package: lvlens/lensing
//
// errors.go — sentinel errors for lensing observables.

package lensing

import "errors"

var (
	// ErrUnsupportedSourceModel indicates an unrecognised source-redshift model.
	ErrUnsupportedSourceModel = errors.New("lensing: unsupported source-redshift model")

	// ErrNotImplemented indicates a known source-redshift model with no
	// implementation yet.
	ErrNotImplemented = errors.New("lensing: source-redshift model not implemented")

	// ErrSourceNotBehindLens indicates z_source ≤ z_cluster (domain checks only).
	ErrSourceNotBehindLens = errors.New("lensing: source redshift must exceed cluster redshift")

	// ErrStrongLensing indicates κ ≥ 1 (domain checks only).
	ErrStrongLensing = errors.New("lensing: convergence >= 1 (strong lensing regime)")

	// ErrLengthMismatch indicates a zSource slice that is neither length 1 nor
	// as long as the radii.
	ErrLengthMismatch = errors.New("lensing: zSource length does not match radii")

	// ErrEmptyInput indicates empty radii or source redshifts.
	ErrEmptyInput = errors.New("lensing: empty input")
)
