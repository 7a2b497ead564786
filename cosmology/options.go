// SPDX-License-Identifier: MIT
// Package: lvlens/cosmology
//
// options.go — functional options shared by the distance backends.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless values.
//   • Options are resolved once per constructor call via gatherOptions.

package cosmology

import "github.com/katalvlaran/lvlens/constants"

// DefaultQuadraturePoints is the Gauss–Legendre order used for distance
// integrals. The integrands are smooth on the lensing range (z ≲ 10), where
// 64 nodes reach double precision.
const DefaultQuadraturePoints = 64

const panicQuadraturePoints = "cosmology: WithQuadraturePoints: n must be >= 2"

// Option customises a backend at construction time.
type Option func(*Options)

// Options is the resolved backend configuration.
type Options struct {
	points    int
	constants *constants.Set
}

// WithQuadraturePoints sets the Gauss–Legendre order of distance integrals.
// Panics if n < 2.
func WithQuadraturePoints(n int) Option {
	if n < 2 {
		panic(panicQuadraturePoints)
	}

	return func(o *Options) {
		o.points = n
	}
}

// WithConstants overrides the constant set a backend reports. By default the
// comoving backend reports constants.CODATA2014 and the FlatLambdaCDM backend
// reports constants.CODATA2018.
func WithConstants(s constants.Set) Option {
	return func(o *Options) {
		o.constants = &s
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{points: DefaultQuadraturePoints}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// constantsOr returns the configured constant set or def.
func (o Options) constantsOr(def constants.Set) constants.Set {
	if o.constants != nil {
		return *o.constants
	}

	return def
}
