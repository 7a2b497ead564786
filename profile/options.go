// SPDX-License-Identifier: MIT
// Package: lvlens/profile
//
// options.go — functional options for profile evaluation.
//
// Contract:
//   • WithDelta and WithSupportGrid PANIC on meaningless values (programmer
//     error); WithParameterization accepts any tag so that unknown tags
//     surface as ErrUnsupportedParameterization at call time.
//   • Defaults are the single source of truth below.

package profile

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Parameterization names a halo profile family.
type Parameterization string

// NFW is the Navarro–Frenk–White profile.
const NFW Parameterization = "nfw"

// Defaults.
const (
	// DefaultDelta is the overdensity definition Δ.
	DefaultDelta = 200

	// DefaultParameterization is the profile family.
	DefaultParameterization = NFW

	// DefaultGridMin and DefaultGridMax bound the ΔΣ support grid in Mpc/h.
	DefaultGridMin = 1e-3
	DefaultGridMax = 1e4

	// DefaultGridPoints is the number of log-spaced support nodes.
	DefaultGridPoints = 1000
)

const (
	panicDeltaInvalid = "profile: WithDelta: Delta must be > 0"
	panicGridInvalid  = "profile: WithSupportGrid: need 0 < min < max (finite) and n >= 2"
)

// Option customises a profile evaluation.
type Option func(*Options)

// Options is the resolved evaluation configuration.
type Options struct {
	delta            int
	parameterization Parameterization
	gridMin          float64
	gridMax          float64
	gridPoints       int
}

// WithDelta sets the overdensity Δ. Panics if delta <= 0.
func WithDelta(delta int) Option {
	if delta <= 0 {
		panic(panicDeltaInvalid)
	}

	return func(o *Options) {
		o.delta = delta
	}
}

// WithParameterization selects the profile family.
func WithParameterization(p Parameterization) Option {
	return func(o *Options) {
		o.parameterization = p
	}
}

// WithSupportGrid sets the ΔΣ support grid: n log-spaced radii in [min, max]
// Mpc/h. Panics unless 0 < min < max, both finite, and n >= 2.
func WithSupportGrid(min, max float64, n int) Option {
	if !(min > 0) || !(max > min) || math.IsInf(max, 0) || n < 2 {
		panic(panicGridInvalid)
	}

	return func(o *Options) {
		o.gridMin, o.gridMax, o.gridPoints = min, max, n
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		delta:            DefaultDelta,
		parameterization: DefaultParameterization,
		gridMin:          DefaultGridMin,
		gridMax:          DefaultGridMax,
		gridPoints:       DefaultGridPoints,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// SupportGrid returns the ΔΣ support grid the options resolve to.
// The end points are exactly min and max.
func SupportGrid(opts ...Option) []float64 {
	o := gatherOptions(opts...)

	return o.supportGrid()
}

func (o Options) supportGrid() []float64 {
	grid := floats.LogSpan(make([]float64, o.gridPoints), o.gridMin, o.gridMax)
	grid[0], grid[len(grid)-1] = o.gridMin, o.gridMax

	return grid
}
