// SPDX-License-Identifier: MIT
// Package: lvlens/lensing
//
// options.go — functional options for lensing predictions.
//
// Contract:
//   • WithBackend and WithDelta PANIC on nil / non-positive values.
//   • WithSourceModel and WithParameterization accept any tag; unknown tags
//     surface as errors at call time.
//   • Without WithBackend the distance backend is resolved per call with
//     cosmology.NewBackend(cosmology.KindAuto).

package lensing

import (
	"github.com/katalvlaran/lvlens/cosmology"
	"github.com/katalvlaran/lvlens/profile"
)

// SourceModel selects how source-redshift information is consumed.
type SourceModel string

const (
	// SinglePlane places every source at one redshift per radius.
	SinglePlane SourceModel = "single_plane"

	// KnownZSource averages the lensing efficiency over known source
	// redshifts. Not implemented.
	KnownZSource SourceModel = "known_z_src"

	// ZSourceDistribution integrates the lensing efficiency over a source
	// redshift distribution. Not implemented.
	ZSourceDistribution SourceModel = "z_src_distribution"
)

// DefaultSourceModel is the source-redshift model used without WithSourceModel.
const DefaultSourceModel = SinglePlane

const (
	panicNilBackend = "lensing: WithBackend: backend must not be nil"
)

// Option customises a lensing prediction.
type Option func(*Options)

// Options is the resolved prediction configuration.
type Options struct {
	backend      cosmology.Backend
	model        SourceModel
	domainChecks bool
	profile      []profile.Option
}

// WithBackend fixes the distance backend. Panics if b is nil.
func WithBackend(b cosmology.Backend) Option {
	if b == nil {
		panic(panicNilBackend)
	}

	return func(o *Options) {
		o.backend = b
	}
}

// WithSourceModel selects the source-redshift model.
func WithSourceModel(m SourceModel) Option {
	return func(o *Options) {
		o.model = m
	}
}

// WithDomainChecks turns non-physical inputs into errors: z_source ≤
// z_cluster (ErrSourceNotBehindLens) and κ ≥ 1 (ErrStrongLensing).
func WithDomainChecks() Option {
	return func(o *Options) {
		o.domainChecks = true
	}
}

// WithDelta sets the overdensity Δ. Panics if delta <= 0.
func WithDelta(delta int) Option {
	return withProfile(profile.WithDelta(delta))
}

// WithParameterization selects the halo profile family.
func WithParameterization(p profile.Parameterization) Option {
	return withProfile(profile.WithParameterization(p))
}

// WithSupportGrid sets the ΔΣ support grid (see profile.WithSupportGrid).
func WithSupportGrid(min, max float64, n int) Option {
	return withProfile(profile.WithSupportGrid(min, max, n))
}

// WithHalo forwards the Δ and parameterization carried by h.
func WithHalo(h profile.Halo) Option {
	return withProfile(h.Options()...)
}

func withProfile(p ...profile.Option) Option {
	return func(o *Options) {
		o.profile = append(o.profile, p...)
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{model: DefaultSourceModel}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// resolveBackend returns the configured backend or probes the default ones.
func (o Options) resolveBackend() (cosmology.Backend, error) {
	if o.backend != nil {
		return o.backend, nil
	}

	return cosmology.NewBackend(cosmology.KindAuto)
}
