// SPDX-License-Identifier: MIT
// Package: lvlens/cosmology
//
// backend.go — the distance Backend interface, its two implementations and
// explicit selection (by Kind or by probing candidates).

package cosmology

import (
	"fmt"

	"github.com/katalvlaran/lvlens/constants"
	"github.com/katalvlaran/lvlens/scale"
)

// Kind names a distance backend.
type Kind string

const (
	// KindAuto probes the comoving backend first, then FlatLambdaCDM.
	KindAuto Kind = "auto"

	// KindComoving selects ComovingBackend.
	KindComoving Kind = "comoving"

	// KindFlatLambdaCDM selects FlatLambdaCDMBackend.
	KindFlatLambdaCDM Kind = "flatlcdm"
)

// Backend computes angular distances for a Cosmology and reports the
// physical constants that belong with them.
type Backend interface {
	// Name identifies the backend (its Kind).
	Name() string

	// Available returns nil when the backend can serve requests.
	Available() error

	// Constants returns the constant set paired with this backend.
	Constants() constants.Set

	// AngularDistance returns the angular distance to scale factor a in pc/h.
	AngularDistance(c Cosmology, a float64) (float64, error)
}

// ComovingBackend serves distances as χ(a)·a from a Comoving engine.
// The zero value is unavailable; use NewComovingBackend.
type ComovingBackend struct {
	engine Comoving
}

// NewComovingBackend returns a ready ComovingBackend.
func NewComovingBackend(opts ...Option) *ComovingBackend {
	return &ComovingBackend{engine: NewComoving(opts...)}
}

// Name implements Backend.
func (b *ComovingBackend) Name() string { return string(KindComoving) }

// Available implements Backend.
func (b *ComovingBackend) Available() error {
	if b == nil || b.engine.points < 2 {
		return fmt.Errorf("%s: %w", KindComoving, ErrBackendUnavailable)
	}

	return nil
}

// Constants implements Backend.
func (b *ComovingBackend) Constants() constants.Set { return b.engine.consts }

// AngularDistance implements Backend: χ(a) · a · h, Mpc → pc.
func (b *ComovingBackend) AngularDistance(c Cosmology, a float64) (float64, error) {
	if err := b.Available(); err != nil {
		return 0, err
	}
	if err := checkInputs(c, a); err != nil {
		return 0, fmt.Errorf("%s: %w", KindComoving, err)
	}

	return b.engine.ComovingAngularDistance(c, a) * a * c.H * mpcToPc, nil
}

// FlatLambdaCDMBackend serves distances as D_A(z) from a FlatLambdaCDM
// model built per call from (H0, Ωm, Ωb). The zero value is unavailable; use
// NewFlatLambdaCDMBackend.
type FlatLambdaCDMBackend struct {
	opts Options
}

// NewFlatLambdaCDMBackend returns a ready FlatLambdaCDMBackend.
func NewFlatLambdaCDMBackend(opts ...Option) *FlatLambdaCDMBackend {
	return &FlatLambdaCDMBackend{opts: gatherOptions(opts...)}
}

// Name implements Backend.
func (b *FlatLambdaCDMBackend) Name() string { return string(KindFlatLambdaCDM) }

// Available implements Backend.
func (b *FlatLambdaCDMBackend) Available() error {
	if b == nil || b.opts.points < 2 {
		return fmt.Errorf("%s: %w", KindFlatLambdaCDM, ErrBackendUnavailable)
	}

	return nil
}

// Constants implements Backend.
func (b *FlatLambdaCDMBackend) Constants() constants.Set {
	return b.opts.constantsOr(constants.CODATA2018)
}

// AngularDistance implements Backend: D_A(1/a − 1) · h, Mpc → pc.
func (b *FlatLambdaCDMBackend) AngularDistance(c Cosmology, a float64) (float64, error) {
	if err := b.Available(); err != nil {
		return 0, err
	}
	if err := checkInputs(c, a); err != nil {
		return 0, fmt.Errorf("%s: %w", KindFlatLambdaCDM, err)
	}

	return b.model(c).AngularDiameterDistance(scale.RedshiftFromScale(a)) * c.H * mpcToPc, nil
}

// model builds the FlatLambdaCDM object for c with this backend's options.
func (b *FlatLambdaCDMBackend) model(c Cosmology) *FlatLambdaCDM {
	return &FlatLambdaCDM{
		h0:     c.H0,
		om0:    c.OmegaM(),
		ob0:    c.OmegaB,
		points: b.opts.points,
		consts: b.Constants(),
	}
}

// NewBackend resolves kind into a Backend. An empty kind means KindAuto.
// Returns a wrapped ErrUnknownBackend for any other value.
func NewBackend(kind Kind, opts ...Option) (Backend, error) {
	switch kind {
	case KindAuto, "":
		return Probe(NewComovingBackend(opts...), NewFlatLambdaCDMBackend(opts...))
	case KindComoving:
		return NewComovingBackend(opts...), nil
	case KindFlatLambdaCDM:
		return NewFlatLambdaCDMBackend(opts...), nil
	}

	return nil, fmt.Errorf("NewBackend: backend %q: %w", kind, ErrUnknownBackend)
}

// Probe returns the first candidate whose Available reports nil.
// Nil candidates are skipped. Returns ErrNoBackend if none qualifies.
func Probe(candidates ...Backend) (Backend, error) {
	for _, b := range candidates {
		if b == nil {
			continue
		}
		if b.Available() == nil {
			return b, nil
		}
	}

	return nil, fmt.Errorf("Probe: %d candidate(s): %w", len(candidates), ErrNoBackend)
}

// checkInputs validates a (Cosmology, scale factor) request.
func checkInputs(c Cosmology, a float64) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !validScale(a) {
		return fmt.Errorf("a=%v: %w", a, ErrInvalidScaleFactor)
	}

	return nil
}
