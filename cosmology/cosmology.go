// SPDX-License-Identifier: MIT
// Package: lvlens/cosmology
//
// cosmology.go — the Cosmology record and its two adapters.

package cosmology

import (
	"fmt"
	"math"
)

// Mapping-form parameter keys.
const (
	ParamOmegaC = "Omega_c"
	ParamOmegaB = "Omega_b"
	ParamH      = "h"
	ParamH0     = "H0"

	// paramH0Legacy is accepted as an alias of ParamH0 on input.
	paramH0Legacy = "H_0"
)

// hubbleUnit is H0 / h in km s⁻¹ Mpc⁻¹.
const hubbleUnit = 100.0

// Cosmology is a flat ΛCDM background described by its cold-dark-matter and
// baryon density parameters and the Hubble constant.
//
// It is a value type: construct it once (directly, via FromSource or via
// FromParams) and pass it by value.
type Cosmology struct {
	OmegaC float64 // cold dark matter density parameter, ≥ 0
	OmegaB float64 // baryon density parameter, ≥ 0
	H      float64 // reduced Hubble constant h = H0 / 100, > 0
	H0     float64 // Hubble constant in km s⁻¹ Mpc⁻¹, > 0
}

// New returns a Cosmology with H0 derived from h.
func New(omegaC, omegaB, h float64) Cosmology {
	return Cosmology{OmegaC: omegaC, OmegaB: omegaB, H: h, H0: hubbleUnit * h}
}

// OmegaM returns the total matter density Ωm = Ωc + Ωb.
func (c Cosmology) OmegaM() float64 {
	return c.OmegaC + c.OmegaB
}

// Validate checks the record invariants.
// Returns a wrapped ErrInvalidCosmology naming the first offending field.
func (c Cosmology) Validate() error {
	switch {
	case !finite(c.OmegaC) || c.OmegaC < 0:
		return fmt.Errorf("Validate: %s=%v: %w", ParamOmegaC, c.OmegaC, ErrInvalidCosmology)
	case !finite(c.OmegaB) || c.OmegaB < 0:
		return fmt.Errorf("Validate: %s=%v: %w", ParamOmegaB, c.OmegaB, ErrInvalidCosmology)
	case !finite(c.H) || c.H <= 0:
		return fmt.Errorf("Validate: %s=%v: %w", ParamH, c.H, ErrInvalidCosmology)
	case !finite(c.H0) || c.H0 <= 0:
		return fmt.Errorf("Validate: %s=%v: %w", ParamH0, c.H0, ErrInvalidCosmology)
	}

	return nil
}

// Params returns the mapping form of c.
func (c Cosmology) Params() map[string]float64 {
	return map[string]float64{
		ParamOmegaC: c.OmegaC,
		ParamOmegaB: c.OmegaB,
		ParamH:      c.H,
		ParamH0:     c.H0,
	}
}

// FromParams builds a Cosmology from its mapping form.
//
// Omega_c, Omega_b and h are required. H0 is optional ("H_0" is accepted as
// an alias) and defaults to 100·h. The result is validated.
func FromParams(p map[string]float64) (Cosmology, error) {
	var c Cosmology
	for _, req := range []struct {
		key string
		dst *float64
	}{
		{ParamOmegaC, &c.OmegaC},
		{ParamOmegaB, &c.OmegaB},
		{ParamH, &c.H},
	} {
		v, ok := p[req.key]
		if !ok {
			return Cosmology{}, fmt.Errorf("FromParams: %q: %w", req.key, ErrMissingParameter)
		}
		*req.dst = v
	}

	c.H0 = hubbleUnit * c.H
	if v, ok := p[ParamH0]; ok {
		c.H0 = v
	} else if v, ok := p[paramH0Legacy]; ok {
		c.H0 = v
	}

	if err := c.Validate(); err != nil {
		return Cosmology{}, fmt.Errorf("FromParams: %w", err)
	}

	return c, nil
}

// Source is any external cosmology description exposing astropy-style
// attributes. *FlatLambdaCDM implements it.
type Source interface {
	Om0() float64 // total matter density today
	Ob0() float64 // baryon density today
	H() float64   // reduced Hubble constant
	H0() float64  // Hubble constant, km s⁻¹ Mpc⁻¹
}

// FromSource maps an external cosmology into a Cosmology.
//
// Om0 is total matter, so the cold-dark-matter share is Om0 − Ob0; this keeps
// OmegaM() equal to the source's Om0.
func FromSource(s Source) Cosmology {
	return Cosmology{
		OmegaC: s.Om0() - s.Ob0(),
		OmegaB: s.Ob0(),
		H:      s.H(),
		H0:     s.H0(),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
