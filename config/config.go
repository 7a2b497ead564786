// SPDX-License-Identifier: MIT

// Package config loads lvlens run configuration from YAML and the
// environment, and turns it into library inputs.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlens/cosmology"
	"github.com/katalvlaran/lvlens/lensing"
	"github.com/katalvlaran/lvlens/profile"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration structure.
type Config struct {
	Cosmology    CosmologyConfig `yaml:"cosmology"`
	Halo         HaloConfig      `yaml:"halo"`
	Redshift     RedshiftConfig  `yaml:"redshift"`
	Radii        RadiiConfig     `yaml:"radii"`
	Backend      BackendConfig   `yaml:"backend"`
	Logging      LoggingConfig   `yaml:"logging"`
	DomainChecks bool            `yaml:"domain_checks"`
}

// CosmologyConfig describes a flat ΛCDM background.
type CosmologyConfig struct {
	H0     float64 `yaml:"h0"`      // km/s/Mpc
	OmegaM float64 `yaml:"omega_m"` // total matter
	OmegaB float64 `yaml:"omega_b"` // baryons
}

// HaloConfig describes the cluster halo.
type HaloConfig struct {
	Mass             float64 `yaml:"mass"` // Msun/h
	Concentration    float64 `yaml:"concentration"`
	Delta            int     `yaml:"delta"`
	Parameterization string  `yaml:"parameterization"` // "nfw"
}

// RedshiftConfig holds the lens and source redshifts.
type RedshiftConfig struct {
	Cluster float64   `yaml:"cluster"`
	Source  []float64 `yaml:"source"`
	Model   string    `yaml:"model"` // "single_plane", "known_z_src", "z_src_distribution"
}

// RadiiConfig sets the log-spaced projected radii (Mpc/h) and the ΔΣ
// support grid.
type RadiiConfig struct {
	Min     float64    `yaml:"min"`
	Max     float64    `yaml:"max"`
	Points  int        `yaml:"points"`
	Support GridConfig `yaml:"support"`
}

// GridConfig is a log-spaced grid.
type GridConfig struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Points int     `yaml:"points"`
}

// BackendConfig selects the distance backend.
type BackendConfig struct {
	Kind             string `yaml:"kind"` // "auto", "comoving", "flatlcdm"
	QuadraturePoints int    `yaml:"quadrature_points"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return finish(&cfg)
}

// LoadOrDefault loads path, or builds the configuration from defaults and
// LVLENS_* variables alone when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	return finish(&Config{})
}

// Default returns the built-in configuration: a flat ΛCDM background
// (H0 = 70, Ωm = 0.27, Ωb = 0.045), a 1e15 Msun/h NFW halo with c = 4 and
// Δ = 200 at z = 1, sources at z = 2, and 100 radii in [0.01, 100] Mpc/h.
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)

	return &cfg
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies LVLENS_* environment variables to the config.
// Environment variables always override file-based configuration.
func applyEnvOverrides(cfg *Config) error {
	floatsEnv := []struct {
		key string
		dst *float64
	}{
		{"LVLENS_COSMOLOGY_H0", &cfg.Cosmology.H0},
		{"LVLENS_COSMOLOGY_OMEGA_M", &cfg.Cosmology.OmegaM},
		{"LVLENS_COSMOLOGY_OMEGA_B", &cfg.Cosmology.OmegaB},
		{"LVLENS_HALO_MASS", &cfg.Halo.Mass},
		{"LVLENS_HALO_CONCENTRATION", &cfg.Halo.Concentration},
		{"LVLENS_REDSHIFT_CLUSTER", &cfg.Redshift.Cluster},
	}
	for _, e := range floatsEnv {
		if v := os.Getenv(e.key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s=%q: %w", e.key, v, err)
			}
			*e.dst = f
		}
	}

	if v := os.Getenv("LVLENS_HALO_DELTA"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LVLENS_HALO_DELTA=%q: %w", v, err)
		}
		cfg.Halo.Delta = n
	}
	if v := os.Getenv("LVLENS_HALO_PARAMETERIZATION"); v != "" {
		cfg.Halo.Parameterization = v
	}
	if v := os.Getenv("LVLENS_REDSHIFT_SOURCE"); v != "" {
		zs, err := ParseFloatList(v)
		if err != nil {
			return fmt.Errorf("LVLENS_REDSHIFT_SOURCE: %w", err)
		}
		cfg.Redshift.Source = zs
	}
	if v := os.Getenv("LVLENS_REDSHIFT_MODEL"); v != "" {
		cfg.Redshift.Model = v
	}
	if v := os.Getenv("LVLENS_BACKEND"); v != "" {
		cfg.Backend.Kind = v
	}
	if v := os.Getenv("LVLENS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LVLENS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("LVLENS_DOMAIN_CHECKS"); v != "" {
		cfg.DomainChecks = parseBool(v)
	}

	return nil
}

// ParseFloatList parses a comma-separated list of floats ("1.5, 2,3").
func ParseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", p, err)
		}
		out = append(out, f)
	}

	return out, nil
}

func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// setDefaults fills zero-valued fields.
func setDefaults(cfg *Config) {
	if cfg.Cosmology.H0 == 0 {
		cfg.Cosmology.H0 = 70
	}
	if cfg.Cosmology.OmegaM == 0 {
		cfg.Cosmology.OmegaM = 0.27
	}
	if cfg.Cosmology.OmegaB == 0 {
		cfg.Cosmology.OmegaB = 0.045
	}

	if cfg.Halo.Mass == 0 {
		cfg.Halo.Mass = 1e15
	}
	if cfg.Halo.Concentration == 0 {
		cfg.Halo.Concentration = 4
	}
	if cfg.Halo.Delta == 0 {
		cfg.Halo.Delta = profile.DefaultDelta
	}
	if cfg.Halo.Parameterization == "" {
		cfg.Halo.Parameterization = string(profile.DefaultParameterization)
	}

	if cfg.Redshift.Cluster == 0 {
		cfg.Redshift.Cluster = 1.0
	}
	if len(cfg.Redshift.Source) == 0 {
		cfg.Redshift.Source = []float64{2.0}
	}
	if cfg.Redshift.Model == "" {
		cfg.Redshift.Model = string(lensing.DefaultSourceModel)
	}

	if cfg.Radii.Min == 0 {
		cfg.Radii.Min = 0.01
	}
	if cfg.Radii.Max == 0 {
		cfg.Radii.Max = 100
	}
	if cfg.Radii.Points == 0 {
		cfg.Radii.Points = 100
	}
	if cfg.Radii.Support.Min == 0 {
		cfg.Radii.Support.Min = profile.DefaultGridMin
	}
	if cfg.Radii.Support.Max == 0 {
		cfg.Radii.Support.Max = profile.DefaultGridMax
	}
	if cfg.Radii.Support.Points == 0 {
		cfg.Radii.Support.Points = profile.DefaultGridPoints
	}

	if cfg.Backend.Kind == "" {
		cfg.Backend.Kind = string(cosmology.KindAuto)
	}
	if cfg.Backend.QuadraturePoints == 0 {
		cfg.Backend.QuadraturePoints = cosmology.DefaultQuadraturePoints
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

// Validate checks the configuration for errors. Every failure wraps
// ErrInvalidConfig and names the offending field and value.
func (cfg *Config) Validate() error {
	var errs []string

	c := cfg.Cosmology
	if !(c.H0 > 0) || math.IsInf(c.H0, 0) {
		errs = append(errs, fmt.Sprintf("cosmology.h0 must be > 0 (got %v)", c.H0))
	}
	if c.OmegaB < 0 || !(c.OmegaM >= c.OmegaB) {
		errs = append(errs, fmt.Sprintf("cosmology needs 0 <= omega_b <= omega_m (got omega_m=%v omega_b=%v)", c.OmegaM, c.OmegaB))
	}

	h := cfg.Halo
	if !(h.Mass > 0) {
		errs = append(errs, fmt.Sprintf("halo.mass must be > 0 (got %v)", h.Mass))
	}
	if !(h.Concentration > 0) {
		errs = append(errs, fmt.Sprintf("halo.concentration must be > 0 (got %v)", h.Concentration))
	}
	if h.Delta <= 0 {
		errs = append(errs, fmt.Sprintf("halo.delta must be > 0 (got %d)", h.Delta))
	}

	z := cfg.Redshift
	if z.Cluster < 0 {
		errs = append(errs, fmt.Sprintf("redshift.cluster must be >= 0 (got %v)", z.Cluster))
	}
	for i, zs := range z.Source {
		if !(zs >= 0) {
			errs = append(errs, fmt.Sprintf("redshift.source[%d] must be >= 0 (got %v)", i, zs))
		}
	}
	if n := len(z.Source); n != 1 && n != cfg.Radii.Points {
		errs = append(errs, fmt.Sprintf("redshift.source needs 1 or radii.points values (got %d)", n))
	}

	r := cfg.Radii
	if !validGrid(r.Min, r.Max, r.Points, 1) {
		errs = append(errs, fmt.Sprintf("radii needs 0 < min < max and points >= 1 (got %v, %v, %d)", r.Min, r.Max, r.Points))
	}
	if s := r.Support; !validGrid(s.Min, s.Max, s.Points, 2) {
		errs = append(errs, fmt.Sprintf("radii.support needs 0 < min < max and points >= 2 (got %v, %v, %d)", s.Min, s.Max, s.Points))
	}

	switch cosmology.Kind(cfg.Backend.Kind) {
	case cosmology.KindAuto, cosmology.KindComoving, cosmology.KindFlatLambdaCDM:
	default:
		errs = append(errs, fmt.Sprintf("backend.kind must be auto, comoving or flatlcdm (got %q)", cfg.Backend.Kind))
	}
	if cfg.Backend.QuadraturePoints < 2 {
		errs = append(errs, fmt.Sprintf("backend.quadrature_points must be >= 2 (got %d)", cfg.Backend.QuadraturePoints))
	}

	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, fmt.Sprintf("logging.level %q: %v", cfg.Logging.Level, err))
	}
	if f := cfg.Logging.Format; f != "json" && f != "console" {
		errs = append(errs, fmt.Sprintf("logging.format must be json or console (got %q)", f))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}

func validGrid(min, max float64, n, minPoints int) bool {
	return min > 0 && max > min && !math.IsInf(max, 0) && n >= minPoints
}

// CosmologyRecord builds the Cosmology record from the flat ΛCDM section.
func (cfg *Config) CosmologyRecord() cosmology.Cosmology {
	c := cfg.Cosmology
	return cosmology.FromSource(cosmology.NewFlatLambdaCDM(c.H0, c.OmegaM, c.OmegaB))
}

// RadiiSample returns the configured log-spaced projected radii.
// A single point is placed at Min.
func (cfg *Config) RadiiSample() []float64 {
	r := cfg.Radii
	if r.Points == 1 {
		return []float64{r.Min}
	}
	out := floats.LogSpan(make([]float64, r.Points), r.Min, r.Max)
	out[0], out[len(out)-1] = r.Min, r.Max

	return out
}

// HaloDescriptor returns the configured halo.
func (cfg *Config) HaloDescriptor() profile.Halo {
	h := cfg.Halo
	return profile.Halo{
		Mass:             h.Mass,
		Concentration:    h.Concentration,
		Delta:            h.Delta,
		Parameterization: profile.Parameterization(h.Parameterization),
	}
}

// DistanceBackend resolves the configured distance backend.
func (cfg *Config) DistanceBackend() (cosmology.Backend, error) {
	return cosmology.NewBackend(cosmology.Kind(cfg.Backend.Kind),
		cosmology.WithQuadraturePoints(cfg.Backend.QuadraturePoints))
}

// LensingOptions returns the lensing options for backend b.
func (cfg *Config) LensingOptions(b cosmology.Backend) []lensing.Option {
	s := cfg.Radii.Support
	opts := []lensing.Option{
		lensing.WithBackend(b),
		lensing.WithHalo(cfg.HaloDescriptor()),
		lensing.WithSourceModel(lensing.SourceModel(cfg.Redshift.Model)),
		lensing.WithSupportGrid(s.Min, s.Max, s.Points),
	}
	if cfg.DomainChecks {
		opts = append(opts, lensing.WithDomainChecks())
	}

	return opts
}
