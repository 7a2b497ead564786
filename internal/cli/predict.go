// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlens/config"
	"github.com/katalvlaran/lvlens/cosmology"
	"github.com/katalvlaran/lvlens/lensing"
	"github.com/katalvlaran/lvlens/profile"
)

// column is one predicted observable over the radii.
type column struct {
	Name   string
	Unit   string
	Values []float64
}

// prediction is the result of a predict run.
type prediction struct {
	Backend  string
	ZCluster float64
	ZSource  []float64
	Radii    []float64
	Columns  []column
}

type predictFlags struct {
	format       string
	backend      string
	zCluster     float64
	zSource      string
	domainChecks bool
}

func predictCmd(a *app) *cobra.Command {
	var f predictFlags

	c := &cobra.Command{
		Use:   "predict",
		Short: "Predict Σ, ΔΣ, γ_t, κ and g_t over the configured radii",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.apply(cmd, a.cfg); err != nil {
				return err
			}
			b, err := a.backend(f.backend)
			if err != nil {
				return err
			}

			start := time.Now()
			p, err := predict(cmd.Context(), a.cfg, b)
			if err != nil {
				return err
			}
			a.log.Info().
				Int("radii", len(p.Radii)).
				Str("backend", p.Backend).
				Dur("took", time.Since(start)).
				Msg("prediction done")

			return render(cmd.OutOrStdout(), f.format, p)
		},
	}

	c.Flags().StringVarP(&f.format, "format", "f", formatTable, "output format: table or json")
	c.Flags().StringVar(&f.backend, "backend", "", "distance backend: auto, comoving or flatlcdm (overrides config)")
	c.Flags().Float64Var(&f.zCluster, "zcluster", 0, "cluster redshift (overrides config)")
	c.Flags().StringVar(&f.zSource, "zsource", "", "comma-separated source redshifts (overrides config)")
	c.Flags().BoolVar(&f.domainChecks, "domain-checks", false, "fail on z_source <= z_cluster and kappa >= 1")

	return c
}

// apply copies explicitly set flags over cfg.
func (f *predictFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("zcluster") {
		cfg.Redshift.Cluster = f.zCluster
	}
	if flags.Changed("zsource") {
		zs, err := config.ParseFloatList(f.zSource)
		if err != nil {
			return fmt.Errorf("--zsource: %w", err)
		}
		cfg.Redshift.Source = zs
	}
	if flags.Changed("domain-checks") {
		cfg.DomainChecks = f.domainChecks
	}

	return cfg.Validate()
}

// predict evaluates the five observables concurrently.
func predict(ctx context.Context, cfg *config.Config, b cosmology.Backend) (*prediction, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c := cfg.CosmologyRecord()
	r := cfg.RadiiSample()
	h := cfg.HaloDescriptor()
	zl, zs := cfg.Redshift.Cluster, cfg.Redshift.Source
	opts := cfg.LensingOptions(b)
	popts := append(h.Options(), profile.WithSupportGrid(cfg.Radii.Support.Min, cfg.Radii.Support.Max, cfg.Radii.Support.Points))

	p := &prediction{
		Backend:  b.Name(),
		ZCluster: zl,
		ZSource:  zs,
		Radii:    r,
		Columns: []column{
			{Name: "sigma", Unit: "h Msun/pc^2"},
			{Name: "dsigma", Unit: "h Msun/pc^2"},
			{Name: "gamma_t"},
			{Name: "kappa"},
			{Name: "g_t"},
		},
	}
	jobs := []func() ([]float64, error){
		func() ([]float64, error) { return profile.SurfaceDensity(r, h.Mass, h.Concentration, c, popts...) },
		func() ([]float64, error) { return profile.ExcessSurfaceDensity(r, h.Mass, h.Concentration, c, popts...) },
		func() ([]float64, error) { return lensing.TangentialShear(r, h.Mass, h.Concentration, zl, zs, c, opts...) },
		func() ([]float64, error) { return lensing.Convergence(r, h.Mass, h.Concentration, zl, zs, c, opts...) },
		func() ([]float64, error) {
			return lensing.ReducedTangentialShear(r, h.Mass, h.Concentration, zl, zs, c, opts...)
		},
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := job()
			if err != nil {
				return fmt.Errorf("%s: %w", p.Columns[i].Name, err)
			}
			p.Columns[i].Values = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return p, nil
}
