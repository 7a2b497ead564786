// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlens/config"
	"github.com/katalvlaran/lvlens/cosmology"
	"github.com/katalvlaran/lvlens/lensing"
	"github.com/katalvlaran/lvlens/scale"
)

func sigmaCritCmd(a *app) *cobra.Command {
	var backend string
	var domainChecks bool

	c := &cobra.Command{
		Use:   "sigmacrit [z_source...]",
		Short: "Critical surface density for the configured lens and each source redshift",
		RunE: func(cmd *cobra.Command, args []string) error {
			zs, err := redshiftArgs(args, a.cfg.Redshift.Source)
			if err != nil {
				return err
			}
			b, err := a.backend(backend)
			if err != nil {
				return err
			}

			opts := []lensing.Option{lensing.WithBackend(b)}
			if domainChecks || a.cfg.DomainChecks {
				opts = append(opts, lensing.WithDomainChecks())
			}
			crit, err := lensing.CriticalSurfaceDensity(a.cfg.CosmologyRecord(), a.cfg.Redshift.Cluster, zs, opts...)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "z_cluster\tz_source\tsigma_crit[h Msun/pc^2]\n")
			for i, z := range zs {
				fmt.Fprintf(tw, "%g\t%g\t%s\n", a.cfg.Redshift.Cluster, z, formatValue(crit[i]))
			}

			return tw.Flush()
		},
	}

	c.Flags().StringVar(&backend, "backend", "", "distance backend: auto, comoving or flatlcdm (overrides config)")
	c.Flags().BoolVar(&domainChecks, "domain-checks", false, "fail on z_source <= z_cluster")

	return c
}

func distanceCmd(a *app) *cobra.Command {
	var backend string

	c := &cobra.Command{
		Use:   "distance [z...]",
		Short: "Angular distances (pc/h) to each redshift and from the configured lens",
		RunE: func(cmd *cobra.Command, args []string) error {
			zs, err := redshiftArgs(args, a.cfg.Redshift.Source)
			if err != nil {
				return err
			}
			b, err := a.backend(backend)
			if err != nil {
				return err
			}
			c := a.cfg.CosmologyRecord()
			aL := scale.ScaleFromRedshift(a.cfg.Redshift.Cluster)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "z\ta\td_A[pc/h]\td_A(z_cluster,z)[pc/h]\n")
			for _, z := range zs {
				az := scale.ScaleFromRedshift(z)
				d, err := cosmology.ComovingAngularDistance(b, c, az)
				if err != nil {
					return err
				}
				dls, err := cosmology.ComovingAngularDistanceBetween(c, aL, az,
					cosmology.WithQuadraturePoints(a.cfg.Backend.QuadraturePoints))
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%g\t%.6g\t%s\t%s\n", z, az, formatValue(d), formatValue(dls))
			}

			return tw.Flush()
		},
	}

	c.Flags().StringVar(&backend, "backend", "", "distance backend: auto, comoving or flatlcdm (overrides config)")

	return c
}

// redshiftArgs parses positional redshifts, falling back to def.
func redshiftArgs(args []string, def []float64) ([]float64, error) {
	if len(args) == 0 {
		return def, nil
	}
	out := make([]float64, 0, len(args))
	for _, arg := range args {
		zs, err := config.ParseFloatList(arg)
		if err != nil {
			return nil, fmt.Errorf("redshift: %w", err)
		}
		out = append(out, zs...)
	}

	return out, nil
}
