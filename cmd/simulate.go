package cmd

import (
	"fmt"

	"github.com/luminabrain/lb/internal/domain"
	"github.com/spf13/cobra"
)

func newSimulateCmd(_ *app) *cobra.Command {
	var stress, fatigue float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Show load, energy and advisory for a what-if stress and fatigue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario := domain.Simulate(stress, fatigue)
			if asJSON {
				return writeJSON(cmd, scenario)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"load: %.2f\nmetabolic: %.2f\nbiophoton: %.2f\npulse: %.2f bpm\nadvisory: %s\n",
				scenario.Load,
				scenario.Energy.Metabolic,
				scenario.Energy.BiophotonProxy,
				scenario.Energy.PulseEstimate,
				scenario.Advisory.Message,
			)
			return err
		},
	}

	cmd.Flags().Float64Var(&stress, "stress", 0, "Stress score")
	cmd.Flags().Float64Var(&fatigue, "fatigue", 0, "Fatigue score")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("stress")
	_ = cmd.MarkFlagRequired("fatigue")

	return cmd
}
