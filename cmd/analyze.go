package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/luminabrain/lb/internal/adapters/render/dashboard"
	"github.com/luminabrain/lb/internal/domain"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *app) *cobra.Command {
	var rawBands string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Run the kernel on given band powers",
		Example: `  lb analyze --bands '{"delta":1.5,"theta":5.2,"alpha":11.6,"beta":23.2,"gamma":47.1}'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bands, err := parseBands(rawBands)
			if err != nil {
				return err
			}

			service, err := app.newService(cmd.Context(), sourceSynthetic, nil)
			if err != nil {
				return err
			}
			defer func() { _ = service.Close() }()

			reading, err := service.Analyze(cmd.Context(), bands)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, reading)
			}
			return writeDashboard(cmd, app, dashboard.Dashboard{Reading: &reading})
		},
	}

	cmd.Flags().StringVar(&rawBands, "bands", "", "Band powers as a JSON object keyed by band name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("bands")

	return cmd
}

func parseBands(raw string) (domain.BandPowers, error) {
	var values map[string]float64
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return domain.BandPowers{}, fmt.Errorf("decode bands: %w", err)
	}

	bands, err := domain.BandPowersFromMap(values)
	if err != nil {
		return domain.BandPowers{}, fmt.Errorf("decode bands: %w", err)
	}

	return bands, nil
}
