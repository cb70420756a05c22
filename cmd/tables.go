package cmd

import (
	"github.com/luminabrain/lb/internal/adapters/render/dashboard"
	"github.com/luminabrain/lb/internal/application"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show a synthetic team load snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := application.NewGenerator(app.random).TeamSnapshot()
			if asJSON {
				return writeJSON(cmd, rows)
			}
			return writeDashboard(cmd, app, dashboard.Dashboard{Team: rows})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newMapCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Show a synthetic battlefield load map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := application.NewGenerator(app.random).BattlefieldMap()
			if asJSON {
				return writeJSON(cmd, rows)
			}
			return writeDashboard(cmd, app, dashboard.Dashboard{Zones: rows})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
