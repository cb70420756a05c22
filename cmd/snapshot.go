package cmd

import (
	"context"

	"github.com/luminabrain/lb/internal/adapters/render/dashboard"
	"github.com/luminabrain/lb/internal/application"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *app) *cobra.Command {
	var asJSON bool
	var source string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Run one processing cycle and print the reading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd, app, source, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	addSourceFlag(cmd, &source)

	return cmd
}

func runSnapshot(cmd *cobra.Command, app *app, source string, asJSON bool) error {
	ctx := cmd.Context()

	service, err := app.newService(ctx, source, nil)
	if err != nil {
		return err
	}
	defer func() { _ = service.Close() }()

	session, err := service.NewSession(ctx)
	if err != nil {
		return err
	}

	var reading application.Reading
	cycle := func(ctx context.Context) error {
		reading = service.Cycle(ctx, session)
		return nil
	}

	if service.HasLiveSource() && !asJSON {
		progress := func() (int, int) {
			collected, window, _ := service.AcquireProgress()
			return collected, window
		}
		if err := runAcquireSpinner(ctx, cmd.ErrOrStderr(), service.LiveSourceName(), progress, cycle); err != nil {
			return err
		}
	} else if err := cycle(ctx); err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, reading)
	}

	return writeDashboard(cmd, app, dashboard.Dashboard{Reading: &reading, Recovery: session.Recovery()})
}
