package cmd

import (
	"fmt"
	"time"

	"github.com/luminabrain/lb/internal/domain"
	"github.com/spf13/cobra"
)

type baselineView struct {
	State      domain.BrainState `json:"state"`
	CapturedAt *time.Time        `json:"captured_at,omitempty"`
	Persisted  bool              `json:"persisted"`
}

func newBaselineCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Show, capture or reset the personal baseline",
	}

	cmd.AddCommand(
		newBaselineShowCmd(app),
		newBaselineSetCmd(app),
		newBaselineResetCmd(app),
	)

	return cmd
}

func newBaselineShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the baseline new sessions start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.newService(cmd.Context(), sourceSynthetic, nil)
			if err != nil {
				return err
			}
			defer func() { _ = service.Close() }()

			baseline, persisted, err := service.Baseline(cmd.Context())
			if err != nil {
				return err
			}

			return writeBaseline(cmd, baseline, persisted, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newBaselineSetCmd(app *app) *cobra.Command {
	var source string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Run one cycle and store its state as the baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			reading := service.Cycle(ctx, session)
			baseline, err := service.SaveBaseline(ctx, session, reading.State)
			if err != nil {
				return err
			}

			return writeBaseline(cmd, baseline, true, asJSON)
		},
	}

	addSourceFlag(cmd, &source)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newBaselineResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the stored baseline and fall back to the default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.newService(cmd.Context(), sourceSynthetic, nil)
			if err != nil {
				return err
			}
			defer func() { _ = service.Close() }()

			if err := service.ResetBaseline(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "baseline reset to default")
			return err
		},
	}
}

func writeBaseline(cmd *cobra.Command, baseline domain.Baseline, persisted, asJSON bool) error {
	if asJSON {
		view := baselineView{State: baseline.State, Persisted: persisted}
		if !baseline.CapturedAt.IsZero() {
			view.CapturedAt = &baseline.CapturedAt
		}
		return writeJSON(cmd, view)
	}

	origin := "default"
	if persisted {
		origin = "captured " + baseline.CapturedAt.Format(time.RFC3339)
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(),
		"stress: %.2f\nfocus: %.2f\nfatigue: %.2f\nload: %.2f\n(%s)\n",
		baseline.State.Stress,
		baseline.State.Focus,
		baseline.State.Fatigue,
		baseline.State.Load,
		origin,
	)
	return err
}
