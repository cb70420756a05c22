package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lb",
		Short:         "LUMINABRAIN: brain-state readings from EEG band powers",
		Long:          "lb turns EEG band powers, from a live websocket stream or a synthetic generator, into stress, focus, fatigue and load scores with energy proxies, advisories, trend risk and baseline deltas.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSnapshotCmd(app),
		newWatchCmd(app),
		newRecordCmd(app),
		newAnalyzeCmd(app),
		newSimulateCmd(app),
		newDecodeCmd(app),
		newTeamCmd(app),
		newMapCmd(app),
		newBaselineCmd(app),
	)

	return rootCmd
}
