package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func newRecordCmd(app *app) *cobra.Command {
	var count int
	var interval time.Duration
	var source string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Run scheduled cycles and print one JSON reading per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecord(cmd, app, source, count, interval)
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Stop after this many readings (0 runs until interrupted)")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Time between cycles (at least 1s)")
	addSourceFlag(cmd, &source)

	return cmd
}

func runRecord(cmd *cobra.Command, app *app, source string, count int, interval time.Duration) error {
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}
	if interval < time.Second {
		return fmt.Errorf("interval must be at least 1s, got %s", interval)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	service, err := app.newService(ctx, source, nil)
	if err != nil {
		return err
	}
	defer func() { _ = service.Close() }()

	session, err := service.NewSession(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	done := make(chan error, 1)
	finish := func(err error) {
		select {
		case done <- err:
		default:
		}
	}

	emitted := 0
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug))
	scheduler := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	_, err = scheduler.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		if count > 0 && emitted >= count {
			return
		}

		reading := service.Cycle(ctx, session)
		if err := enc.Encode(reading); err != nil {
			finish(fmt.Errorf("write reading: %w", err))
			return
		}

		emitted++
		if count > 0 && emitted >= count {
			finish(nil)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule cycles: %w", err)
	}

	scheduler.Start()
	defer func() {
		cancel()
		<-scheduler.Stop().Done()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return nil
	}
}
