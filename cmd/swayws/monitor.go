package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swayws/swayws/internal/monitor"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Record the workspace that loses focus on every change",
	Long: `Run in the background and subscribe to workspace events, recording
the workspace that loses focus to the previous-workspace file. Used by
'focus --previous'. Exits on signal or when the event stream fails.`,
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := a.conn.Subscribe("workspace")
	if err != nil {
		return err
	}

	// Closing the connection unblocks the event read when a signal arrives.
	go func() {
		<-ctx.Done()
		a.conn.Close()
	}()

	daemon := monitor.New(events, a.store, a.logger)
	if err := daemon.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
