// Package monitor implements the long-running daemon that records which
// workspace loses focus on every workspace change, feeding the
// previous-workspace record other invocations read.
package monitor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/swayws/swayws/internal/sway"
)

// EventSource yields workspace change events. *sway.EventStream implements
// it; tests substitute scripted sources.
type EventSource interface {
	NextWorkspace() (*sway.WorkspaceEvent, error)
}

// Recorder persists the previous-workspace record. *state.Store implements
// it.
type Recorder interface {
	RecordPrevious(name string, num int32) error
}

// Daemon consumes one event subscription sequentially. There is no
// reconnect logic: a transport failure ends the process.
type Daemon struct {
	events EventSource
	store  Recorder
	logger *slog.Logger
}

func New(events EventSource, store Recorder, logger *slog.Logger) *Daemon {
	if logger == nil {
		logger = slog.Default()
	}
	return &Daemon{events: events, store: store, logger: logger}
}

// Run handles events until the context is cancelled or the event stream
// fails. Cancellation is only observed between events; the surrounding
// process exit handles the rest.
func (d *Daemon) Run(ctx context.Context) error {
	d.logger.Info("monitoring workspace changes")
	for {
		if err := ctx.Err(); err != nil {
			d.logger.Info("monitor stopped")
			return nil
		}
		event, err := d.events.NextWorkspace()
		if err != nil {
			return fmt.Errorf("event stream: %w", err)
		}
		d.handle(event)
	}
}

// handle records the workspace that lost focus. Events without an old
// workspace, or whose old workspace lacks a number or name, are ignored.
func (d *Daemon) handle(event *sway.WorkspaceEvent) {
	old := event.Old
	if old == nil || old.Num == nil || old.Name == nil {
		return
	}
	if err := d.store.RecordPrevious(*old.Name, *old.Num); err != nil {
		d.logger.Warn("failed to record previous workspace", "error", err)
		return
	}
	d.logger.Debug("recorded previous workspace", "name", *old.Name, "num", *old.Num, "change", event.Change)
}
