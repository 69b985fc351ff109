// Package reconcile decides, for each focus or move request, whether sway's
// default placement would violate the declared output mapping and issues the
// minimal corrective command sequence. Decisions are made over a snapshot of
// observed state; the IPC commands are the only effectful step.
package reconcile

import (
	"errors"
	"log/slog"

	"github.com/swayws/swayws/internal/state"
	"github.com/swayws/swayws/internal/sway"
)

// State errors: these should be unreachable against a healthy compositor
// but must short-circuit cleanly instead of panicking.
var (
	ErrNoFocusedWorkspace = errors.New("no focused workspace exists")
	ErrNoFocusedOutput    = errors.New("no focused output exists")
)

// Reconciler runs the placement algorithms for one invocation. The snapshot
// memoizes compositor queries for the lifetime of the operation.
type Reconciler struct {
	client *sway.Client
	snap   *sway.Snapshot
	store  *state.Store
	logger *slog.Logger
}

func New(client *sway.Client, snap *sway.Snapshot, store *state.Store, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{client: client, snap: snap, store: store, logger: logger}
}

// workspaceTarget addresses an existing workspace the way sway knows it:
// by number when it has one, by name otherwise.
func workspaceTarget(ws sway.Workspace) sway.Target {
	if ws.Num >= 0 {
		return sway.NumberTarget(ws.Num)
	}
	return sway.NameTarget(ws.Name)
}
