package reconcile

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/swayws/swayws/internal/state"
	"github.com/swayws/swayws/internal/sway"
)

// fakeIPC serves canned query results and records every submitted command.
type fakeIPC struct {
	workspaces []sway.Workspace
	outputs    []sway.Output
	tree       *sway.Node
	commands   []string
}

func (f *fakeIPC) GetWorkspaces() ([]sway.Workspace, error) { return f.workspaces, nil }
func (f *fakeIPC) GetOutputs() ([]sway.Output, error)       { return f.outputs, nil }

func (f *fakeIPC) GetTree() (*sway.Node, error) {
	if f.tree == nil {
		return &sway.Node{}, nil
	}
	return f.tree, nil
}

func (f *fakeIPC) RunCommand(payload string) ([]sway.CommandResult, error) {
	f.commands = append(f.commands, payload)
	return []sway.CommandResult{{Success: true}}, nil
}

func newTestReconciler(t *testing.T, ipc *fakeIPC) (*Reconciler, *state.Store) {
	t.Helper()
	dir := t.TempDir()
	store := state.NewStore(filepath.Join(dir, "mapping.json"), filepath.Join(dir, "previous.json"))
	client := sway.NewClient(ipc)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(client, sway.NewSnapshot(ipc), store, logger), store
}

func assertCommands(t *testing.T, ipc *fakeIPC, want ...string) {
	t.Helper()
	if len(ipc.commands) != len(want) {
		t.Fatalf("commands = %q, want %q", ipc.commands, want)
	}
	for i := range want {
		if ipc.commands[i] != want[i] {
			t.Errorf("command %d = %q, want %q", i, ipc.commands[i], want[i])
		}
	}
}

func strPtr(s string) *string { return &s }
func numPtr(n int32) *int32   { return &n }
