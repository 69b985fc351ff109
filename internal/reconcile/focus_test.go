package reconcile

import (
	"errors"
	"testing"

	"github.com/swayws/swayws/internal/state"
	"github.com/swayws/swayws/internal/sway"
)

func dualHeadIPC() *fakeIPC {
	return &fakeIPC{
		workspaces: []sway.Workspace{
			{Num: 1, Name: "1: web", Output: "eDP-1", Focused: true, Visible: true},
			{Num: 3, Name: "3: dev", Output: "HDMI-A-1", Visible: true},
		},
		outputs: []sway.Output{
			{Name: "eDP-1", Active: true, Focused: true},
			{Name: "HDMI-A-1", Active: true},
		},
	}
}

func TestFocus_ExistingWorkspace(t *testing.T) {
	ipc := dualHeadIPC()
	r, _ := newTestReconciler(t, ipc)
	if err := r.Focus(sway.NumberTarget(3), false); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	assertCommands(t, ipc, "workspace number 3")
}

func TestFocus_AlreadyFocusedNoAutoBackAndForth(t *testing.T) {
	ipc := dualHeadIPC()
	r, _ := newTestReconciler(t, ipc)
	if err := r.Focus(sway.NumberTarget(1), true); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	assertCommands(t, ipc)
}

func TestFocus_AlreadyFocusedWithoutFlagStillFocuses(t *testing.T) {
	// Without --no-auto-back-and-forth, re-focusing the focused workspace
	// is the back-and-forth toggle and must go through.
	ipc := dualHeadIPC()
	r, _ := newTestReconciler(t, ipc)
	if err := r.Focus(sway.NumberTarget(1), false); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	assertCommands(t, ipc, "workspace number 1")
}

func TestFocus_NewNamedWorkspace(t *testing.T) {
	ipc := dualHeadIPC()
	r, _ := newTestReconciler(t, ipc)
	if err := r.Focus(sway.NameTarget("scratch"), false); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	assertCommands(t, ipc, "workspace scratch")
}

func TestFocus_NewNumberedUnmapped(t *testing.T) {
	ipc := dualHeadIPC()
	r, _ := newTestReconciler(t, ipc)
	if err := r.Focus(sway.NumberTarget(4), false); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	assertCommands(t, ipc, "workspace number 4")
}

func TestFocus_NewNumberedMappedToFocusedOutput(t *testing.T) {
	ipc := dualHeadIPC()
	r, store := newTestReconciler(t, ipc)
	if err := store.SaveMapping(state.Mapping{"eDP-1": {4}}); err != nil {
		t.Fatalf("SaveMapping: %v", err)
	}
	if err := r.Focus(sway.NumberTarget(4), false); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	assertCommands(t, ipc, "workspace number 4")
}

func TestFocus_NewNumberedMappedElsewhere(t *testing.T) {
	ipc := dualHeadIPC()
	r, store := newTestReconciler(t, ipc)
	if err := store.SaveMapping(state.Mapping{"HDMI-A-1": {4}}); err != nil {
		t.Fatalf("SaveMapping: %v", err)
	}
	if err := r.Focus(sway.NumberTarget(4), false); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	// Creation is steered onto the mapped output and the original workspace
	// is revisited so back-and-forth points at it.
	assertCommands(t, ipc,
		"focus output HDMI-A-1",
		"workspace number 4",
		"workspace 1: web",
		"workspace number 4",
	)
}

func TestFocus_NoFocusedWorkspace(t *testing.T) {
	ipc := &fakeIPC{workspaces: []sway.Workspace{{Num: 1, Name: "1"}}}
	r, _ := newTestReconciler(t, ipc)
	if err := r.Focus(sway.NumberTarget(2), false); !errors.Is(err, ErrNoFocusedWorkspace) {
		t.Fatalf("expected ErrNoFocusedWorkspace, got %v", err)
	}
}

func TestFocusPrevious(t *testing.T) {
	ipc := dualHeadIPC()
	r, store := newTestReconciler(t, ipc)
	if err := store.RecordPrevious("3: dev", 3); err != nil {
		t.Fatalf("RecordPrevious: %v", err)
	}
	if err := r.FocusPrevious(false); err != nil {
		t.Fatalf("FocusPrevious: %v", err)
	}
	assertCommands(t, ipc, "workspace number 3:3: dev")
}

func TestFocusPrevious_NamedOnly(t *testing.T) {
	ipc := dualHeadIPC()
	r, store := newTestReconciler(t, ipc)
	if err := store.RecordPrevious("scratch", -1); err != nil {
		t.Fatalf("RecordPrevious: %v", err)
	}
	if err := r.FocusPrevious(false); err != nil {
		t.Fatalf("FocusPrevious: %v", err)
	}
	assertCommands(t, ipc, "workspace scratch")
}

func TestFocusPrevious_NoRecord(t *testing.T) {
	ipc := dualHeadIPC()
	r, _ := newTestReconciler(t, ipc)
	if err := r.FocusPrevious(false); !errors.Is(err, state.ErrNoPrevious) {
		t.Fatalf("expected ErrNoPrevious, got %v", err)
	}
	assertCommands(t, ipc)
}
