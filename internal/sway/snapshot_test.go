package sway

import "testing"

func testWorkspaces() []Workspace {
	return []Workspace{
		{Num: 1, Name: "1: web", Output: "eDP-1", Focused: true, Visible: true},
		{Num: 3, Name: "3: dev", Output: "HDMI-A-1", Visible: true},
		{Num: -1, Name: "scratch", Output: "eDP-1"},
	}
}

func testOutputs() []Output {
	return []Output{
		{Name: "eDP-1", Make: "Unknown", Model: "Builtin", Serial: "0x0", Active: true, Focused: true},
		{Name: "HDMI-A-1", Make: "Dell Inc.", Model: "U2720Q", Serial: "ABC123", Active: true},
	}
}

func TestSnapshot_MemoizesQueries(t *testing.T) {
	ipc := &fakeIPC{workspaces: testWorkspaces(), outputs: testOutputs()}
	snap := NewSnapshot(ipc)

	for i := 0; i < 3; i++ {
		if _, err := snap.Workspaces(); err != nil {
			t.Fatalf("Workspaces: %v", err)
		}
		if _, err := snap.Outputs(); err != nil {
			t.Fatalf("Outputs: %v", err)
		}
	}
	if ipc.workspaceCalls != 1 || ipc.outputCalls != 1 {
		t.Errorf("expected one fetch each, got workspaces=%d outputs=%d", ipc.workspaceCalls, ipc.outputCalls)
	}

	snap.Invalidate()
	if _, err := snap.Workspaces(); err != nil {
		t.Fatalf("Workspaces after invalidate: %v", err)
	}
	if ipc.workspaceCalls != 2 {
		t.Errorf("expected re-fetch after Invalidate, got %d calls", ipc.workspaceCalls)
	}
}

func TestSnapshot_WorkspaceMatching(t *testing.T) {
	snap := NewSnapshot(&fakeIPC{workspaces: testWorkspaces()})

	ws, err := snap.WorkspaceMatching(NumberTarget(3))
	if err != nil {
		t.Fatalf("WorkspaceMatching: %v", err)
	}
	if ws == nil || ws.Name != "3: dev" {
		t.Errorf("by number: got %+v", ws)
	}

	ws, err = snap.WorkspaceMatching(NameTarget("scratch"))
	if err != nil {
		t.Fatalf("WorkspaceMatching: %v", err)
	}
	if ws == nil || ws.Num != -1 {
		t.Errorf("by name: got %+v", ws)
	}

	ws, err = snap.WorkspaceMatching(NumberTarget(9))
	if err != nil {
		t.Fatalf("WorkspaceMatching: %v", err)
	}
	if ws != nil {
		t.Errorf("expected no match, got %+v", ws)
	}
}

func TestSnapshot_Focused(t *testing.T) {
	snap := NewSnapshot(&fakeIPC{workspaces: testWorkspaces(), outputs: testOutputs()})

	ws, err := snap.FocusedWorkspace()
	if err != nil {
		t.Fatalf("FocusedWorkspace: %v", err)
	}
	if ws == nil || ws.Num != 1 {
		t.Errorf("focused workspace = %+v", ws)
	}

	output, err := snap.FocusedOutput()
	if err != nil {
		t.Fatalf("FocusedOutput: %v", err)
	}
	if output == nil || output.Name != "eDP-1" {
		t.Errorf("focused output = %+v", output)
	}
}

func TestSnapshot_FocusedWorkspace_NoneIsNil(t *testing.T) {
	snap := NewSnapshot(&fakeIPC{workspaces: []Workspace{{Num: 1, Name: "1"}}})
	ws, err := snap.FocusedWorkspace()
	if err != nil {
		t.Fatalf("FocusedWorkspace: %v", err)
	}
	if ws != nil {
		t.Errorf("expected nil, got %+v", ws)
	}
}

func TestSnapshot_ResolveOutput(t *testing.T) {
	snap := NewSnapshot(&fakeIPC{outputs: testOutputs()})

	output, err := snap.ResolveOutput("HDMI-A-1")
	if err != nil {
		t.Fatalf("ResolveOutput: %v", err)
	}
	if output == nil || output.Name != "HDMI-A-1" {
		t.Errorf("by name: got %+v", output)
	}

	// The "make model serial" identifier resolves to the output name.
	output, err = snap.ResolveOutput("Dell Inc. U2720Q ABC123")
	if err != nil {
		t.Fatalf("ResolveOutput: %v", err)
	}
	if output == nil || output.Name != "HDMI-A-1" {
		t.Errorf("by identifier: got %+v", output)
	}

	output, err = snap.ResolveOutput("DP-9")
	if err != nil {
		t.Fatalf("ResolveOutput: %v", err)
	}
	if output != nil {
		t.Errorf("expected nil for unknown output, got %+v", output)
	}
}
