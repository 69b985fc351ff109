package sway

import "fmt"

// i3-ipc message types understood by sway.
const (
	msgRunCommand    uint32 = 0
	msgGetWorkspaces uint32 = 1
	msgSubscribe     uint32 = 2
	msgGetOutputs    uint32 = 3
	msgGetTree       uint32 = 4
)

// Output is one entry of a get_outputs reply.
type Output struct {
	Name    string `json:"name"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Serial  string `json:"serial"`
	Active  bool   `json:"active"`
	Focused bool   `json:"focused"`
}

// Identifier returns the "make model serial" string sway accepts as an
// alternate way to address the output.
func (o Output) Identifier() string {
	return fmt.Sprintf("%s %s %s", o.Make, o.Model, o.Serial)
}

// Workspace is one entry of a get_workspaces reply. Num is -1 for
// workspaces that only have a name.
type Workspace struct {
	Num     int32  `json:"num"`
	Name    string `json:"name"`
	Output  string `json:"output"`
	Focused bool   `json:"focused"`
	Visible bool   `json:"visible"`
}

// Node is a get_tree node, pruned to the fields needed to locate a mark.
// Num and Name are pointers because only workspace nodes carry a number
// and some nodes have no name.
type Node struct {
	Name  *string  `json:"name"`
	Num   *int32   `json:"num"`
	Marks []string `json:"marks"`
	Nodes []Node   `json:"nodes"`
}

// CommandResult is one per-statement entry of a run_command reply.
type CommandResult struct {
	Success    bool   `json:"success"`
	ParseError bool   `json:"parse_error"`
	Error      string `json:"error"`
}

// EventWorkspace mirrors the workspace snapshots embedded in workspace
// change events. Unlike Workspace, both fields may be absent.
type EventWorkspace struct {
	Num  *int32  `json:"num"`
	Name *string `json:"name"`
}

// WorkspaceEvent is a "workspace" change notification. Change is one of
// init, focus, empty, move, rename, urgent, reload.
type WorkspaceEvent struct {
	Change string          `json:"change"`
	Old    *EventWorkspace `json:"old"`
	New    *EventWorkspace `json:"new"`
}
