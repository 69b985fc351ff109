package sway

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Protocol-shape errors: the tree did not contain what a preceding command
// should have left behind, which signals a race with the compositor or a
// behavior change.
var (
	ErrMarkNotFound   = errors.New("previously set mark was not found")
	ErrUnexpectedTree = errors.New("tree does not have the expected shape")
)

// IPC is the request surface of the compositor connection. *Conn implements
// it; tests substitute in-memory fakes.
type IPC interface {
	GetWorkspaces() ([]Workspace, error)
	GetOutputs() ([]Output, error)
	GetTree() (*Node, error)
	RunCommand(payload string) ([]CommandResult, error)
}

// Client issues typed sway commands over an IPC connection. In dry-run mode
// commands are echoed instead of executed while queries still go through,
// so a dry run shows exactly what a live run would do.
type Client struct {
	ipc    IPC
	dryRun bool
	echo   io.Writer
	color  bool
}

func NewClient(ipc IPC) *Client {
	return &Client{ipc: ipc}
}

// SetDryRun switches the client to dry-run mode, echoing commands to w.
// Echoes are colored when w is a terminal.
func (c *Client) SetDryRun(w io.Writer) {
	c.dryRun = true
	c.echo = w
	if f, ok := w.(*os.File); ok {
		c.color = term.IsTerminal(int(f.Fd()))
	}
}

// DryRun reports whether the client echoes commands instead of running them.
func (c *Client) DryRun() bool {
	return c.dryRun
}

// Run submits a command string. Any failed statement in the reply is an
// error.
func (c *Client) Run(payload string) error {
	if c.dryRun {
		if c.color {
			fmt.Fprintf(c.echo, "sway: \x1b[1;34m%s\x1b[0m\n", payload)
		} else {
			fmt.Fprintf(c.echo, "sway: %s\n", payload)
		}
		return nil
	}
	results, err := c.ipc.RunCommand(payload)
	if err != nil {
		return err
	}
	for _, result := range results {
		if !result.Success {
			return fmt.Errorf("command %q failed: %s", payload, result.Error)
		}
	}
	return nil
}

// FocusWorkspace focuses the targeted workspace, creating it if necessary.
func (c *Client) FocusWorkspace(t Target) error {
	return c.Run("workspace " + t.spec())
}

// MoveToWorkspace moves the focused container to the targeted workspace,
// creating it if necessary.
func (c *Client) MoveToWorkspace(t Target) error {
	return c.Run("move to workspace " + t.spec())
}

// FocusOutput focuses the named output.
func (c *Client) FocusOutput(name string) error {
	return c.Run("focus output " + name)
}

// MarkAdd attaches a mark to the focused container. Re-adding an existing
// mark reassigns it, so a mark names at most one container.
func (c *Client) MarkAdd(mark string) error {
	return c.Run("mark --add " + mark)
}

// Unmark removes a mark wherever it is attached.
func (c *Client) Unmark(mark string) error {
	return c.Run("unmark " + mark)
}

// SelectAndMoveToOutput selects a numbered workspace without touching the
// back-and-forth history and moves it to the given output in one command.
func (c *Client) SelectAndMoveToOutput(num int32, output string) error {
	return c.Run(fmt.Sprintf("workspace --no-auto-back-and-forth number %d, move workspace to output '%s'", num, output))
}

// RelocateWorkspace moves the numbered workspace to the given output and
// then hands focus back to the restore target, all without touching the
// back-and-forth history.
func (c *Client) RelocateWorkspace(num int32, output string, restore Target) error {
	return c.Run(fmt.Sprintf("workspace --no-auto-back-and-forth number %d, move workspace to output '%s', workspace --no-auto-back-and-forth %s", num, output, restore.spec()))
}

// RestoreFocus focuses the targeted workspace without touching the
// back-and-forth history.
func (c *Client) RestoreFocus(t Target) error {
	return c.Run("workspace --no-auto-back-and-forth " + t.spec())
}

// MarkLocation describes where a marked container ended up.
type MarkLocation struct {
	Num     int32
	Name    string
	Windows int
	Output  string
}

// WorkspaceWithMark walks the tree for the container bearing the mark and
// returns the workspace it sits on. Returns ErrMarkNotFound if no container
// carries the mark and ErrUnexpectedTree if the enclosing workspace or
// output nodes lack their identifying fields.
func (c *Client) WorkspaceWithMark(mark string) (MarkLocation, error) {
	root, err := c.ipc.GetTree()
	if err != nil {
		return MarkLocation{}, err
	}
	for _, output := range root.Nodes {
		for _, workspace := range output.Nodes {
			for _, window := range workspace.Nodes {
				if !hasMark(window, mark) {
					continue
				}
				if workspace.Num == nil || workspace.Name == nil || output.Name == nil {
					return MarkLocation{}, ErrUnexpectedTree
				}
				return MarkLocation{
					Num:     *workspace.Num,
					Name:    *workspace.Name,
					Windows: len(workspace.Nodes),
					Output:  *output.Name,
				}, nil
			}
		}
	}
	return MarkLocation{}, ErrMarkNotFound
}

func hasMark(node Node, mark string) bool {
	for _, m := range node.Marks {
		if m == mark {
			return true
		}
	}
	return false
}
