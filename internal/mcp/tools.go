package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/swayws/swayws/internal/state"
	"github.com/swayws/swayws/internal/sway"
)

// WorkspaceInput addresses a workspace for focus and move tools. At least
// one of number and name must be set; number 0 counts as unset.
type WorkspaceInput struct {
	Number             int32  `json:"number,omitempty"`
	Name               string `json:"name,omitempty"`
	NoAutoBackAndForth bool   `json:"no_auto_back_and_forth,omitempty"`
}

func (in WorkspaceInput) target() (sway.Target, error) {
	switch {
	case in.Number > 0 && in.Name != "":
		return sway.FullTarget(in.Number, in.Name), nil
	case in.Number > 0:
		return sway.NumberTarget(in.Number), nil
	case in.Name != "":
		return sway.NameTarget(in.Name), nil
	default:
		return sway.Target{}, fmt.Errorf("either number or name must be given")
	}
}

type ActionOutput struct {
	Done bool `json:"done"`
}

func (s *Server) handleFocusWorkspace(_ context.Context, _ *mcpsdk.CallToolRequest, args WorkspaceInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	target, err := args.target()
	if err != nil {
		return nil, ActionOutput{}, err
	}
	if err := s.reconciler().Focus(target, args.NoAutoBackAndForth); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{Done: true}, nil
}

func (s *Server) handleMoveToWorkspace(_ context.Context, _ *mcpsdk.CallToolRequest, args WorkspaceInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	target, err := args.target()
	if err != nil {
		return nil, ActionOutput{}, err
	}
	if err := s.reconciler().Move(target, args.NoAutoBackAndForth); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{Done: true}, nil
}

type SetMappingInput struct {
	Assignments []string `json:"assignments"`
}

type SetMappingOutput struct {
	Mapping map[string][]int32 `json:"mapping"`
}

func (s *Server) handleSetMapping(_ context.Context, _ *mcpsdk.CallToolRequest, args SetMappingInput) (*mcpsdk.CallToolResult, SetMappingOutput, error) {
	if len(args.Assignments) == 0 {
		return nil, SetMappingOutput{}, fmt.Errorf("at least one assignment is required")
	}
	assignments, err := state.ParseAssignments(args.Assignments)
	if err != nil {
		return nil, SetMappingOutput{}, err
	}
	mapping, err := s.reconciler().Map(assignments)
	if err != nil {
		return nil, SetMappingOutput{}, err
	}
	return nil, SetMappingOutput{Mapping: mapping}, nil
}

type ApplyMappingInput struct{}

func (s *Server) handleApplyMapping(_ context.Context, _ *mcpsdk.CallToolRequest, _ ApplyMappingInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	mapping, err := s.store.LoadMapping()
	if err != nil {
		return nil, ActionOutput{}, err
	}
	if len(mapping) == 0 {
		return nil, ActionOutput{}, fmt.Errorf("no mapping declared; call set_mapping first")
	}
	if err := s.reconciler().Apply(mapping); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{Done: true}, nil
}

type ListWorkspacesInput struct{}

type ListWorkspacesOutput struct {
	Workspaces []sway.Workspace `json:"workspaces"`
}

func (s *Server) handleListWorkspaces(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWorkspacesInput) (*mcpsdk.CallToolResult, ListWorkspacesOutput, error) {
	workspaces, err := s.ipc.GetWorkspaces()
	if err != nil {
		return nil, ListWorkspacesOutput{}, err
	}
	return nil, ListWorkspacesOutput{Workspaces: workspaces}, nil
}

type ListOutputsInput struct{}

type OutputInfo struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Active     bool   `json:"active"`
	Focused    bool   `json:"focused"`
}

type ListOutputsOutput struct {
	Outputs []OutputInfo `json:"outputs"`
}

func (s *Server) handleListOutputs(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListOutputsInput) (*mcpsdk.CallToolResult, ListOutputsOutput, error) {
	outputs, err := s.ipc.GetOutputs()
	if err != nil {
		return nil, ListOutputsOutput{}, err
	}
	infos := make([]OutputInfo, 0, len(outputs))
	for _, output := range outputs {
		infos = append(infos, OutputInfo{
			Name:       output.Name,
			Identifier: output.Identifier(),
			Active:     output.Active,
			Focused:    output.Focused,
		})
	}
	return nil, ListOutputsOutput{Outputs: infos}, nil
}
