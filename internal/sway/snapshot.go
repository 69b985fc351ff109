package sway

// Snapshot caches the outputs and workspaces of one operation. Lists are
// fetched lazily on first access and reused until Invalidate, so an
// operation that consults them repeatedly issues each query once.
type Snapshot struct {
	ipc            IPC
	workspaces     []Workspace
	haveWorkspaces bool
	outputs        []Output
	haveOutputs    bool
}

func NewSnapshot(ipc IPC) *Snapshot {
	return &Snapshot{ipc: ipc}
}

// Invalidate forces the next access to re-fetch from the compositor.
func (s *Snapshot) Invalidate() {
	s.workspaces = nil
	s.haveWorkspaces = false
	s.outputs = nil
	s.haveOutputs = false
}

// Workspaces returns the cached workspace list, fetching it if needed.
func (s *Snapshot) Workspaces() ([]Workspace, error) {
	if !s.haveWorkspaces {
		workspaces, err := s.ipc.GetWorkspaces()
		if err != nil {
			return nil, err
		}
		s.workspaces = workspaces
		s.haveWorkspaces = true
	}
	return s.workspaces, nil
}

// Outputs returns the cached output list, fetching it if needed.
func (s *Snapshot) Outputs() ([]Output, error) {
	if !s.haveOutputs {
		outputs, err := s.ipc.GetOutputs()
		if err != nil {
			return nil, err
		}
		s.outputs = outputs
		s.haveOutputs = true
	}
	return s.outputs, nil
}

// WorkspaceMatching returns the first workspace the target addresses, or
// nil when none exists.
func (s *Snapshot) WorkspaceMatching(t Target) (*Workspace, error) {
	workspaces, err := s.Workspaces()
	if err != nil {
		return nil, err
	}
	for i := range workspaces {
		if t.Matches(workspaces[i]) {
			return &workspaces[i], nil
		}
	}
	return nil, nil
}

// FocusedWorkspace returns the focused workspace, or nil when none is.
func (s *Snapshot) FocusedWorkspace() (*Workspace, error) {
	workspaces, err := s.Workspaces()
	if err != nil {
		return nil, err
	}
	for i := range workspaces {
		if workspaces[i].Focused {
			return &workspaces[i], nil
		}
	}
	return nil, nil
}

// FocusedOutput returns the focused output, or nil when none is.
func (s *Snapshot) FocusedOutput() (*Output, error) {
	outputs, err := s.Outputs()
	if err != nil {
		return nil, err
	}
	for i := range outputs {
		if outputs[i].Focused {
			return &outputs[i], nil
		}
	}
	return nil, nil
}

// ResolveOutput finds an output by name or by its "make model serial"
// identifier and returns nil when neither matches.
func (s *Snapshot) ResolveOutput(nameOrIdentifier string) (*Output, error) {
	outputs, err := s.Outputs()
	if err != nil {
		return nil, err
	}
	for i := range outputs {
		if outputs[i].Name == nameOrIdentifier || outputs[i].Identifier() == nameOrIdentifier {
			return &outputs[i], nil
		}
	}
	return nil, nil
}
