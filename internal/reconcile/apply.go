package reconcile

import (
	"github.com/swayws/swayws/internal/state"
)

// Map resolves each assignment against the connected outputs and replaces
// the resolved outputs' entries in the persisted mapping. Assignments for
// outputs that are not currently connected are skipped. Returns the mapping
// as saved.
func (r *Reconciler) Map(assignments []state.Assignment) (state.Mapping, error) {
	mapping, err := r.store.LoadMapping()
	if err != nil {
		return nil, err
	}
	for _, assignment := range assignments {
		output, err := r.snap.ResolveOutput(assignment.Output)
		if err != nil {
			return nil, err
		}
		if output == nil {
			r.logger.Warn("output not connected, skipping assignment", "output", assignment.Output)
			continue
		}
		mapping[output.Name] = assignment.Workspaces
	}
	if err := r.store.SaveMapping(mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

// Apply moves every existing workspace onto the output claiming its number,
// then ensures no mapped output is left without a workspace, and finally
// restores the originally focused workspace. The order matters: corrections
// first, then filling, then focus restoration, so the restoration is not
// disturbed by the corrective selections.
func (r *Reconciler) Apply(mapping state.Mapping) error {
	workspaces, err := r.snap.Workspaces()
	if err != nil {
		return err
	}

	unfilled := make(map[string]bool, len(mapping))
	for output := range mapping {
		unfilled[output] = true
	}

	var focusedIndex = -1
	for i, ws := range workspaces {
		if ws.Focused {
			focusedIndex = i
		}
		output := mapping.OutputFor(ws.Num)
		if output == "" {
			continue
		}
		delete(unfilled, output)
		if ws.Output == output {
			continue
		}
		r.logger.Debug("moving workspace to mapped output", "workspace", ws.Num, "output", output)
		if err := r.client.SelectAndMoveToOutput(ws.Num, output); err != nil {
			return err
		}
	}

	// Mapped outputs that claim no existing workspace get their lowest
	// declared workspace created on them, so no configured output is blank.
	for _, output := range mapping.Outputs() {
		if !unfilled[output] {
			continue
		}
		nums := mapping[output]
		if len(nums) == 0 {
			continue
		}
		r.logger.Debug("filling empty output", "workspace", nums[0], "output", output)
		if err := r.client.SelectAndMoveToOutput(nums[0], output); err != nil {
			return err
		}
	}

	if focusedIndex >= 0 {
		return r.client.RestoreFocus(workspaceTarget(workspaces[focusedIndex]))
	}
	return nil
}
