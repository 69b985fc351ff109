package reconcile

import (
	"github.com/swayws/swayws/internal/sway"
)

// Focus switches to the targeted workspace. If the workspace does not exist
// yet and its number is mapped to an unfocused output, creation is steered
// onto that output while the original workspace keeps its place in the
// focus history.
func (r *Reconciler) Focus(target sway.Target, noAutoBackAndForth bool) error {
	focused, err := r.snap.FocusedWorkspace()
	if err != nil {
		return err
	}
	if focused == nil {
		return ErrNoFocusedWorkspace
	}

	existing, err := r.snap.WorkspaceMatching(target)
	if err != nil {
		return err
	}
	if existing != nil {
		if noAutoBackAndForth && existing.Num == focused.Num && existing.Name == focused.Name {
			// Focusing the focused workspace would toggle back-and-forth.
			r.logger.Debug("target already focused, issuing nothing", "workspace", existing.Name)
			return nil
		}
		return r.client.FocusWorkspace(target)
	}

	num, ok := target.Number()
	if !ok {
		// Name-only workspaces have no output-mapping concept.
		return r.client.FocusWorkspace(target)
	}

	mapping, err := r.store.LoadMapping()
	if err != nil {
		return err
	}
	output := mapping.OutputFor(num)
	if output == "" {
		return r.client.FocusWorkspace(target)
	}

	focusedOutput, err := r.snap.FocusedOutput()
	if err != nil {
		return err
	}
	if focusedOutput == nil {
		return ErrNoFocusedOutput
	}
	if focusedOutput.Name == output {
		// Creation lands on the focused output, which is the mapped one.
		return r.client.FocusWorkspace(target)
	}

	// The workspace would be created on the wrong output. Focus the mapped
	// output first so creation lands there, then re-focus the original
	// workspace and the target once more so back-and-forth still points at
	// the original workspace.
	r.logger.Debug("steering workspace creation", "workspace", num, "output", output)
	if err := r.client.FocusOutput(output); err != nil {
		return err
	}
	if err := r.client.FocusWorkspace(target); err != nil {
		return err
	}
	if err := r.client.FocusWorkspace(sway.NameTarget(focused.Name)); err != nil {
		return err
	}
	return r.client.FocusWorkspace(target)
}

// FocusPrevious switches to the workspace recorded by the monitor daemon.
func (r *Reconciler) FocusPrevious(noAutoBackAndForth bool) error {
	previous, err := r.store.LoadPrevious()
	if err != nil {
		return err
	}
	target := sway.FullTarget(previous.Num, previous.Name)
	if previous.Num < 0 {
		target = sway.NameTarget(previous.Name)
	}
	return r.Focus(target, noAutoBackAndForth)
}
