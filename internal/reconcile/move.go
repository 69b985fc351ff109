package reconcile

import (
	"github.com/swayws/swayws/internal/sway"
)

// moveMark tags the container being moved so it can be found again after
// the move. A mark names at most one container and is removed once the
// container has been located.
const moveMark = "__swayws_move__"

// Move sends the focused container to the targeted workspace. When the move
// creates a brand-new, single-window workspace on an output other than the
// one its number is mapped to, the workspace is relocated and focus is
// handed back to where it was.
func (r *Reconciler) Move(target sway.Target, noAutoBackAndForth bool) error {
	focused, err := r.snap.FocusedWorkspace()
	if err != nil {
		return err
	}
	if focused == nil {
		return ErrNoFocusedWorkspace
	}

	if noAutoBackAndForth {
		existing, err := r.snap.WorkspaceMatching(target)
		if err != nil {
			return err
		}
		if existing != nil && existing.Num == focused.Num && existing.Name == focused.Name {
			r.logger.Debug("target is the focused workspace, nothing to move")
			return nil
		}
	}

	if err := r.client.MarkAdd(moveMark); err != nil {
		return err
	}
	if err := r.client.MoveToWorkspace(target); err != nil {
		return err
	}

	if r.client.DryRun() {
		// The mark was never actually set, so the tree cannot be checked.
		r.logger.Debug("dry run, skipping placement check")
		return nil
	}

	location, err := r.client.WorkspaceWithMark(moveMark)
	if err != nil {
		return err
	}
	if err := r.client.Unmark(moveMark); err != nil {
		return err
	}

	if location.Windows > 1 || location.Num < 0 {
		// Either the container joined a pre-existing workspace, which is
		// already placed, or it landed on a name-only workspace outside the
		// mapping's scope.
		return nil
	}

	mapping, err := r.store.LoadMapping()
	if err != nil {
		return err
	}
	want := mapping.OutputFor(location.Num)
	if want == "" || want == location.Output {
		return nil
	}

	// The move created the workspace on the wrong output. Select it, move
	// it over, and hand focus back, all without touching the back-and-forth
	// history.
	r.logger.Debug("relocating created workspace", "workspace", location.Num, "output", want)
	return r.client.RelocateWorkspace(location.Num, want, workspaceTarget(*focused))
}
