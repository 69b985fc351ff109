package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swayws/swayws/internal/state"
)

var applyCmd = &cobra.Command{
	Use:   "apply [OUTPUT:SPEC...]",
	Short: "Move existing workspaces onto their mapped outputs",
	Long: `Reassign every existing workspace to the output claiming its number.
Mapped outputs that would be left without a workspace get their lowest
declared workspace, and the originally focused workspace is focused
again at the end. With OUTPUT:SPEC arguments the mapping is declared
first, as with 'map'; otherwise the stored mapping (or the config file's
assignments) is used.`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	r := a.reconciler()

	var mapping state.Mapping
	tokens := args
	if len(tokens) == 0 {
		mapping, err = a.store.LoadMapping()
		if err != nil {
			return err
		}
		if len(mapping) == 0 {
			tokens = a.cfg.Assignments
		}
	}
	if len(tokens) > 0 {
		assignments, err := state.ParseAssignments(tokens)
		if err != nil {
			return err
		}
		if mapping, err = r.Map(assignments); err != nil {
			return err
		}
	}
	if len(mapping) == 0 {
		return fmt.Errorf("no mapping declared; run 'swayws map' first")
	}

	return r.Apply(mapping)
}
