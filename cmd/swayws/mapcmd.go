package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swayws/swayws/internal/state"
)

var mapCmd = &cobra.Command{
	Use:   "map [OUTPUT:SPEC...]",
	Short: "Declare which workspace numbers belong on which outputs",
	Long: `Set the output-to-workspace mapping. OUTPUT is an output name
(e.g. VGA-1) or a 'make model serial' identifier; SPEC is a number (5),
a list (1,3,5), or an inclusive range (1-10). Giving the same output
twice replaces the earlier assignment. Assignments for outputs that are
not currently connected are skipped. Without arguments, the assignments
from the config file are used.`,
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	tokens := args
	if len(tokens) == 0 {
		tokens = a.cfg.Assignments
	}
	if len(tokens) == 0 {
		return fmt.Errorf("no assignments given and none configured")
	}

	assignments, err := state.ParseAssignments(tokens)
	if err != nil {
		return err
	}
	mapping, err := a.reconciler().Map(assignments)
	if err != nil {
		return err
	}
	for _, output := range mapping.Outputs() {
		fmt.Printf("%s: %v\n", output, mapping[output])
	}
	return nil
}
