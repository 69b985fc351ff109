package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus [NAME]",
	Short: "Focus a workspace, creating it on its mapped output",
	Long: `Focus a workspace given by --number, NAME, or both. If the workspace
does not exist yet and its number is mapped to an output, it is created
there instead of on the currently focused output. With --previous, focus
the workspace recorded by the monitor daemon.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().Int32("number", 0, "workspace number")
	focusCmd.Flags().Bool("no-auto-back-and-forth", false, "do not toggle back when the workspace is already focused")
	focusCmd.Flags().Bool("previous", false, "focus the previously focused workspace")
}

func runFocus(cmd *cobra.Command, args []string) error {
	noBackAndForth, _ := cmd.Flags().GetBool("no-auto-back-and-forth")
	previous, _ := cmd.Flags().GetBool("previous")

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if previous {
		if cmd.Flags().Changed("number") || len(args) > 0 {
			return fmt.Errorf("--previous cannot be combined with a workspace number or name")
		}
		return a.reconciler().FocusPrevious(noBackAndForth)
	}

	target, err := workspaceArgs(cmd, args)
	if err != nil {
		return err
	}
	return a.reconciler().Focus(target, noBackAndForth)
}
