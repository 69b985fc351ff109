package main

import (
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move [NAME]",
	Short: "Move the focused container to a workspace",
	Long: `Move the focused container to the workspace given by --number, NAME,
or both. A workspace created by the move is relocated to the output its
number is mapped to.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().Int32("number", 0, "workspace number")
	moveCmd.Flags().Bool("no-auto-back-and-forth", false, "do nothing when the target is the focused workspace")
}

func runMove(cmd *cobra.Command, args []string) error {
	noBackAndForth, _ := cmd.Flags().GetBool("no-auto-back-and-forth")

	target, err := workspaceArgs(cmd, args)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return a.reconciler().Move(target, noBackAndForth)
}
