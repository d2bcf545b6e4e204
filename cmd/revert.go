package cmd

import (
	"github.com/spf13/cobra"

	"VelRestore/internal/restore"
)

var revertFlags restoreFlags

func init() {
	rootCmd.AddCommand(revertCmd)
	registerRestoreFlags(revertCmd, &revertFlags, true)
}

var revertCmd = &cobra.Command{
	Use:   "revert <bucket>",
	Short: "Promote the previous version of files by deleting the current one (destructive)",
	Long:  "For every file with at least two versions, delete the current version so the previous one becomes current. The discarded version is gone for good, so on top of --execute this mode asks for an explicit acknowledgement (or --force). Dry run unless --execute is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRevert,
}

func runRevert(cmd *cobra.Command, args []string) error {
	return runPipeline(cmd, restore.ModeRevert, args[0], &revertFlags)
}
