package cmd

import (
	"github.com/spf13/cobra"

	"VelRestore/internal/restore"
)

var undeleteFlags restoreFlags

func init() {
	rootCmd.AddCommand(undeleteCmd)
	registerRestoreFlags(undeleteCmd, &undeleteFlags, false)
}

var undeleteCmd = &cobra.Command{
	Use:   "undelete <bucket>",
	Short: "Restore deleted files by removing their delete markers",
	Long:  "Scan the bucket's version history for files hidden behind a delete marker and remove the markers, exposing the version beneath as current again. No object bytes are transferred. Dry run unless --execute is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runUndelete,
}

func runUndelete(cmd *cobra.Command, args []string) error {
	return runPipeline(cmd, restore.ModeUndelete, args[0], &undeleteFlags)
}
