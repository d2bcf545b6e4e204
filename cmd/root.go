package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "velrestore",
	Short: "Restore deleted or overwritten files in versioned S3-compatible buckets",
	Long:  "Velrestore repairs versioned MinIO/S3/B2 buckets without moving object bytes: undelete removes delete markers, revert promotes the previous version. Dry run by default.",
}

func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
