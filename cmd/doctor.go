package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"VelRestore/internal/config"
	"VelRestore/internal/doctor"
)

var doctorBucket string

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&doctorBucket, "bucket", "", "Also check versioning capability of this bucket")
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose config, S3 connectivity, and bucket versioning",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	v, err := config.Load(true)
	if err != nil {
		cmd.Printf("Config load: ERROR: %v\n", err)
		return err
	}
	cfg, err := config.Unmarshal(v)
	if err != nil {
		cmd.Printf("Config unmarshal: ERROR: %v\n", err)
		return err
	}
	if err := config.Validate(cfg); err != nil {
		cmd.Printf("Config validate: ERROR: %v\n", err)
		return err
	}

	results := doctor.Run(ctx, cfg, doctorBucket)
	allOK := true
	for _, r := range results {
		status := "OK"
		if !r.OK {
			status = "ERROR"
			allOK = false
		}
		cmd.Printf("%-12s %s: %s\n", r.Name, status, r.Detail)
	}
	if !allOK {
		return fmt.Errorf("one or more checks failed; see output above")
	}
	return nil
}
