package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"VelRestore/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.ResolveConfigPath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	cfg := &config.Config{
		S3: &config.S3Config{
			Endpoint: "https://s3.example.com",
			Region:   "us-east-1",
		},
		Restore: &config.RestoreConfig{Concurrency: 4},
	}
	if err := config.Write(cfg, path); err != nil {
		return err
	}
	cmd.Printf("Wrote starter config to %s\n", path)
	cmd.Println("Fill in s3.access_key and s3.secret_key, or export S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY.")
	return nil
}
