package cmd

import (
	"github.com/spf13/cobra"

	"VelRestore/internal/config"
	"VelRestore/internal/format"
	s3client "VelRestore/internal/s3"
)

func init() {
	rootCmd.AddCommand(bucketsCmd)
}

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List available buckets",
	RunE:  runBuckets,
}

func runBuckets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	v, err := config.Load(false)
	if err != nil {
		return err
	}
	cfg, err := config.Unmarshal(v)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	client, err := s3client.New(ctx, s3client.Options{
		Endpoint:           cfg.S3.Endpoint,
		Region:             cfg.S3.Region,
		AccessKey:          cfg.S3.AccessKey,
		SecretKey:          cfg.S3.SecretKey,
		PathStyle:          config.S3PathStyle(cfg.S3),
		InsecureSkipVerify: cfg.S3.TLS != nil && cfg.S3.TLS.InsecureSkipVerify,
	})
	if err != nil {
		return err
	}

	buckets, err := client.ListBuckets(ctx)
	if err != nil {
		return err
	}

	cmd.Println("Available buckets:")
	for _, b := range buckets {
		if b.Created.IsZero() {
			cmd.Printf("  %s\n", b.Name)
			continue
		}
		cmd.Printf("  %s (created %s)\n", b.Name, format.Timestamp(b.Created))
	}
	return nil
}
