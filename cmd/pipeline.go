package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"VelRestore/internal/config"
	"VelRestore/internal/format"
	"VelRestore/internal/restore"
	s3client "VelRestore/internal/s3"
	"VelRestore/internal/scan"

	"github.com/spf13/cobra"
)

type restoreFlags struct {
	path        string
	execute     bool
	verbose     bool
	assumeYes   bool
	force       bool
	concurrency int
	endpoint    string
	region      string
}

func registerRestoreFlags(c *cobra.Command, f *restoreFlags, destructive bool) {
	c.Flags().StringVar(&f.path, "path", "", "Only consider keys under this prefix (e.g. \"docs/\")")
	c.Flags().BoolVar(&f.execute, "execute", false, "Perform the restore; without this flag, performs a dry run")
	c.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Show detailed information about each file")
	c.Flags().BoolVar(&f.assumeYes, "yes", false, "Skip the confirmation prompt")
	c.Flags().IntVar(&f.concurrency, "concurrency", 0, "Parallel delete calls (defaults to restore.concurrency from config)")
	c.Flags().StringVar(&f.endpoint, "endpoint-url", "", "S3-compatible endpoint URL (e.g. for B2, MinIO)")
	c.Flags().StringVar(&f.region, "region", "", "Region override")
	if destructive {
		c.Flags().BoolVar(&f.force, "force", false, "Acknowledge irreversibility without the extra prompt")
	}
}

func runPipeline(cmd *cobra.Command, mode restore.Mode, bucket string, f *restoreFlags) error {
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

	endpoint := cfg.S3.Endpoint
	if f.endpoint != "" {
		endpoint = f.endpoint
	}
	region := cfg.S3.Region
	if f.region != "" {
		region = f.region
	}

	client, err := s3client.New(ctx, s3client.Options{
		Endpoint:           endpoint,
		Region:             region,
		AccessKey:          cfg.S3.AccessKey,
		SecretKey:          cfg.S3.SecretKey,
		PathStyle:          config.S3PathStyle(cfg.S3),
		InsecureSkipVerify: cfg.S3.TLS != nil && cfg.S3.TLS.InsecureSkipVerify,
	})
	if err != nil {
		return err
	}

	if err := client.HeadBucket(ctx, bucket); err != nil {
		return err
	}
	status, err := client.BucketVersioning(ctx, bucket)
	if err != nil {
		return err
	}
	if !status.Capable() {
		return fmt.Errorf("bucket %s does not have versioning enabled; nothing can be restored", bucket)
	}
	if status == s3client.VersioningSuspended {
		cmd.PrintErrln("Warning: bucket versioning is suspended; only existing versions are available")
	}

	prefix := config.NormalizePrefix(f.path)
	if prefix != "" {
		cmd.Printf("Using path prefix: %s\n", prefix)
	}

	cmd.Printf("Scanning version history of %s ...\n", bucket)
	scanner := scan.NewScanner(client.Versions(bucket, prefix))
	plan, err := restore.BuildPlan(ctx, scanner, mode, bucket, prefix)
	if err != nil {
		if scan.IsTransient(err) {
			return fmt.Errorf("listing interrupted, re-run to retry: %w", err)
		}
		return err
	}

	printPlan(cmd, plan, f.verbose)
	if plan.TotalCount == 0 {
		return nil
	}

	in := bufio.NewReader(cmd.InOrStdin())

	summary := restore.Summarize(plan)
	intent := restore.Intent{Execute: f.execute}
	if f.execute && summary.Destructive {
		if f.force {
			intent.AcknowledgeDestructive = true
		} else {
			cmd.Println("\nThis will PERMANENTLY delete the current version of each file above.")
			cmd.Println("The previous version becomes current; the discarded version cannot be recovered.")
			intent.AcknowledgeDestructive = confirm(cmd, in, "Acknowledge and continue? (yes/no): ")
		}
	}

	if err := restore.Authorize(summary, intent); err != nil {
		switch {
		case errors.Is(err, restore.ErrDryRun):
			cmd.Println("\nDry run: no changes made. Re-run with --execute to restore.")
			return nil
		case errors.Is(err, restore.ErrDestructiveNotAcknowledged):
			cmd.Println("Operation aborted.")
			return nil
		default:
			return err
		}
	}

	if !f.assumeYes {
		if mode == restore.ModeUndelete {
			cmd.Println("\nThis will remove delete markers to restore the most recent version of each file.")
		}
		if !confirm(cmd, in, "Continue with restoration? (yes/no): ") {
			cmd.Println("Operation aborted.")
			return nil
		}
	}

	concurrency := f.concurrency
	if concurrency < 1 {
		concurrency = config.Concurrency(cfg)
	}

	notif := NotifierFromConfig(cfg, func(msg string) { cmd.PrintErrln("Warning:", msg) })
	if notif != nil {
		_ = notif.NotifyStart(ctx, bucket, string(mode))
	}
	start := time.Now()

	report, execErr := restore.Execute(ctx, client.Deleter(bucket), plan, concurrency)
	printReport(cmd, report, f.verbose)

	if notif != nil {
		if execErr != nil {
			_ = notif.NotifyError(ctx, bucket, string(mode), execErr)
		} else if report.Failed > 0 {
			_ = notif.NotifyError(ctx, bucket, string(mode), fmt.Errorf("%d of %d actions failed", report.Failed, plan.TotalCount))
		} else {
			_ = notif.NotifySuccess(ctx, bucket, string(mode), report.Applied, plan.TotalBytes, time.Since(start))
		}
	}

	if execErr != nil {
		return fmt.Errorf("restore interrupted: %w", execErr)
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d actions failed", report.Failed, plan.TotalCount)
	}
	return nil
}

func printPlan(cmd *cobra.Command, plan *restore.Plan, verbose bool) {
	if verbose {
		for _, a := range plan.Actions {
			switch a.Kind {
			case restore.ActionRemoveMarker:
				cmd.Printf("\nWould restore: %s\n", a.Key)
			case restore.ActionRevert:
				cmd.Printf("\nWould revert: %s\n", a.Key)
				cmd.Printf("  Current version to discard: %s\n", a.TargetVersionID)
			}
			cmd.Printf("  Version to become current: %s\n", a.ExposedVersionID)
			cmd.Printf("  Size: %s\n", format.Size(a.ExposedSize))
			cmd.Printf("  Last modified: %s\n", format.Timestamp(a.ExposedModified))
		}
	}

	for _, reason := range sortedReasons(plan.Skipped) {
		cmd.Printf("Skipped %d files: %s\n", plan.Skipped[reason], reason)
	}

	if plan.TotalCount == 0 {
		cmd.Println("No files to restore.")
		return
	}
	cmd.Printf("\nFound %d files that can be restored\n", plan.TotalCount)
	cmd.Printf("Total size of files to restore: %s\n", format.Size(plan.TotalBytes))
}

func printReport(cmd *cobra.Command, report *restore.Report, verbose bool) {
	cmd.Println("\nRestore summary:")
	cmd.Printf("Successfully restored: %d files\n", report.Applied)
	if report.AlreadySatisfied > 0 {
		cmd.Printf("Already restored: %d files\n", report.AlreadySatisfied)
	}
	if report.Failed > 0 {
		cmd.Printf("Failed to restore: %d files\n", report.Failed)
		for _, r := range report.Failures {
			if verbose {
				cmd.Printf("  %s (%s): %v\n", r.Key, r.Kind, r.Err)
			} else {
				cmd.Printf("  %s (%s)\n", r.Key, r.Kind)
			}
		}
	}
}

func sortedReasons(skipped map[string]int) []string {
	reasons := make([]string, 0, len(skipped))
	for r := range skipped {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	return reasons
}

func confirm(cmd *cobra.Command, in *bufio.Reader, prompt string) bool {
	cmd.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes")
}
