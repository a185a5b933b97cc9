package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/draftml-dev/draftml/internal/config"
	"github.com/draftml-dev/draftml/internal/errors"
	"github.com/draftml-dev/draftml/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		region string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the output directory to S3",
		Long: `Upload the built output directory to an S3 bucket.

Credentials are read from the standard AWS environment variables.

Examples:
  draftml publish
  draftml publish --bucket my-site --region us-east-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(bucket, region, prefix)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from draftml.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from draftml.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from draftml.json)")

	return cmd
}

func runPublish(bucket, region, prefix string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if region != "" {
		cfg.Publish.Region = region
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}

	if cfg.Publish.Bucket == "" {
		return errors.New("P003", errors.CategoryPublish,
			"no publish bucket configured").
			WithSuggestion("set publish.bucket in draftml.json or pass --bucket")
	}
	if cfg.Publish.Region == "" {
		return errors.New("P004", errors.CategoryPublish,
			"no publish region configured").
			WithSuggestion("set publish.region in draftml.json or pass --region")
	}

	client := publish.NewClient(cfg.Publish.Region)
	p := publish.New(client, cfg.Publish.Bucket, cfg.Publish.Prefix)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	n, err := p.Publish(ctx, cfg.Output)
	if err != nil {
		return err
	}
	fmt.Printf("  uploaded %d objects to s3://%s/%s\n", n, cfg.Publish.Bucket, cfg.Publish.Prefix)
	return nil
}
