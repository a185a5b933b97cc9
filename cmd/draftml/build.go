package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftml-dev/draftml/internal/config"
	"github.com/draftml-dev/draftml/pkg/site"
)

func buildCmd() *cobra.Command {
	var (
		output string
		minify bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render pages to the output directory",
		Long: `Render the starter pages into static HTML files.

Examples:
  draftml build
  draftml build --output dist --minify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, output, minify)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from draftml.json)")
	cmd.Flags().BoolVar(&minify, "minify", false, "Minify output")

	return cmd
}

func runBuild(cmd *cobra.Command, output string, minify bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}
	if cmd.Flags().Changed("minify") {
		cfg.Build.Minify = minify
	}

	builder := site.NewBuilder(cfg)
	result, err := builder.Build(starterPages(cfg)...)
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		fmt.Printf("  wrote %s/%s\n", cfg.Output, f)
	}
	fmt.Printf("  %d files, %d bytes\n", len(result.Files), result.Bytes)
	return nil
}
