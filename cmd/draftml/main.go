package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	draftmlerrors "github.com/draftml-dev/draftml/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "draftml",
		Short: "Build HTML documents from Go trees",
		Long: `Draftml renders fluent Go document trees into complete HTML.

The CLI drives a small site workflow around the library:

  • serve    preview pages with live reload and metrics
  • build    render pages to the output directory
  • publish  upload the output directory to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		buildCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var derr *draftmlerrors.Error
		if errors.As(err, &derr) {
			fmt.Fprint(os.Stderr, derr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}
