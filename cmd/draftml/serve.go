package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/draftml-dev/draftml/internal/config"
	"github.com/draftml-dev/draftml/pkg/site"
)

func serveCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Serve the starter pages over HTTP with live reload.

Every request renders the page tree fresh. Prometheus metrics are
exposed at /metrics and a WebSocket live-reload endpoint at /_reload.

Examples:
  draftml serve
  draftml serve --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Bind host (default from draftml.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Bind port (default from draftml.json)")

	return cmd
}

func runServe(host string, port int) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	srv := site.NewServer(cfg, starterPages(cfg)...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("  Serving on http://%s\n", cfg.Addr())
	return srv.ListenAndServe(ctx)
}
