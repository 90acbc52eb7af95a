package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spendingspotlight/spotlight/internal/extract"
	"github.com/spendingspotlight/spotlight/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the statement analysis HTTP server",
		RunE:  runServe,
	}

	cmd.Flags().String("addr", ":5000", "listen address")
	cmd.Flags().String("upload-dir", "uploads", "scratch directory for uploaded statements")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.upload_dir", cmd.Flags().Lookup("upload-dir"))

	return cmd
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := slog.Default()

	p, oracle, err := buildPipeline(logger)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer func() { _ = oracle.Close() }()

	srv, err := server.New(server.Config{
		Addr:      viper.GetString("server.addr"),
		UploadDir: viper.GetString("server.upload_dir"),
	}, extract.NewPDFExtractor(), p, logger)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	return srv.Run()
}
