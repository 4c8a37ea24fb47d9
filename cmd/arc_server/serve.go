package main

import (
	"fmt"
	"strconv"

	"github.com/abarros/arc-assessment/internal/config"
	"github.com/abarros/arc-assessment/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the assessment wizard endpoints and the PDF report generator.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Port = strconv.Itoa(servePort)
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
