// Package main provides the entry point for the Arc assessment HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arc_server",
	Short: "Arc assessment HTTP API server",
	Long:  "Arc guides a self-assessment wizard (competency questionnaires, IKIGAI worksheet, 90-day plan) via REST API and renders the final report as a PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
