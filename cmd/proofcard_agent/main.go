// Package main provides the entry point for the proof-card evaluation service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "proofcard_agent",
	Short: "Proof Card Evidence Evaluation Service",
	Long:  "Proof Card evaluates learning-activity evidence against fixed unlock requirements and assembles shareable proof cards, via REST API or a one-shot CLI evaluation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
