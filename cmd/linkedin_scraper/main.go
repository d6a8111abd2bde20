// Package main provides the LinkedIn scraper CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linkedin_scraper",
	Short: "Scrape LinkedIn person and company pages into structured JSON",
	Long: "linkedin_scraper drives an authenticated headless browser over person " +
		"profiles and company pages and converts the rendered sections into typed " +
		"JSON records. Authentication uses the li_at session cookie.",
}

var (
	headless bool
	verbose  bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&headless, "headless", true, "Run the browser without a window")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print progress and a result summary")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
