// Package main provides the resume_craft CLI for building a resume from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_craft",
	Short: "Build and render a resume from the terminal",
	Long: "resume_craft keeps one resume in a local slot, syncs it to a remote copy when a " +
		"user token is present, and renders it with any of the built-in templates.",
	SilenceUsage: true,
}

var (
	configFile string
	dataDir    string
	userToken  string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the local resume slot")
	rootCmd.PersistentFlags().StringVar(&userToken, "token", "", "Signed identity token (enables remote sync)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
