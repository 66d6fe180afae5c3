package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-craft/internal/observability"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current resume",
	RunE:  runShow,
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the completion score (0-100)",
	RunE:  runScore,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who the resume syncs for and when it was last saved",
	RunE:  runStatus,
}

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the full resume document as JSON")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(statusCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	return withSession(func(sess *session) error {
		data := sess.store.Snapshot()
		if showJSON {
			out, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal resume: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResumeSummary(data)
		printer.PrintSectionOrder(data.SectionOrder)
		return nil
	})
}

func runScore(_ *cobra.Command, _ []string) error {
	return withSession(func(sess *session) error {
		fmt.Println(sess.store.CompletionScore())
		return nil
	})
}

func runStatus(_ *cobra.Command, _ []string) error {
	return withSession(func(sess *session) error {
		remoteName := ""
		if sess.identity != nil {
			remoteName = sess.cfg.Remote.Backend
		}
		observability.NewPrinter(os.Stdout).PrintSyncStatus(observability.SyncStatus{
			Identity:      sess.store.Identity(),
			Remote:        remoteName,
			LastSaved:     sess.store.LastSaved(),
			LastCloudSync: sess.store.LastCloudSync(),
		})
		return nil
	})
}
