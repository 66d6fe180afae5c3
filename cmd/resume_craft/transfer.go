package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-craft/internal/store"
	"github.com/jonathan/resume-craft/internal/types"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the resume with a JSON document",
	Long: "Validates a resume JSON document, fills any missing fields with defaults, repairs its " +
		"section order and makes it the current resume.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the resume to a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	data, err := store.DecodeResume(raw)
	if err != nil {
		return fmt.Errorf("invalid resume file: %w", err)
	}
	// imported files may come from other tools or older builds
	data.SectionOrder = types.NormalizeSectionOrder(data.SectionOrder)

	return withSession(func(sess *session) error {
		sess.store.SetResumeData(data)
		fmt.Printf("Imported %s (%d%% complete)\n", args[0], sess.store.CompletionScore())
		return nil
	})
}

func runExport(_ *cobra.Command, args []string) error {
	return withSession(func(sess *session) error {
		out, err := json.MarshalIndent(sess.store.Snapshot(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal resume: %w", err)
		}
		if err := os.WriteFile(args[0], out, 0644); err != nil {
			return fmt.Errorf("failed to write resume file: %w", err)
		}
		return nil
	})
}
