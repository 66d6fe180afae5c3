package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-craft/internal/observability"
	"github.com/jonathan/resume-craft/internal/suggest"
	"github.com/jonathan/resume-craft/internal/types"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <summary|description>",
	Short: "Show writing suggestions, optionally applying one",
	Long: "Lists canned suggestions for the summary or an experience description. " +
		"--apply n writes suggestion n into the summary, or into the experience given by --id.",
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

var (
	suggestApply int
	suggestID    string
)

func init() {
	suggestCmd.Flags().IntVar(&suggestApply, "apply", 0, "Apply suggestion n (1-based)")
	suggestCmd.Flags().StringVar(&suggestID, "id", "", "Experience id to apply a description to")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, args []string) error {
	field := suggest.Field(args[0])
	list, err := suggest.For(field)
	if err != nil {
		return err
	}

	if suggestApply == 0 {
		observability.NewPrinter(os.Stdout).PrintSuggestions(string(field), list)
		return nil
	}

	text, err := suggest.Pick(field, suggestApply)
	if err != nil {
		return err
	}
	if field == suggest.FieldDescription && suggestID == "" {
		return fmt.Errorf("--id is required to apply a description")
	}

	return withSession(func(sess *session) error {
		switch field {
		case suggest.FieldSummary:
			sess.store.UpdatePersonalInfo(types.PersonalInfoPatch{Summary: &text})
		case suggest.FieldDescription:
			id, err := resolveID(collections["experience"].ids(sess.store.Snapshot()), suggestID)
			if err != nil {
				return err
			}
			sess.store.UpdateExperience(id, types.ExperiencePatch{Description: &text})
		}
		fmt.Printf("Applied suggestion %d to %s\n", suggestApply, field)
		return nil
	})
}
