package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the resume and delete the local copy",
	Long: "Resets the resume to its defaults and deletes the local slot. The remote copy is " +
		"not touched, so signing in again restores it.",
	RunE: runClear,
}

var clearYes bool

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Confirm the reset")

	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	if !clearYes {
		return fmt.Errorf("refusing to clear without --yes")
	}
	return withSession(func(sess *session) error {
		if err := sess.store.ClearData(); err != nil {
			return err
		}
		fmt.Println("Local resume cleared")
		return nil
	})
}
