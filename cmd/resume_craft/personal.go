package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/resume-craft/internal/observability"
	"github.com/jonathan/resume-craft/internal/types"
	"github.com/spf13/cobra"
)

var personalCmd = &cobra.Command{
	Use:   "personal field=value [field=value ...]",
	Short: "Update personal info (name, contacts, summary)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPersonal,
}

var designCmd = &cobra.Command{
	Use:   "design field=value [field=value ...]",
	Short: "Update font, accent color or margins",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDesign,
}

var templateCmd = &cobra.Command{
	Use:   "template [id]",
	Short: "Show or select the template",
	Long:  "Without an argument, lists the templates and marks the selected one. With an id, selects it.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplate,
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Show the section order or move one section",
	Long: "Prints the section order with its indexes. " +
		"--move from:to first moves the section at index from to index to.",
	RunE: runOrder,
}

var (
	templateForce bool
	orderMove     string
)

func init() {
	orderCmd.Flags().StringVar(&orderMove, "move", "", "Move a section, as from:to")
	templateCmd.Flags().BoolVar(&templateForce, "force", false, "Select the id even if it is not a built-in template")

	rootCmd.AddCommand(personalCmd)
	rootCmd.AddCommand(designCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(orderCmd)
}

func runPersonal(_ *cobra.Command, args []string) error {
	var patch types.PersonalInfoPatch
	if err := types.ParsePatch(&patch, args); err != nil {
		return err
	}
	return withSession(func(sess *session) error {
		sess.store.UpdatePersonalInfo(patch)
		return nil
	})
}

func runDesign(_ *cobra.Command, args []string) error {
	var patch types.DesignPatch
	if err := types.ParsePatch(&patch, args); err != nil {
		return err
	}
	return withSession(func(sess *session) error {
		sess.store.UpdateDesign(patch)
		return nil
	})
}

func runTemplate(_ *cobra.Command, args []string) error {
	return withSession(func(sess *session) error {
		if len(args) == 0 {
			current := sess.store.Snapshot().Template
			for _, id := range types.TemplateIDs {
				marker := " "
				if id == current {
					marker = "*"
				}
				fmt.Printf("%s %-13s %s\n", marker, id, id.DisplayName())
			}
			return nil
		}

		id := types.TemplateID(strings.TrimSpace(args[0]))
		if !id.IsKnown() && !templateForce {
			return fmt.Errorf("unknown template %q (use --force to select it anyway)", id)
		}
		sess.store.SetTemplate(id)
		return nil
	})
}

func runOrder(_ *cobra.Command, _ []string) error {
	var from, to int
	if orderMove != "" {
		var err error
		from, to, err = parseMove(orderMove)
		if err != nil {
			return err
		}
	}

	return withSession(func(sess *session) error {
		if orderMove != "" {
			if err := sess.store.MoveSection(from, to); err != nil {
				return err
			}
		}
		observability.NewPrinter(os.Stdout).PrintSectionOrder(sess.store.Snapshot().SectionOrder)
		return nil
	})
}

// parseMove parses "from:to" into two section indexes.
func parseMove(arg string) (int, int, error) {
	left, right, ok := strings.Cut(arg, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid move %q: expected from:to", arg)
	}
	from, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid source index %q", left)
	}
	to, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid destination index %q", right)
	}
	return from, to, nil
}
