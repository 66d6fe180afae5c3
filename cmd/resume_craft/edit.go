package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-craft/internal/observability"
	"github.com/jonathan/resume-craft/internal/types"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <collection> [field=value ...]",
	Short: "Add a record to a collection",
	Long: "Appends a new record with a fresh id to one of the collections " +
		"(education, experience, projects, certifications, languages, skills) and prints its id. " +
		"Optional field=value pairs fill the record straight away.",
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var updateCmd = &cobra.Command{
	Use:   "update <collection> <id> field=value [field=value ...]",
	Short: "Update fields of a record",
	Long:  "Applies a partial update to the record whose id starts with <id>. Fields not named are left untouched.",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runUpdate,
}

var removeCmd = &cobra.Command{
	Use:     "remove <collection> <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a record from a collection",
	Args:    cobra.ExactArgs(2),
	RunE:    runRemove,
}

var listCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List the records of a collection with their ids",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

var fieldsCmd = &cobra.Command{
	Use:   "fields <collection|personal|design>",
	Short: "List the field names accepted by update, personal and design",
	Args:  cobra.ExactArgs(1),
	RunE:  runFields,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(fieldsCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	c, err := lookupCollection(args[0])
	if err != nil {
		return err
	}
	patch := c.patch()
	if err := types.ParsePatch(patch, args[1:]); err != nil {
		return err
	}

	return withSession(func(sess *session) error {
		id := c.add(sess.store)
		if len(args) > 1 {
			c.update(sess.store, id, patch)
		}
		fmt.Println(id)
		return nil
	})
}

func runUpdate(_ *cobra.Command, args []string) error {
	c, err := lookupCollection(args[0])
	if err != nil {
		return err
	}
	patch := c.patch()
	if err := types.ParsePatch(patch, args[2:]); err != nil {
		return err
	}

	return withSession(func(sess *session) error {
		id, err := resolveID(c.ids(sess.store.Snapshot()), args[1])
		if err != nil {
			return err
		}
		c.update(sess.store, id, patch)
		if sess.cfg.Verbose {
			fmt.Fprintf(os.Stderr, "Updated %s %s\n", c.section, id)
		}
		return nil
	})
}

func runRemove(_ *cobra.Command, args []string) error {
	c, err := lookupCollection(args[0])
	if err != nil {
		return err
	}

	return withSession(func(sess *session) error {
		id, err := resolveID(c.ids(sess.store.Snapshot()), args[1])
		if err != nil {
			return err
		}
		c.remove(sess.store, id)
		fmt.Printf("Removed %s\n", id)
		return nil
	})
}

func runList(_ *cobra.Command, args []string) error {
	c, err := lookupCollection(args[0])
	if err != nil {
		return err
	}

	return withSession(func(sess *session) error {
		observability.NewPrinter(os.Stdout).PrintCollection(c.section, sess.store.Snapshot())
		return nil
	})
}

func runFields(_ *cobra.Command, args []string) error {
	var patch any
	switch strings.ToLower(args[0]) {
	case "personal":
		patch = types.PersonalInfoPatch{}
	case "design":
		patch = types.DesignPatch{}
	default:
		c, err := lookupCollection(args[0])
		if err != nil {
			return err
		}
		patch = c.patch()
	}
	for _, name := range types.PatchFieldNames(patch) {
		fmt.Println(name)
	}
	return nil
}
