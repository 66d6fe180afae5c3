package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jonathan/resume-craft/internal/rendering"
	"github.com/jonathan/resume-craft/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume to an HTML document",
	Long: "Renders the resume with its selected template (or --template) and writes the HTML " +
		"to --out, or to stdout when no file is given. Unknown templates fall back to modern.",
	RunE: runRender,
}

var (
	renderOutputFile string
	renderTemplate   string
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Render with this template instead of the selected one")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	return withSession(func(sess *session) error {
		data := sess.store.Snapshot()
		if renderTemplate != "" {
			data.Template = types.TemplateID(renderTemplate)
		}

		registry := rendering.NewRegistry()
		if _, used, err := registry.Lookup(data.Template); err == nil && used != data.Template {
			fmt.Fprintf(os.Stderr, "Warning: unknown template %q, rendering with %q\n", data.Template, used)
		}

		if renderOutputFile == "" {
			w := bufio.NewWriter(os.Stdout)
			if err := registry.Render(w, data); err != nil {
				return err
			}
			return w.Flush()
		}

		f, err := os.Create(renderOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if err := registry.Render(f, data); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Wrote %s\n", renderOutputFile)
		return nil
	})
}
