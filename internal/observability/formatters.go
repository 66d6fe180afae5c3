// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-craft/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// scoreBarWidth is the number of cells in the completion bar
	scoreBarWidth = 20
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// ScoreBar renders score (0-100) as a fixed-width bar.
func ScoreBar(score int) string {
	score = max(0, min(100, score))
	filled := score * scoreBarWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled) + fmt.Sprintf("] %d%%", score)
}

// PrintResumeSummary outputs the header fields, template, completion and section counts.
func (p *Printer) PrintResumeSummary(data types.ResumeData) {
	var sb strings.Builder
	pi := data.PersonalInfo

	sb.WriteString(fmt.Sprintf("Name:      %s\n", orDash(pi.FullName)))
	sb.WriteString(fmt.Sprintf("Title:     %s\n", orDash(pi.JobTitle)))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", orDash(pi.Email)))
	sb.WriteString(fmt.Sprintf("Template:  %s (%s)\n", data.Template.DisplayName(), data.Template))
	sb.WriteString(fmt.Sprintf("Design:    %s, %s, %s margins\n", data.Design.Font, data.Design.AccentColor, data.Design.Margins.OrDefault()))
	sb.WriteString(fmt.Sprintf("Complete:  %s\n", ScoreBar(types.CompletionScore(data))))
	sb.WriteString("\n")

	counts := []struct {
		section types.Section
		n       int
	}{
		{types.SectionExperience, len(data.Experience)},
		{types.SectionEducation, len(data.Education)},
		{types.SectionSkills, len(data.Skills)},
		{types.SectionProjects, len(data.Projects)},
		{types.SectionCertifications, len(data.Certifications)},
		{types.SectionLanguages, len(data.Languages)},
	}
	for _, c := range counts {
		sb.WriteString(fmt.Sprintf("  • %-16s %d\n", c.section.Title(), c.n))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCollection lists the records of one section with their ids.
func (p *Printer) PrintCollection(section types.Section, data types.ResumeData) {
	lines := CollectionLines(section, data)
	if len(lines) == 0 {
		p.printBox(strings.ToUpper(section.Title()), "(empty)")
		return
	}
	p.printBox(strings.ToUpper(section.Title()), strings.Join(lines, "\n"))
}

// CollectionLines returns one "id  label" line per record of section.
func CollectionLines(section types.Section, data types.ResumeData) []string {
	var lines []string
	add := func(id string, parts ...string) {
		label := strings.Join(nonEmpty(parts), " · ")
		lines = append(lines, fmt.Sprintf("%s  %s", shortID(id), orDash(label)))
	}

	switch section {
	case types.SectionExperience:
		for _, e := range data.Experience {
			add(e.ID, e.Position, e.Company)
		}
	case types.SectionEducation:
		for _, e := range data.Education {
			add(e.ID, e.Degree, e.Institution)
		}
	case types.SectionSkills:
		for _, s := range data.Skills {
			add(s.ID, s.Name, string(s.Level.OrDefault()))
		}
	case types.SectionProjects:
		for _, pr := range data.Projects {
			add(pr.ID, pr.Name, pr.Technologies)
		}
	case types.SectionCertifications:
		for _, c := range data.Certifications {
			add(c.ID, c.Name, c.Issuer)
		}
	case types.SectionLanguages:
		for _, l := range data.Languages {
			add(l.ID, l.Name, string(l.Proficiency.OrDefault()))
		}
	}
	return lines
}

// PrintSectionOrder outputs the section order with the indexes MoveSection expects.
func (p *Printer) PrintSectionOrder(order []types.Section) {
	var sb strings.Builder
	for i, s := range types.VisibleSections(order) {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i, s.Title()))
	}
	p.printBox("SECTION ORDER", strings.TrimSuffix(sb.String(), "\n"))
}

// SyncStatus is the persistence state shown by PrintSyncStatus.
type SyncStatus struct {
	Identity      *types.Identity
	Remote        string
	LastSaved     time.Time
	LastCloudSync time.Time
}

// PrintSyncStatus outputs who the resume is synced for and when it was last written.
func (p *Printer) PrintSyncStatus(status SyncStatus) {
	var sb strings.Builder
	if status.Identity == nil {
		sb.WriteString("User:        signed out (local only)\n")
	} else {
		name := status.Identity.DisplayName
		if name == "" {
			name = status.Identity.ID
		}
		sb.WriteString(fmt.Sprintf("User:        %s\n", name))
	}
	sb.WriteString(fmt.Sprintf("Remote:      %s\n", orDash(status.Remote)))
	sb.WriteString(fmt.Sprintf("Saved:       %s\n", formatTime(status.LastSaved)))
	sb.WriteString(fmt.Sprintf("Cloud sync:  %s", formatTime(status.LastCloudSync)))

	p.printBox("SYNC", sb.String())
}

// PrintSuggestions outputs numbered writing suggestions.
func (p *Printer) PrintSuggestions(field string, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestions[i]))
	}
	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(suggestions)-maxItemsToShow))
	}

	p.printBox("SUGGESTIONS: "+strings.ToUpper(field), strings.TrimSuffix(sb.String(), "\n"))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format(time.RFC3339)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
