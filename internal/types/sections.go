package types

import (
	"errors"
	"fmt"
)

// Section identifies an independently orderable block of resume content.
type Section string

// Section identifiers. SectionDesign is a pseudo-section that always trails.
const (
	SectionPersonalInfo   Section = "personalInfo"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
	SectionDesign         Section = "design"
)

var sectionTitles = map[Section]string{
	SectionPersonalInfo:   "Personal Info",
	SectionExperience:     "Experience",
	SectionEducation:      "Education",
	SectionSkills:         "Skills",
	SectionProjects:       "Projects",
	SectionCertifications: "Certifications",
	SectionLanguages:      "Languages",
	SectionDesign:         "Design",
}

// Title returns the editor label of s
func (s Section) Title() string {
	if t, ok := sectionTitles[s]; ok {
		return t
	}
	return string(s)
}

// IsContent reports whether s is a real (non-design) section.
func (s Section) IsContent() bool {
	_, ok := sectionTitles[s]
	return ok && s != SectionDesign
}

// ErrSectionIndex is returned by MoveSection for an index outside the visible order.
var ErrSectionIndex = errors.New("section index out of range")

// DefaultSectionOrder returns the seven content sections in their default order.
func DefaultSectionOrder() []Section {
	return []Section{
		SectionPersonalInfo,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
		SectionLanguages,
	}
}

// VisibleSections returns order without the design marker.
func VisibleSections(order []Section) []Section {
	visible := make([]Section, 0, len(order))
	for _, s := range order {
		if s != SectionDesign {
			visible = append(visible, s)
		}
	}
	return visible
}

// MoveSection moves the element at from to position to within the visible
// (non-design) subsequence of order. It is a single-element move, not a swap.
// If order tracked the design marker, it is re-appended last.
func MoveSection(order []Section, from, to int) ([]Section, error) {
	visible := VisibleSections(order)
	if from < 0 || from >= len(visible) {
		return nil, fmt.Errorf("%w: source %d (have %d sections)", ErrSectionIndex, from, len(visible))
	}
	if to < 0 || to >= len(visible) {
		return nil, fmt.Errorf("%w: destination %d (have %d sections)", ErrSectionIndex, to, len(visible))
	}

	moved := visible[from]
	visible = append(visible[:from], visible[from+1:]...)
	visible = append(visible[:to], append([]Section{moved}, visible[to:]...)...)

	if tracksDesign(order) {
		visible = append(visible, SectionDesign)
	}
	return visible, nil
}

// NormalizeSectionOrder drops unknown and duplicate ids, appends any missing
// content section in default order, and trails the design marker if present.
func NormalizeSectionOrder(order []Section) []Section {
	seen := make(map[Section]bool, len(order))
	out := make([]Section, 0, len(sectionTitles))
	for _, s := range order {
		if !s.IsContent() || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	for _, s := range DefaultSectionOrder() {
		if !seen[s] {
			out = append(out, s)
		}
	}
	if tracksDesign(order) {
		out = append(out, SectionDesign)
	}
	return out
}

func tracksDesign(order []Section) bool {
	for _, s := range order {
		if s == SectionDesign {
			return true
		}
	}
	return false
}
