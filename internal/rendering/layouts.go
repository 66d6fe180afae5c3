package rendering

import (
	"github.com/jonathan/resume-craft/internal/types"
)

// Layout describes how one template arranges the resume.
type Layout struct {
	ID    types.TemplateID
	Zones []Zone
	// Titles overrides section headings for this layout.
	Titles map[types.Section]string
	// Banded layouts draw the header on an accent-colored band.
	Banded bool
	// ShowLevels prints skill levels next to skill names.
	ShowLevels bool
}

// Title returns the heading this layout uses for s.
func (l Layout) Title(s types.Section) string {
	if t, ok := l.Titles[s]; ok {
		return t
	}
	if s == types.SectionPersonalInfo {
		return "Summary"
	}
	return s.Title()
}

// builtinLayouts returns the layouts for every known template.
func builtinLayouts() []Layout {
	s := struct {
		info, exp, edu, skills, projects, certs, langs types.Section
	}{
		types.SectionPersonalInfo, types.SectionExperience, types.SectionEducation,
		types.SectionSkills, types.SectionProjects, types.SectionCertifications, types.SectionLanguages,
	}

	return []Layout{
		{
			ID:     types.TemplateModern,
			Zones:  sidebarLeft(compactLists, narrative),
			Titles: map[types.Section]string{s.info: "Profile"},
			Banded: true,
		},
		{
			ID:    types.TemplateMinimal,
			Zones: singleColumn(),
		},
		{
			ID: types.TemplateProfessional,
			Zones: []Zone{
				{Name: "top", Sections: []types.Section{s.info}},
				{Name: "main", Sections: []types.Section{s.exp, s.projects}},
				{Name: "sidebar", Sections: []types.Section{s.edu, s.skills, s.langs, s.certs}},
			},
			Titles: map[types.Section]string{
				s.info:  "Professional Summary",
				s.exp:   "Work Experience",
				s.certs: "Certs",
			},
			Banded: true,
		},
		{
			ID:     types.TemplateCreative,
			Zones:  sidebarRight([]types.Section{s.info, s.exp, s.projects}, []types.Section{s.skills, s.edu, s.langs}),
			Titles: map[types.Section]string{s.info: "About Me"},
			Banded: true,
		},
		{
			ID:    types.TemplateExecutive,
			Zones: singleColumn(s.info, s.exp, s.edu, s.certs, s.skills),
			Titles: map[types.Section]string{
				s.info: "Executive Summary",
				s.exp:  "Leadership Experience",
			},
		},
		{
			ID:         types.TemplateTech,
			Zones:      sidebarLeft([]types.Section{s.skills, s.langs}, []types.Section{s.info, s.exp, s.projects, s.edu, s.certs}),
			ShowLevels: true,
			Banded:     true,
		},
		{
			ID:    types.TemplateElegant,
			Zones: singleColumn(),
		},
		{
			ID:         types.TemplateTechnical,
			Zones:      singleColumn(s.info, s.skills, s.exp, s.projects, s.edu, s.certs),
			Titles:     map[types.Section]string{s.skills: "Tech Stack"},
			ShowLevels: true,
		},
		{
			ID:    types.TemplateAcademic,
			Zones: singleColumn(s.info, s.edu, s.exp, s.projects, s.certs, s.langs, s.skills),
			Titles: map[types.Section]string{
				s.info:     "Research Interests",
				s.projects: "Research & Publications",
			},
		},
		{
			ID:     types.TemplateStartup,
			Zones:  sidebarRight([]types.Section{s.info, s.exp, s.projects}, []types.Section{s.skills, s.edu, s.certs}),
			Titles: map[types.Section]string{s.projects: "Things I Built"},
			Banded: true,
		},
		{
			ID:    types.TemplateCorporate,
			Zones: sidebarRight(narrative, compactLists),
		},
		{
			ID:     types.TemplateDesigner,
			Zones:  sidebarLeft([]types.Section{s.info, s.skills, s.langs}, []types.Section{s.exp, s.projects, s.edu, s.certs}),
			Banded: true,
		},
		{
			ID:    types.TemplateSimple,
			Zones: singleColumn(s.info, s.exp, s.edu, s.skills),
		},
		{
			ID:    types.TemplateVintage,
			Zones: singleColumn(),
			Titles: map[types.Section]string{
				s.info: "Objective",
				s.exp:  "Employment History",
			},
		},
		{
			ID:     types.TemplateModernist,
			Zones:  sidebarLeft([]types.Section{s.skills, s.langs, s.certs}, []types.Section{s.info, s.exp, s.edu, s.projects}),
			Banded: true,
		},
		{
			ID:         types.TemplateCompact,
			Zones:      []Zone{{Name: "main", Sections: narrative}, {Name: "footer", Sections: compactLists}},
			ShowLevels: true,
		},
	}
}
