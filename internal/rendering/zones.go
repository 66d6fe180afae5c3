package rendering

import (
	"github.com/jonathan/resume-craft/internal/types"
)

// Zone is a named region of a layout and the sections it can hold.
type Zone struct {
	Name     string
	Sections []types.Section
}

// accepts reports whether s is eligible for the zone.
func (z Zone) accepts(s types.Section) bool {
	for _, eligible := range z.Sections {
		if eligible == s {
			return true
		}
	}
	return false
}

// Partition splits order into one slice per zone. Each slice keeps the relative
// order of order; a section that no zone accepts is dropped, and a repeated
// section is placed once.
func Partition(order []types.Section, zones []Zone) [][]types.Section {
	out := make([][]types.Section, len(zones))
	placed := make(map[types.Section]bool, len(order))

	for _, s := range order {
		if s == types.SectionDesign || placed[s] {
			continue
		}
		for i, z := range zones {
			if z.accepts(s) {
				out[i] = append(out[i], s)
				placed[s] = true
				break
			}
		}
	}
	return out
}

var (
	allContent = []types.Section{
		types.SectionPersonalInfo,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
		types.SectionProjects,
		types.SectionCertifications,
		types.SectionLanguages,
	}
	narrative = []types.Section{
		types.SectionPersonalInfo,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionProjects,
	}
	compactLists = []types.Section{
		types.SectionSkills,
		types.SectionLanguages,
		types.SectionCertifications,
	}
)

func singleColumn(sections ...types.Section) []Zone {
	if len(sections) == 0 {
		sections = allContent
	}
	return []Zone{{Name: "main", Sections: sections}}
}

func sidebarLeft(side, main []types.Section) []Zone {
	return []Zone{{Name: "sidebar", Sections: side}, {Name: "main", Sections: main}}
}

func sidebarRight(main, side []types.Section) []Zone {
	return []Zone{{Name: "main", Sections: main}, {Name: "sidebar", Sections: side}}
}
