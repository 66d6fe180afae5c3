package rendering

import (
	"strings"

	"github.com/jonathan/resume-craft/internal/types"
)

// documentView is the data passed to the HTML template
type documentView struct {
	Template types.TemplateID
	Banded   bool
	Style    styleView
	Header   headerView
	Zones    []zoneView
}

type styleView struct {
	Font        string
	AccentColor string
	Padding     string
}

type headerView struct {
	Name     string
	JobTitle string
	Contacts []string
}

type zoneView struct {
	Name     string
	Sections []sectionView
}

type sectionView struct {
	Key     types.Section
	Title   string
	Entries []entryView
}

// entryView is one rendered record. Every section maps onto the same shape.
type entryView struct {
	Heading    string
	Subheading string
	Meta       string
	Body       string
	Link       string
}

var marginPadding = map[types.Margins]string{
	types.MarginsCompact:  "24px",
	types.MarginsStandard: "40px",
	types.MarginsRelaxed:  "56px",
}

// buildDocument maps data onto layout. Sections with nothing to show are omitted;
// the header is always present.
func buildDocument(layout Layout, data types.ResumeData) documentView {
	data = types.WithDefaults(data)
	p := data.PersonalInfo

	doc := documentView{
		Template: layout.ID,
		Banded:   layout.Banded,
		Style: styleView{
			Font:        data.Design.Font,
			AccentColor: data.Design.AccentColor,
			Padding:     marginPadding[data.Design.Margins.OrDefault()],
		},
		Header: headerView{
			Name:     orPlaceholder(p.FullName, "Your Name"),
			JobTitle: orPlaceholder(p.JobTitle, "Job Title"),
			Contacts: nonEmpty(p.Email, p.Phone, p.Location, p.Website, p.LinkedIn, p.GitHub),
		},
	}

	for i, sections := range Partition(data.SectionOrder, layout.Zones) {
		zone := zoneView{Name: layout.Zones[i].Name}
		for _, s := range sections {
			entries := sectionEntries(s, data, layout)
			if len(entries) == 0 {
				continue
			}
			zone.Sections = append(zone.Sections, sectionView{Key: s, Title: layout.Title(s), Entries: entries})
		}
		if len(zone.Sections) > 0 {
			doc.Zones = append(doc.Zones, zone)
		}
	}
	return doc
}

func sectionEntries(s types.Section, d types.ResumeData, layout Layout) []entryView {
	var out []entryView
	switch s {
	case types.SectionPersonalInfo:
		if d.PersonalInfo.Summary != "" {
			out = append(out, entryView{Body: d.PersonalInfo.Summary})
		}
	case types.SectionExperience:
		for _, e := range d.Experience {
			end := e.EndDate
			if e.Current {
				end = "Present"
			}
			out = append(out, entryView{
				Heading:    orPlaceholder(e.Position, "Position"),
				Subheading: joinNonEmpty(", ", e.Company, e.Location),
				Meta:       formatDateRange(e.StartDate, end),
				Body:       e.Description,
			})
		}
	case types.SectionEducation:
		for _, e := range d.Education {
			heading := e.Degree
			if e.Field != "" {
				heading = joinNonEmpty(" in ", e.Degree, e.Field)
			}
			sub := orPlaceholder(e.Institution, "Institution")
			if e.GPA != "" {
				sub += " · GPA: " + e.GPA
			}
			out = append(out, entryView{
				Heading:    orPlaceholder(heading, "Degree"),
				Subheading: sub,
				Meta:       formatDateRange(e.StartDate, e.EndDate),
				Body:       e.Description,
			})
		}
	case types.SectionSkills:
		for _, sk := range d.Skills {
			v := entryView{Heading: orPlaceholder(sk.Name, "Skill"), Subheading: sk.Category}
			if layout.ShowLevels {
				v.Meta = string(sk.Level.OrDefault())
			}
			out = append(out, v)
		}
	case types.SectionProjects:
		for _, pr := range d.Projects {
			out = append(out, entryView{
				Heading:    orPlaceholder(pr.Name, "Project"),
				Subheading: pr.Technologies,
				Meta:       formatDateRange(pr.StartDate, pr.EndDate),
				Body:       pr.Description,
				Link:       pr.Link,
			})
		}
	case types.SectionCertifications:
		for _, c := range d.Certifications {
			out = append(out, entryView{
				Heading:    orPlaceholder(c.Name, "Certification"),
				Subheading: c.Issuer,
				Meta:       c.Date,
				Link:       c.Link,
			})
		}
	case types.SectionLanguages:
		for _, l := range d.Languages {
			out = append(out, entryView{
				Heading: orPlaceholder(l.Name, "Language"),
				Meta:    string(l.Proficiency.OrDefault()),
			})
		}
	}
	return out
}

// formatDateRange renders "start – end", dropping whichever side is empty.
func formatDateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " – " + end
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinNonEmpty(sep string, values ...string) string {
	return strings.Join(nonEmpty(values...), sep)
}
