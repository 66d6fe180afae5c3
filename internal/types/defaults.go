package types

// Design defaults
const (
	DefaultFont        = "Inter"
	DefaultAccentColor = "#0f172a"
)

// DefaultDesign returns the design applied when none was persisted.
func DefaultDesign() Design {
	return Design{
		Font:        DefaultFont,
		AccentColor: DefaultAccentColor,
		Margins:     MarginsStandard,
	}
}

// DefaultResumeData returns a fresh, fully defined, empty aggregate.
func DefaultResumeData() ResumeData {
	return ResumeData{
		Education:      []Education{},
		Experience:     []Experience{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Skills:         []Skill{},
		Template:       TemplateModern,
		SectionOrder:   DefaultSectionOrder(),
		Design:         DefaultDesign(),
	}
}

// WithDefaults backfills every optional substructure of d that an older or partial
// payload may lack. Present values are never replaced, including values outside
// an enumeration.
func WithDefaults(d ResumeData) ResumeData {
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Languages == nil {
		d.Languages = []Language{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Template == "" {
		d.Template = TemplateModern
	}
	if len(d.SectionOrder) == 0 {
		d.SectionOrder = DefaultSectionOrder()
	}
	d.Design = d.Design.withDefaults()
	return d
}

func (d Design) withDefaults() Design {
	def := DefaultDesign()
	if d.Font == "" {
		d.Font = def.Font
	}
	if d.AccentColor == "" {
		d.AccentColor = def.AccentColor
	}
	if d.Margins == "" {
		d.Margins = def.Margins
	}
	return d
}
