package types

// TemplateID selects the renderer that interprets the aggregate.
type TemplateID string

// Template identifiers
const (
	TemplateModern       TemplateID = "modern"
	TemplateMinimal      TemplateID = "minimal"
	TemplateProfessional TemplateID = "professional"
	TemplateCreative     TemplateID = "creative"
	TemplateExecutive    TemplateID = "executive"
	TemplateTech         TemplateID = "tech"
	TemplateElegant      TemplateID = "elegant"
	TemplateTechnical    TemplateID = "technical"
	TemplateAcademic     TemplateID = "academic"
	TemplateStartup      TemplateID = "startup"
	TemplateCorporate    TemplateID = "corporate"
	TemplateDesigner     TemplateID = "designer"
	TemplateSimple       TemplateID = "simple"
	TemplateVintage      TemplateID = "vintage"
	TemplateModernist    TemplateID = "modernist"
	TemplateCompact      TemplateID = "compact"
)

// TemplateIDs lists every template in picker order.
var TemplateIDs = []TemplateID{
	TemplateModern, TemplateMinimal, TemplateProfessional, TemplateCreative,
	TemplateExecutive, TemplateTech, TemplateElegant, TemplateTechnical,
	TemplateAcademic, TemplateStartup, TemplateCorporate, TemplateDesigner,
	TemplateSimple, TemplateVintage, TemplateModernist, TemplateCompact,
}

var templateNames = map[TemplateID]string{
	TemplateModern:       "Modern",
	TemplateMinimal:      "Minimal",
	TemplateProfessional: "Professional",
	TemplateCreative:     "Creative",
	TemplateExecutive:    "Executive",
	TemplateTech:         "Tech",
	TemplateElegant:      "Elegant",
	TemplateTechnical:    "Dev",
	TemplateAcademic:     "Scholar",
	TemplateStartup:      "Unicorn",
	TemplateCorporate:    "Global",
	TemplateDesigner:     "Aura",
	TemplateSimple:       "Pure",
	TemplateVintage:      "Retro",
	TemplateModernist:    "Bauhaus",
	TemplateCompact:      "Dense",
}

// IsKnown reports whether t is one of the 16 template identifiers.
func (t TemplateID) IsKnown() bool {
	_, ok := templateNames[t]
	return ok
}

// DisplayName returns the picker label for t, or the raw id for unknown templates.
func (t TemplateID) DisplayName() string {
	if name, ok := templateNames[t]; ok {
		return name
	}
	return string(t)
}

// Proficiency is the closed set of language proficiency levels.
type Proficiency string

// Proficiency levels
const (
	ProficiencyNative       Proficiency = "Native"
	ProficiencyFluent       Proficiency = "Fluent"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyBasic        Proficiency = "Basic"
)

// OrDefault returns p, or Intermediate when p is outside the enumeration.
func (p Proficiency) OrDefault() Proficiency {
	switch p {
	case ProficiencyNative, ProficiencyFluent, ProficiencyAdvanced, ProficiencyIntermediate, ProficiencyBasic:
		return p
	}
	return ProficiencyIntermediate
}

// SkillLevel is the closed set of skill levels.
type SkillLevel string

// Skill levels
const (
	SkillExpert       SkillLevel = "Expert"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillBeginner     SkillLevel = "Beginner"
)

// OrDefault returns l, or Intermediate when l is outside the enumeration.
func (l SkillLevel) OrDefault() SkillLevel {
	switch l {
	case SkillExpert, SkillAdvanced, SkillIntermediate, SkillBeginner:
		return l
	}
	return SkillIntermediate
}

// Margins is the page density preset.
type Margins string

// Margin presets
const (
	MarginsCompact  Margins = "compact"
	MarginsStandard Margins = "standard"
	MarginsRelaxed  Margins = "relaxed"
)

// OrDefault returns m, or standard when m is outside the enumeration.
func (m Margins) OrDefault() Margins {
	switch m {
	case MarginsCompact, MarginsStandard, MarginsRelaxed:
		return m
	}
	return MarginsStandard
}

// Fonts offered by the design form.
var Fonts = []string{"Inter", "Roboto", "Playfair Display", "Lora", "Open Sans"}

// AccentPalette is the preset accent colors offered by the design form.
var AccentPalette = []string{
	"#0f172a", // slate
	"#2563eb", // blue
	"#059669", // emerald
	"#7c3aed", // violet
	"#db2777", // pink
	"#dc2626", // red
	"#d97706", // amber
	"#000000",
}
