package types

// Constructors for freshly added records: every field empty except the id and
// the enumerations, which start at Intermediate.

// NewEducation returns an empty education entry
func NewEducation(id string) Education {
	return Education{ID: id}
}

// NewExperience returns an empty experience entry
func NewExperience(id string) Experience {
	return Experience{ID: id}
}

// NewProject returns an empty project entry
func NewProject(id string) Project {
	return Project{ID: id}
}

// NewCertification returns an empty certification entry
func NewCertification(id string) Certification {
	return Certification{ID: id}
}

// NewLanguage returns a language entry at Intermediate proficiency
func NewLanguage(id string) Language {
	return Language{ID: id, Proficiency: ProficiencyIntermediate}
}

// NewSkill returns a skill entry at Intermediate level
func NewSkill(id string) Skill {
	return Skill{ID: id, Level: SkillIntermediate}
}
