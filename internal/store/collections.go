package store

import (
	"github.com/google/uuid"

	"github.com/jonathan/resume-craft/internal/types"
)

func newRecordID() string {
	return uuid.NewString()
}

// updateRecord applies fn to the record with id, keeping its position.
// An unknown id leaves the list unchanged.
func updateRecord[T types.Record](list []T, id string, fn func(T) T) []T {
	for i := range list {
		if list[i].RecordID() == id {
			list[i] = fn(list[i])
			break
		}
	}
	return list
}

func removeRecord[T types.Record](list []T, id string) []T {
	out := make([]T, 0, len(list))
	for _, r := range list {
		if r.RecordID() != id {
			out = append(out, r)
		}
	}
	return out
}

// AddEducation appends an empty education entry and returns its id.
func (s *Store) AddEducation() string {
	id := s.newID()
	s.commit(func(d *types.ResumeData) {
		d.Education = append(d.Education, types.NewEducation(id))
	})
	return id
}

// UpdateEducation merges patch into the education entry with id.
func (s *Store) UpdateEducation(id string, patch types.EducationPatch) {
	s.commit(func(d *types.ResumeData) {
		d.Education = updateRecord(d.Education, id, patch.Apply)
	})
}

// RemoveEducation removes the education entry with id.
func (s *Store) RemoveEducation(id string) {
	s.commit(func(d *types.ResumeData) {
		d.Education = removeRecord(d.Education, id)
	})
}

// AddExperience appends an empty experience entry and returns its id.
func (s *Store) AddExperience() string {
	id := s.newID()
	s.commit(func(d *types.ResumeData) {
		d.Experience = append(d.Experience, types.NewExperience(id))
	})
	return id
}

// UpdateExperience merges patch into the experience entry with id.
func (s *Store) UpdateExperience(id string, patch types.ExperiencePatch) {
	s.commit(func(d *types.ResumeData) {
		d.Experience = updateRecord(d.Experience, id, patch.Apply)
	})
}

// RemoveExperience removes the experience entry with id.
func (s *Store) RemoveExperience(id string) {
	s.commit(func(d *types.ResumeData) {
		d.Experience = removeRecord(d.Experience, id)
	})
}

// AddProject appends an empty project and returns its id.
func (s *Store) AddProject() string {
	id := s.newID()
	s.commit(func(d *types.ResumeData) {
		d.Projects = append(d.Projects, types.NewProject(id))
	})
	return id
}

// UpdateProject merges patch into the project with id.
func (s *Store) UpdateProject(id string, patch types.ProjectPatch) {
	s.commit(func(d *types.ResumeData) {
		d.Projects = updateRecord(d.Projects, id, patch.Apply)
	})
}

// RemoveProject removes the project with id.
func (s *Store) RemoveProject(id string) {
	s.commit(func(d *types.ResumeData) {
		d.Projects = removeRecord(d.Projects, id)
	})
}

// AddCertification appends an empty certification and returns its id.
func (s *Store) AddCertification() string {
	id := s.newID()
	s.commit(func(d *types.ResumeData) {
		d.Certifications = append(d.Certifications, types.NewCertification(id))
	})
	return id
}

// UpdateCertification merges patch into the certification with id.
func (s *Store) UpdateCertification(id string, patch types.CertificationPatch) {
	s.commit(func(d *types.ResumeData) {
		d.Certifications = updateRecord(d.Certifications, id, patch.Apply)
	})
}

// RemoveCertification removes the certification with id.
func (s *Store) RemoveCertification(id string) {
	s.commit(func(d *types.ResumeData) {
		d.Certifications = removeRecord(d.Certifications, id)
	})
}

// AddLanguage appends a language at Intermediate proficiency and returns its id.
func (s *Store) AddLanguage() string {
	id := s.newID()
	s.commit(func(d *types.ResumeData) {
		d.Languages = append(d.Languages, types.NewLanguage(id))
	})
	return id
}

// UpdateLanguage merges patch into the language with id.
func (s *Store) UpdateLanguage(id string, patch types.LanguagePatch) {
	s.commit(func(d *types.ResumeData) {
		d.Languages = updateRecord(d.Languages, id, patch.Apply)
	})
}

// RemoveLanguage removes the language with id.
func (s *Store) RemoveLanguage(id string) {
	s.commit(func(d *types.ResumeData) {
		d.Languages = removeRecord(d.Languages, id)
	})
}

// AddSkill appends a skill at Intermediate level and returns its id.
func (s *Store) AddSkill() string {
	id := s.newID()
	s.commit(func(d *types.ResumeData) {
		d.Skills = append(d.Skills, types.NewSkill(id))
	})
	return id
}

// UpdateSkill merges patch into the skill with id.
func (s *Store) UpdateSkill(id string, patch types.SkillPatch) {
	s.commit(func(d *types.ResumeData) {
		d.Skills = updateRecord(d.Skills, id, patch.Apply)
	})
}

// RemoveSkill removes the skill with id.
func (s *Store) RemoveSkill(id string) {
	s.commit(func(d *types.ResumeData) {
		d.Skills = removeRecord(d.Skills, id)
	})
}

// UpdatePersonalInfo merges patch into the personal info block.
func (s *Store) UpdatePersonalInfo(patch types.PersonalInfoPatch) {
	s.commit(func(d *types.ResumeData) {
		d.PersonalInfo = patch.Apply(d.PersonalInfo)
	})
}

// SetTemplate selects the template. Unknown ids are kept; renderers fall back to modern.
func (s *Store) SetTemplate(id types.TemplateID) {
	s.commit(func(d *types.ResumeData) {
		d.Template = id
	})
}

// SetSectionOrder replaces the section order wholesale without validating it.
func (s *Store) SetSectionOrder(order []types.Section) {
	order = append([]types.Section(nil), order...)
	s.commit(func(d *types.ResumeData) {
		d.SectionOrder = order
	})
}

// MoveSection moves the content section at from to to in the current order.
// Indexes refer to the order with the design marker excluded.
func (s *Store) MoveSection(from, to int) error {
	return s.tryCommit(func(d *types.ResumeData) error {
		next, err := types.MoveSection(d.SectionOrder, from, to)
		if err != nil {
			return err
		}
		d.SectionOrder = next
		return nil
	})
}

// UpdateDesign merges patch into the design settings.
func (s *Store) UpdateDesign(patch types.DesignPatch) {
	s.commit(func(d *types.ResumeData) {
		d.Design = patch.Apply(d.Design)
	})
}

// SetResumeData replaces the whole aggregate. Missing substructures are backfilled.
func (s *Store) SetResumeData(data types.ResumeData) {
	data = types.WithDefaults(data.Clone())
	s.commit(func(d *types.ResumeData) {
		*d = data
	})
}

// UpdateResumeData applies fn to a copy of the aggregate and adopts the result.
// fn runs under the store lock and must not call back into the Store.
func (s *Store) UpdateResumeData(fn func(types.ResumeData) types.ResumeData) {
	s.commit(func(d *types.ResumeData) {
		*d = types.WithDefaults(fn(*d))
	})
}
