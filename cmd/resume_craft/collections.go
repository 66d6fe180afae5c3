package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-craft/internal/store"
	"github.com/jonathan/resume-craft/internal/types"
)

// collection binds one record list of the resume to its store operations.
type collection struct {
	section types.Section
	patch   func() any
	add     func(*store.Store) string
	update  func(s *store.Store, id string, patch any)
	remove  func(s *store.Store, id string)
	ids     func(types.ResumeData) []string
}

var collections = map[string]collection{
	"education": {
		section: types.SectionEducation,
		patch:   func() any { return &types.EducationPatch{} },
		add:     (*store.Store).AddEducation,
		update: func(s *store.Store, id string, p any) {
			s.UpdateEducation(id, *p.(*types.EducationPatch))
		},
		remove: (*store.Store).RemoveEducation,
		ids:    func(d types.ResumeData) []string { return recordIDs(d.Education) },
	},
	"experience": {
		section: types.SectionExperience,
		patch:   func() any { return &types.ExperiencePatch{} },
		add:     (*store.Store).AddExperience,
		update: func(s *store.Store, id string, p any) {
			s.UpdateExperience(id, *p.(*types.ExperiencePatch))
		},
		remove: (*store.Store).RemoveExperience,
		ids:    func(d types.ResumeData) []string { return recordIDs(d.Experience) },
	},
	"projects": {
		section: types.SectionProjects,
		patch:   func() any { return &types.ProjectPatch{} },
		add:     (*store.Store).AddProject,
		update: func(s *store.Store, id string, p any) {
			s.UpdateProject(id, *p.(*types.ProjectPatch))
		},
		remove: (*store.Store).RemoveProject,
		ids:    func(d types.ResumeData) []string { return recordIDs(d.Projects) },
	},
	"certifications": {
		section: types.SectionCertifications,
		patch:   func() any { return &types.CertificationPatch{} },
		add:     (*store.Store).AddCertification,
		update: func(s *store.Store, id string, p any) {
			s.UpdateCertification(id, *p.(*types.CertificationPatch))
		},
		remove: (*store.Store).RemoveCertification,
		ids:    func(d types.ResumeData) []string { return recordIDs(d.Certifications) },
	},
	"languages": {
		section: types.SectionLanguages,
		patch:   func() any { return &types.LanguagePatch{} },
		add:     (*store.Store).AddLanguage,
		update: func(s *store.Store, id string, p any) {
			s.UpdateLanguage(id, *p.(*types.LanguagePatch))
		},
		remove: (*store.Store).RemoveLanguage,
		ids:    func(d types.ResumeData) []string { return recordIDs(d.Languages) },
	},
	"skills": {
		section: types.SectionSkills,
		patch:   func() any { return &types.SkillPatch{} },
		add:     (*store.Store).AddSkill,
		update: func(s *store.Store, id string, p any) {
			s.UpdateSkill(id, *p.(*types.SkillPatch))
		},
		remove: (*store.Store).RemoveSkill,
		ids:    func(d types.ResumeData) []string { return recordIDs(d.Skills) },
	},
}

func recordIDs[T types.Record](list []T) []string {
	ids := make([]string, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.RecordID())
	}
	return ids
}

// lookupCollection accepts the plural name and the singular form ("skill").
func lookupCollection(name string) (collection, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := collections[name]; ok {
		return c, nil
	}
	if c, ok := collections[name+"s"]; ok {
		return c, nil
	}
	return collection{}, fmt.Errorf("unknown collection %q (expected one of: %s)", name, strings.Join(collectionNames(), ", "))
}

func collectionNames() []string {
	names := make([]string, 0, len(collections))
	for name := range collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveID expands an id prefix, as printed by the list views, to the full id.
func resolveID(ids []string, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("record id is empty")
	}
	var matches []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no record matches id %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id %q is ambiguous (%d matches)", prefix, len(matches))
	}
}
