// Package types provides type definitions for the resume aggregate and the policies that operate on it.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeData is the aggregate root: all resume content, design choices and layout order for one session.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Skills         []Skill         `json:"skills"`
	Template       TemplateID      `json:"template"`
	SectionOrder   []Section       `json:"sectionOrder"`
	Design         Design          `json:"design"`
}

// PersonalInfo holds the header and contact block. Every field is optional.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Summary  string `json:"summary"`
}

// Education represents one academic entry
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// Experience represents one employment entry.
// When Current is true the end date reads as "Present"; EndDate is kept but not shown.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Project represents a personal or professional project
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// Certification represents a credential or course
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link"`
}

// Language represents a spoken language
type Language struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

// Skill represents a technical or soft skill
type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category"`
}

// Design holds the visual customisation applied on top of a template.
type Design struct {
	Font        string  `json:"font"`
	AccentColor string  `json:"accentColor"`
	Margins     Margins `json:"margins"`
}

// RecordID implements Record
func (e Education) RecordID() string { return e.ID }

// RecordID implements Record
func (e Experience) RecordID() string { return e.ID }

// RecordID implements Record
func (p Project) RecordID() string { return p.ID }

// RecordID implements Record
func (c Certification) RecordID() string { return c.ID }

// RecordID implements Record
func (l Language) RecordID() string { return l.ID }

// RecordID implements Record
func (s Skill) RecordID() string { return s.ID }

// Record is implemented by every collection entry.
type Record interface {
	RecordID() string
}

// Clone returns a copy of d that shares no slice storage with it.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Education = cloneSlice(d.Education)
	out.Experience = cloneSlice(d.Experience)
	out.Projects = cloneSlice(d.Projects)
	out.Certifications = cloneSlice(d.Certifications)
	out.Languages = cloneSlice(d.Languages)
	out.Skills = cloneSlice(d.Skills)
	out.SectionOrder = cloneSlice(d.SectionOrder)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
