package types

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Patches are partial updates: a nil field leaves the target untouched.

// PersonalInfoPatch is a partial update of PersonalInfo
type PersonalInfoPatch struct {
	FullName *string `json:"fullName,omitempty"`
	JobTitle *string `json:"jobTitle,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Summary  *string `json:"summary,omitempty"`
}

// Apply merges the patch into p
func (pt PersonalInfoPatch) Apply(p PersonalInfo) PersonalInfo {
	set(&p.FullName, pt.FullName)
	set(&p.JobTitle, pt.JobTitle)
	set(&p.Email, pt.Email)
	set(&p.Phone, pt.Phone)
	set(&p.Location, pt.Location)
	set(&p.Website, pt.Website)
	set(&p.LinkedIn, pt.LinkedIn)
	set(&p.GitHub, pt.GitHub)
	set(&p.Summary, pt.Summary)
	return p
}

// EducationPatch is a partial update of Education
type EducationPatch struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	GPA         *string `json:"gpa,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Apply merges the patch into e
func (pt EducationPatch) Apply(e Education) Education {
	set(&e.Institution, pt.Institution)
	set(&e.Degree, pt.Degree)
	set(&e.Field, pt.Field)
	set(&e.StartDate, pt.StartDate)
	set(&e.EndDate, pt.EndDate)
	set(&e.GPA, pt.GPA)
	set(&e.Description, pt.Description)
	return e
}

// ExperiencePatch is a partial update of Experience
type ExperiencePatch struct {
	Company     *string `json:"company,omitempty"`
	Position    *string `json:"position,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Apply merges the patch into e
func (pt ExperiencePatch) Apply(e Experience) Experience {
	set(&e.Company, pt.Company)
	set(&e.Position, pt.Position)
	set(&e.Location, pt.Location)
	set(&e.StartDate, pt.StartDate)
	set(&e.EndDate, pt.EndDate)
	set(&e.Current, pt.Current)
	set(&e.Description, pt.Description)
	return e
}

// ProjectPatch is a partial update of Project
type ProjectPatch struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Technologies *string `json:"technologies,omitempty"`
	Link         *string `json:"link,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
}

// Apply merges the patch into p
func (pt ProjectPatch) Apply(p Project) Project {
	set(&p.Name, pt.Name)
	set(&p.Description, pt.Description)
	set(&p.Technologies, pt.Technologies)
	set(&p.Link, pt.Link)
	set(&p.StartDate, pt.StartDate)
	set(&p.EndDate, pt.EndDate)
	return p
}

// CertificationPatch is a partial update of Certification
type CertificationPatch struct {
	Name   *string `json:"name,omitempty"`
	Issuer *string `json:"issuer,omitempty"`
	Date   *string `json:"date,omitempty"`
	Link   *string `json:"link,omitempty"`
}

// Apply merges the patch into c
func (pt CertificationPatch) Apply(c Certification) Certification {
	set(&c.Name, pt.Name)
	set(&c.Issuer, pt.Issuer)
	set(&c.Date, pt.Date)
	set(&c.Link, pt.Link)
	return c
}

// LanguagePatch is a partial update of Language
type LanguagePatch struct {
	Name        *string      `json:"name,omitempty"`
	Proficiency *Proficiency `json:"proficiency,omitempty"`
}

// Apply merges the patch into l
func (pt LanguagePatch) Apply(l Language) Language {
	set(&l.Name, pt.Name)
	set(&l.Proficiency, pt.Proficiency)
	return l
}

// SkillPatch is a partial update of Skill
type SkillPatch struct {
	Name     *string     `json:"name,omitempty"`
	Level    *SkillLevel `json:"level,omitempty"`
	Category *string     `json:"category,omitempty"`
}

// Apply merges the patch into s
func (pt SkillPatch) Apply(s Skill) Skill {
	set(&s.Name, pt.Name)
	set(&s.Level, pt.Level)
	set(&s.Category, pt.Category)
	return s
}

// DesignPatch is a partial update of Design
type DesignPatch struct {
	Font        *string  `json:"font,omitempty"`
	AccentColor *string  `json:"accentColor,omitempty"`
	Margins     *Margins `json:"margins,omitempty"`
}

// Apply merges the patch into d
func (pt DesignPatch) Apply(d Design) Design {
	set(&d.Font, pt.Font)
	set(&d.AccentColor, pt.AccentColor)
	set(&d.Margins, pt.Margins)
	return d
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Ptr returns a pointer to v. Handy for building patches.
func Ptr[T any](v T) *T {
	return &v
}

// ParsePatch fills the patch pointed to by dst from "key=value" pairs, where key is
// the field's JSON name. Boolean fields accept anything strconv.ParseBool does.
func ParsePatch(dst any, pairs []string) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("patch target must be a pointer to a struct, got %T", dst)
	}
	target := rv.Elem()
	fields := patchFields(target.Type())

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid field assignment %q: expected key=value", pair)
		}
		key = strings.TrimSpace(key)
		idx, ok := fields[key]
		if !ok {
			return fmt.Errorf("unknown field %q", key)
		}
		field := target.Field(idx)
		elem := reflect.New(field.Type().Elem())
		switch elem.Elem().Kind() {
		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("field %q: invalid boolean %q", key, value)
			}
			elem.Elem().SetBool(b)
		case reflect.String:
			elem.Elem().SetString(value)
		default:
			return fmt.Errorf("field %q: unsupported kind %s", key, elem.Elem().Kind())
		}
		field.Set(elem)
	}
	return nil
}

// PatchFieldNames lists the JSON names a patch type accepts, in declaration order.
func PatchFieldNames(patch any) []string {
	t := reflect.TypeOf(patch)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		names = append(names, jsonName(t.Field(i)))
	}
	return names
}

func patchFields(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type.Kind() != reflect.Pointer {
			continue
		}
		fields[jsonName(f)] = i
	}
	return fields
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}
