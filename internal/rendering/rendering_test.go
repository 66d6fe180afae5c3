package rendering

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-craft/internal/types"
)

func sampleResume() types.ResumeData {
	d := types.DefaultResumeData()
	d.PersonalInfo = types.PersonalInfo{
		FullName: "Ada Lovelace",
		JobTitle: "Analyst",
		Email:    "ada@example.com",
		Location: "London",
		Summary:  "First programmer.",
	}
	d.Experience = []types.Experience{{
		ID: "e1", Company: "Acme", Position: "Engineer", StartDate: "2020-01", EndDate: "2021-01", Current: true,
		Description: "Built the engine.",
	}}
	d.Education = []types.Education{{ID: "ed1", Institution: "Cambridge", Degree: "BSc", Field: "Maths", GPA: "4.0"}}
	d.Skills = []types.Skill{{ID: "s1", Name: "Go", Level: types.SkillExpert}}
	d.Languages = []types.Language{{ID: "l1", Name: "French", Proficiency: types.ProficiencyFluent}}
	return d
}

func renderDoc(t *testing.T, r Renderer, data types.ResumeData) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, data))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func sectionKeys(sel *goquery.Selection) []string {
	var keys []string
	sel.Find("section").Each(func(_ int, s *goquery.Selection) {
		keys = append(keys, s.AttrOr("data-section", ""))
	})
	return keys
}

func TestPartition(t *testing.T) {
	zones := []Zone{
		{Name: "sidebar", Sections: []types.Section{types.SectionSkills, types.SectionLanguages}},
		{Name: "main", Sections: []types.Section{types.SectionExperience, types.SectionEducation}},
	}

	tests := []struct {
		name  string
		order []types.Section
		want  [][]types.Section
	}{
		{
			name:  "keeps relative order per zone",
			order: []types.Section{types.SectionLanguages, types.SectionEducation, types.SectionSkills, types.SectionExperience},
			want: [][]types.Section{
				{types.SectionLanguages, types.SectionSkills},
				{types.SectionEducation, types.SectionExperience},
			},
		},
		{
			name:  "drops sections no zone accepts and the design marker",
			order: []types.Section{types.SectionProjects, types.SectionSkills, types.SectionDesign},
			want:  [][]types.Section{{types.SectionSkills}, nil},
		},
		{
			name:  "duplicates placed once",
			order: []types.Section{types.SectionSkills, types.SectionSkills},
			want:  [][]types.Section{{types.SectionSkills}, nil},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Partition(tt.order, zones))
		})
	}
}

func TestNewRegistry_HasEveryTemplate(t *testing.T) {
	r := NewRegistry()
	infos := r.Templates()
	require.Len(t, infos, len(types.TemplateIDs))
	for i, id := range types.TemplateIDs {
		assert.Equal(t, id, infos[i].ID)
		assert.Equal(t, id.DisplayName(), infos[i].Name)

		_, used, err := r.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, id, used)
	}
}

func TestRegistry_UnknownTemplateFallsBackToModern(t *testing.T) {
	r := NewRegistry()
	_, used, err := r.Lookup("neon")
	require.NoError(t, err)
	assert.Equal(t, types.TemplateModern, used)

	data := sampleResume()
	data.Template = "neon"
	doc := renderDoc(t, r, data)
	assert.Equal(t, "modern", doc.Find(".page").AttrOr("data-template", ""))
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(types.TemplateMinimal, RendererFunc(func(w io.Writer, _ types.ResumeData) error {
		_, err := io.WriteString(w, "custom")
		return err
	}))

	var buf bytes.Buffer
	data := types.DefaultResumeData()
	data.Template = types.TemplateMinimal
	require.NoError(t, r.Render(&buf, data))
	assert.Equal(t, "custom", buf.String())
	assert.Len(t, r.Templates(), len(types.TemplateIDs))
}

func TestRegistry_EmptyRegistryErrors(t *testing.T) {
	r := &Registry{renderers: map[types.TemplateID]Renderer{}, fallback: types.TemplateModern}
	err := r.Render(io.Discard, types.DefaultResumeData())
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRender_EveryTemplate(t *testing.T) {
	r := NewRegistry()
	for _, id := range types.TemplateIDs {
		t.Run(string(id), func(t *testing.T) {
			data := sampleResume()
			data.Template = id
			doc := renderDoc(t, r, data)

			assert.Equal(t, string(id), doc.Find(".page").AttrOr("data-template", ""))
			assert.Equal(t, "Ada Lovelace", doc.Find("h1.name").Text())
			assert.Contains(t, doc.Find(".contacts").Text(), "ada@example.com")
			assert.Equal(t, 1, doc.Find(`section[data-section="experience"]`).Length())
		})
	}
}

func TestRender_HeaderPlaceholders(t *testing.T) {
	doc := renderDoc(t, NewRegistry(), types.DefaultResumeData())

	assert.Equal(t, "Your Name", doc.Find("h1.name").Text())
	assert.Equal(t, "Job Title", doc.Find(".job-title").Text())
	assert.Equal(t, 0, doc.Find(".contacts").Length())
	assert.Equal(t, 0, doc.Find("section").Length(), "empty collections render nothing")
}

func TestRender_SummaryControlsPersonalInfoSection(t *testing.T) {
	data := sampleResume()
	data.Template = types.TemplateMinimal
	r := NewRegistry()

	doc := renderDoc(t, r, data)
	assert.Equal(t, "First programmer.", strings.TrimSpace(doc.Find(`section[data-section="personalInfo"] p`).Text()))

	data.PersonalInfo.Summary = ""
	doc = renderDoc(t, r, data)
	assert.Equal(t, 0, doc.Find(`section[data-section="personalInfo"]`).Length())
	assert.Equal(t, "Ada Lovelace", doc.Find("h1.name").Text())
}

func TestRender_FollowsSectionOrder(t *testing.T) {
	data := sampleResume()
	data.Template = types.TemplateMinimal
	data.SectionOrder = []types.Section{
		types.SectionSkills, types.SectionLanguages, types.SectionExperience,
		types.SectionEducation, types.SectionPersonalInfo, types.SectionDesign,
	}

	doc := renderDoc(t, NewRegistry(), data)
	assert.Equal(t, []string{"skills", "languages", "experience", "education", "personalInfo"}, sectionKeys(doc.Selection))
}

func TestRender_ZonesSplitSections(t *testing.T) {
	data := sampleResume()
	data.Template = types.TemplateModern

	doc := renderDoc(t, NewRegistry(), data)
	assert.Equal(t, []string{"skills", "languages"}, sectionKeys(doc.Find(`[data-zone="sidebar"]`)))
	assert.Equal(t, []string{"personalInfo", "experience", "education"}, sectionKeys(doc.Find(`[data-zone="main"]`)))
	assert.Equal(t, "Profile", doc.Find(`section[data-section="personalInfo"] h2`).Text())
}

func TestRender_SectionOutsideZonesIsSkipped(t *testing.T) {
	data := sampleResume()
	data.Template = types.TemplateSimple

	doc := renderDoc(t, NewRegistry(), data)
	assert.Equal(t, 0, doc.Find(`section[data-section="languages"]`).Length())
	assert.Equal(t, 1, doc.Find(`section[data-section="skills"]`).Length())
}

func TestRender_EntryDetails(t *testing.T) {
	data := sampleResume()
	data.Template = types.TemplateTechnical
	data.Projects = []types.Project{{ID: "p1", Name: "Engine", Link: "https://example.com/engine", Technologies: "Brass"}}

	doc := renderDoc(t, NewRegistry(), data)

	exp := doc.Find(`section[data-section="experience"] .entry`)
	assert.Equal(t, "Engineer", exp.Find("h3").Text())
	assert.Equal(t, "2020-01 – Present", exp.Find(".meta").Text())
	assert.Equal(t, "Acme", strings.TrimSpace(exp.Find(".sub").Text()))

	edu := doc.Find(`section[data-section="education"] .entry`)
	assert.Equal(t, "BSc in Maths", edu.Find("h3").Text())
	assert.Contains(t, edu.Find(".sub").Text(), "GPA: 4.0")

	assert.Equal(t, "Expert", doc.Find(`section[data-section="skills"] .meta`).Text())
	assert.Equal(t, "Tech Stack", doc.Find(`section[data-section="skills"] h2`).Text())
	assert.Equal(t, "https://example.com/engine", doc.Find(`section[data-section="projects"] a`).AttrOr("href", ""))
}

func TestRender_EscapesUserContent(t *testing.T) {
	data := sampleResume()
	data.PersonalInfo.FullName = "<script>alert(1)</script>"
	data.Projects = []types.Project{{ID: "p1", Name: "x", Link: "javascript:alert(1)"}}

	var buf bytes.Buffer
	require.NoError(t, NewRegistry().Render(&buf, data))
	out := buf.String()
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.NotContains(t, out, `href="javascript:`)
}

func TestRender_DesignToCSS(t *testing.T) {
	data := sampleResume()
	data.Design = types.Design{Font: "Lora", AccentColor: "#336699", Margins: types.MarginsRelaxed}

	var buf bytes.Buffer
	require.NoError(t, NewRegistry().Render(&buf, data))
	out := buf.String()
	assert.Contains(t, out, "#336699")
	assert.Contains(t, out, "Lora")
	assert.Contains(t, out, "56px")
}

func TestRender_UnknownEnumsFallBack(t *testing.T) {
	data := sampleResume()
	data.Template = types.TemplateCompact
	data.Skills[0].Level = "Wizard"
	data.Languages[0].Proficiency = ""
	data.Design.Margins = "huge"

	var buf bytes.Buffer
	require.NoError(t, NewRegistry().Render(&buf, data))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "Intermediate", doc.Find(`section[data-section="skills"] .meta`).Text())
	assert.Equal(t, "Intermediate", doc.Find(`section[data-section="languages"] .meta`).Text())
	assert.Contains(t, doc.Find("style").Text(), "40px")
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	data := sampleResume()
	before := data.Clone()
	require.NoError(t, NewRegistry().Render(io.Discard, data))
	assert.Equal(t, before, data)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteErrorIsRenderError(t *testing.T) {
	err := NewRegistry().Render(failingWriter{}, sampleResume())
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Contains(t, err.Error(), "disk full")
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "", formatDateRange("", ""))
	assert.Equal(t, "2020", formatDateRange("2020", ""))
	assert.Equal(t, "Present", formatDateRange("", "Present"))
	assert.Equal(t, "2020 – 2021", formatDateRange("2020", "2021"))
}
