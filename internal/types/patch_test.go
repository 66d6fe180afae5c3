package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperiencePatch_Apply(t *testing.T) {
	e := Experience{ID: "x1", Company: "Acme", Position: "Dev", EndDate: "2020"}

	got := ExperiencePatch{Position: Ptr("Engineer"), Current: Ptr(true)}.Apply(e)

	assert.Equal(t, Experience{ID: "x1", Company: "Acme", Position: "Engineer", EndDate: "2020", Current: true}, got)
	assert.Equal(t, "Dev", e.Position, "original value must be untouched")
}

func TestSkillPatch_Apply_OnlyTouchesLevel(t *testing.T) {
	s := Skill{ID: "s1", Name: "Go", Level: SkillBeginner, Category: "Languages"}

	got := SkillPatch{Level: Ptr(SkillExpert)}.Apply(s)

	assert.Equal(t, Skill{ID: "s1", Name: "Go", Level: SkillExpert, Category: "Languages"}, got)
}

func TestPersonalInfoPatch_EmptyString(t *testing.T) {
	p := PersonalInfo{FullName: "Ada", Email: "ada@example.com"}

	got := PersonalInfoPatch{Email: Ptr("")}.Apply(p)

	assert.Equal(t, "Ada", got.FullName)
	assert.Empty(t, got.Email)
}

func TestParsePatch(t *testing.T) {
	var patch ExperiencePatch
	err := ParsePatch(&patch, []string{"company=Acme Corp", "current=true", "description=a=b"})
	require.NoError(t, err)

	require.NotNil(t, patch.Company)
	assert.Equal(t, "Acme Corp", *patch.Company)
	require.NotNil(t, patch.Current)
	assert.True(t, *patch.Current)
	require.NotNil(t, patch.Description)
	assert.Equal(t, "a=b", *patch.Description)
	assert.Nil(t, patch.Position)
}

func TestParsePatch_TypedString(t *testing.T) {
	var patch LanguagePatch
	require.NoError(t, ParsePatch(&patch, []string{"proficiency=Native"}))
	require.NotNil(t, patch.Proficiency)
	assert.Equal(t, ProficiencyNative, *patch.Proficiency)
}

func TestParsePatch_Errors(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  string
	}{
		{"missing equals", []string{"company"}, "expected key=value"},
		{"unknown field", []string{"salary=lots"}, "unknown field"},
		{"bad boolean", []string{"current=maybe"}, "invalid boolean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch ExperiencePatch
			err := ParsePatch(&patch, tt.pairs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	err := ParsePatch(ExperiencePatch{}, nil)
	assert.Error(t, err)
}

func TestPatchFieldNames(t *testing.T) {
	assert.Equal(t, []string{"name", "issuer", "date", "link"}, PatchFieldNames(CertificationPatch{}))
	assert.Equal(t, []string{"font", "accentColor", "margins"}, PatchFieldNames(&DesignPatch{}))
}

func TestIdentity_Validate(t *testing.T) {
	assert.NoError(t, (&Identity{ID: "u1", Email: "ada@example.com"}).Validate())
	assert.NoError(t, (&Identity{ID: "u1"}).Validate())
	assert.Error(t, (&Identity{Email: "ada@example.com"}).Validate())
	assert.Error(t, (&Identity{ID: "u1", Email: "not-an-email"}).Validate())
}

func TestSameIdentity(t *testing.T) {
	assert.True(t, SameIdentity(nil, nil))
	assert.False(t, SameIdentity(&Identity{ID: "a"}, nil))
	assert.True(t, SameIdentity(&Identity{ID: "a"}, &Identity{ID: "a", DisplayName: "A"}))
	assert.False(t, SameIdentity(&Identity{ID: "a"}, &Identity{ID: "b"}))
}
