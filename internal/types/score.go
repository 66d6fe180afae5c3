package types

// Completion score weights. They sum to exactly 100.
const (
	scoreFullName   = 10
	scoreEmail      = 10
	scoreJobTitle   = 10
	scoreSummary    = 10
	scoreExperience = 20
	scoreEducation  = 15
	scoreSkills     = 15
	scoreProjects   = 10
)

// CompletionScore returns a 0-100 heuristic of how filled-out d is.
// It is derived on demand and never persisted.
func CompletionScore(d ResumeData) int {
	score := 0
	p := d.PersonalInfo
	if p.FullName != "" {
		score += scoreFullName
	}
	if p.Email != "" {
		score += scoreEmail
	}
	if p.JobTitle != "" {
		score += scoreJobTitle
	}
	if p.Summary != "" {
		score += scoreSummary
	}
	if len(d.Experience) > 0 {
		score += scoreExperience
	}
	if len(d.Education) > 0 {
		score += scoreEducation
	}
	if len(d.Skills) > 0 {
		score += scoreSkills
	}
	if len(d.Projects) > 0 {
		score += scoreProjects
	}
	return min(max(score, 0), 100)
}
