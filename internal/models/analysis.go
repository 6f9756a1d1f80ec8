package models

// Output keys produced by the analysis pipeline, in execution order.
const (
	KeySummary      = "summary"
	KeyRating       = "rating"
	KeyPersonalInfo = "personal_info"
	KeyJobRoles     = "job_roles"
	KeyStrengths    = "strengths"
	KeyCareerTips   = "career_tips"
	KeyImprovements = "improvements"
	KeySpelling     = "spelling"
)

var AnalysisKeys = []string{
	KeySummary,
	KeyRating,
	KeyPersonalInfo,
	KeyJobRoles,
	KeyStrengths,
	KeyCareerTips,
	KeyImprovements,
	KeySpelling,
}

type AnalysisResult struct {
	Summary      string `json:"summary"`
	Rating       string `json:"rating"`
	PersonalInfo string `json:"personal_info"`
	JobRoles     string `json:"job_roles"`
	Strengths    string `json:"strengths"`
	CareerTips   string `json:"career_tips"`
	Improvements string `json:"improvements"`
	Spelling     string `json:"spelling"`
}

// NewAnalysisResult copies the pipeline outputs into a result, or reports
// the keys that are missing.
func NewAnalysisResult(outputs map[string]string) (result *AnalysisResult, missing []string) {
	for _, key := range AnalysisKeys {
		if _, ok := outputs[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, missing
	}

	return &AnalysisResult{
		Summary:      outputs[KeySummary],
		Rating:       outputs[KeyRating],
		PersonalInfo: outputs[KeyPersonalInfo],
		JobRoles:     outputs[KeyJobRoles],
		Strengths:    outputs[KeyStrengths],
		CareerTips:   outputs[KeyCareerTips],
		Improvements: outputs[KeyImprovements],
		Spelling:     outputs[KeySpelling],
	}, nil
}
