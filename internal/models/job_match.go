package models

import "errors"

type JobMatchResult struct {
	FitCategory    FitCategory `json:"fit_category"`
	MatchedSkills  []string    `json:"matched_skills"`
	MissingSkills  []string    `json:"missing_skills"`
	Recommendation string      `json:"recommendation"`
}

// Validate checks fields that decoding alone does not enforce. A payload
// without fit_category decodes to the zero value and must be rejected.
func (r *JobMatchResult) Validate() error {
	if !r.FitCategory.Valid() {
		return ErrUnknownFitCategory
	}
	if r.Recommendation == "" {
		return errors.New("recommendation is empty")
	}
	if r.MatchedSkills == nil {
		r.MatchedSkills = []string{}
	}
	if r.MissingSkills == nil {
		r.MissingSkills = []string{}
	}
	return nil
}
