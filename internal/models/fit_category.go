package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownFitCategory = errors.New("unknown fit category")

// FitCategory is the qualitative tier of a resume-to-job match.
type FitCategory string

const (
	FitUnderqualified    FitCategory = "Underqualified"
	FitSomewhatQualified FitCategory = "Somewhat Qualified"
	FitGoodFit           FitCategory = "Good Fit"
	FitStrongMatch       FitCategory = "Strong Match"
	FitIdealMatch        FitCategory = "Ideal Match"
)

// FitCategories lists every tier from weakest to strongest.
var FitCategories = []FitCategory{
	FitUnderqualified,
	FitSomewhatQualified,
	FitGoodFit,
	FitStrongMatch,
	FitIdealMatch,
}

func ParseFitCategory(s string) (FitCategory, error) {
	for _, c := range FitCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFitCategory, s)
}

func (c FitCategory) Valid() bool {
	_, err := ParseFitCategory(string(c))
	return err == nil
}

func (c *FitCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fit_category must be a string: %w", err)
	}
	parsed, err := ParseFitCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
