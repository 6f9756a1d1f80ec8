package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitCategoryUnmarshal(t *testing.T) {
	for _, c := range FitCategories {
		var got FitCategory
		data, _ := json.Marshal(string(c))
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, c, got)
	}

	var got FitCategory
	err := json.Unmarshal([]byte(`"Perfect Candidate"`), &got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFitCategory))

	err = json.Unmarshal([]byte(`"good fit"`), &got)
	assert.True(t, errors.Is(err, ErrUnknownFitCategory), "matching is case-sensitive")

	err = json.Unmarshal([]byte(`3`), &got)
	assert.Error(t, err)
}

func TestJobMatchResultValidate(t *testing.T) {
	result := JobMatchResult{FitCategory: FitStrongMatch, Recommendation: "Apply."}
	require.NoError(t, result.Validate())
	assert.NotNil(t, result.MatchedSkills)
	assert.NotNil(t, result.MissingSkills)

	missingTier := JobMatchResult{Recommendation: "Apply."}
	assert.ErrorIs(t, missingTier.Validate(), ErrUnknownFitCategory)

	noRecommendation := JobMatchResult{FitCategory: FitGoodFit}
	assert.Error(t, noRecommendation.Validate())
}

func TestNewAnalysisResult(t *testing.T) {
	outputs := map[string]string{"resume": "text"}
	for _, key := range AnalysisKeys {
		outputs[key] = key + " output"
	}

	result, missing := NewAnalysisResult(outputs)
	require.Empty(t, missing)
	assert.Equal(t, "summary output", result.Summary)
	assert.Equal(t, "spelling output", result.Spelling)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, len(AnalysisKeys))
	for _, key := range AnalysisKeys {
		assert.Contains(t, decoded, key)
	}

	delete(outputs, KeyRating)
	result, missing = NewAnalysisResult(outputs)
	assert.Nil(t, result)
	assert.Equal(t, []string{KeyRating}, missing)
}

func TestConversationCloneIsIndependent(t *testing.T) {
	conv := &Conversation{UserID: "u1", History: []ChatTurn{{Role: RoleUser, Content: "hi"}}}

	cp := conv.Clone()
	cp.AppendExchange("second", "reply")

	assert.Len(t, conv.History, 1)
	assert.Len(t, cp.History, 3)
	assert.Equal(t, RoleAssistant, cp.History[2].Role)
}
