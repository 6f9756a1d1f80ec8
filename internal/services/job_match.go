package services

import (
	"context"
	"fmt"

	"resumeai/resume-assistant/internal/logger"
	"resumeai/resume-assistant/internal/models"
)

type JobMatchService interface {
	Match(ctx context.Context, resumeText, jobDescription string) (*models.JobMatchResult, error)
}

type jobMatchService struct {
	client        CompletionClient
	promptBuilder *PromptBuilder
}

func NewJobMatchService(client CompletionClient, promptBuilder *PromptBuilder) JobMatchService {
	return &jobMatchService{
		client:        client,
		promptBuilder: promptBuilder,
	}
}

// Match implements JobMatchService. A response that is not valid JSON or whose
// fit_category is outside the known tiers fails with *StructuredParseError.
func (j *jobMatchService) Match(ctx context.Context, resumeText, jobDescription string) (*models.JobMatchResult, error) {
	prompt, temperature, err := j.promptBuilder.BuildJobMatchPrompt(resumeText, jobDescription)
	if err != nil {
		return nil, err
	}

	raw, err := j.client.Complete(ctx, CompletionRequest{
		Prompt:      prompt,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate job match: %w", err)
	}

	var result models.JobMatchResult
	if err := ParseStructured(raw, &result); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("❌ job match response is not valid JSON")
		return nil, err
	}
	if err := result.Validate(); err != nil {
		return nil, &StructuredParseError{Cleaned: StripCodeFences(raw), Err: err}
	}

	logger.Ctx(ctx).Info().
		Str("fit_category", string(result.FitCategory)).
		Int("matched", len(result.MatchedSkills)).
		Int("missing", len(result.MissingSkills)).
		Msg("job match evaluated")
	return &result, nil
}
