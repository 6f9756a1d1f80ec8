package services

import (
	"context"
	"fmt"
	"strings"
)

type RewriteService interface {
	// Rewrite returns an improved version of the resume formatted as Markdown.
	Rewrite(ctx context.Context, resumeText string) (string, error)
}

type rewriteService struct {
	client        CompletionClient
	promptBuilder *PromptBuilder
}

func NewRewriteService(client CompletionClient, promptBuilder *PromptBuilder) RewriteService {
	return &rewriteService{
		client:        client,
		promptBuilder: promptBuilder,
	}
}

// Rewrite implements RewriteService.
func (r *rewriteService) Rewrite(ctx context.Context, resumeText string) (string, error) {
	prompt, temperature, err := r.promptBuilder.BuildRewritePrompt(resumeText)
	if err != nil {
		return "", err
	}

	text, err := r.client.Complete(ctx, CompletionRequest{
		Prompt:      prompt,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to rewrite resume: %w", err)
	}

	// Models sometimes wrap the document in a ```markdown block despite the prompt.
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```markdown") {
		text = strings.TrimSuffix(strings.TrimPrefix(text, "```markdown"), "```")
	}
	return strings.TrimSpace(text), nil
}
