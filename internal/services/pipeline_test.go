package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeai/resume-assistant/internal/models"
	"resumeai/resume-assistant/internal/services"
)

func analysisSteps(t *testing.T) []*services.PromptTemplate {
	t.Helper()
	registry, err := services.DefaultPromptRegistry()
	require.NoError(t, err)

	steps := make([]*services.PromptTemplate, 0, len(models.AnalysisKeys))
	for _, key := range models.AnalysisKeys {
		step, err := registry.Get(key)
		require.NoError(t, err)
		steps = append(steps, step)
	}
	return steps
}

func TestSequentialPipelineRun(t *testing.T) {
	client := &scriptedClient{}
	pipeline, err := services.NewSequentialPipeline(client, []string{"resume"}, analysisSteps(t)...)
	require.NoError(t, err)
	assert.Equal(t, models.AnalysisKeys, pipeline.OutputKeys())

	out, err := pipeline.Run(context.Background(), map[string]string{"resume": "Jane Doe"})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", out["resume"])
	for i, key := range models.AnalysisKeys {
		assert.Equal(t, "reply "+string(rune('1'+i)), out[key], key)
	}
	assert.Len(t, out, len(models.AnalysisKeys)+1)

	calls := client.calls()
	require.Len(t, calls, len(models.AnalysisKeys))
	for _, req := range calls {
		assert.Contains(t, req.Prompt, "Jane Doe")
		assert.Empty(t, req.System)
		assert.Empty(t, req.History)
	}
	assert.Contains(t, calls[1].Prompt, "Overall Rating", "rating runs second")
	assert.Contains(t, calls[7].Prompt, "spelling", "spelling runs last")
}

func TestSequentialPipelineStepFailure(t *testing.T) {
	upstream := errors.New("upstream unavailable")
	client := &scriptedClient{respond: func(call int, req services.CompletionRequest) (string, error) {
		if call == 3 {
			return "", upstream
		}
		return "ok", nil
	}}
	pipeline, err := services.NewSequentialPipeline(client, []string{"resume"}, analysisSteps(t)...)
	require.NoError(t, err)

	out, err := pipeline.Run(context.Background(), map[string]string{"resume": "Jane Doe"})

	require.Error(t, err)
	assert.Nil(t, out, "no partial result")
	assert.True(t, errors.Is(err, upstream))

	var stepErr *services.StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, models.KeyPersonalInfo, stepErr.Step)
	assert.Len(t, client.calls(), 3, "later steps do not run")
}

func TestSequentialPipelineMissingInput(t *testing.T) {
	client := &scriptedClient{}
	pipeline, err := services.NewSequentialPipeline(client, []string{"resume"}, analysisSteps(t)...)
	require.NoError(t, err)

	_, err = pipeline.Run(context.Background(), map[string]string{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrMissingField))
	assert.Empty(t, client.calls())
}

func TestSequentialPipelineCancelled(t *testing.T) {
	client := &scriptedClient{}
	pipeline, err := services.NewSequentialPipeline(client, []string{"resume"}, analysisSteps(t)...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.Run(ctx, map[string]string{"resume": "Jane Doe"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, client.calls())
}

func TestNewSequentialPipelineValidation(t *testing.T) {
	registry, err := services.LoadPromptRegistry([]byte(`
templates:
  - name: summary
    output_key: summary
    input_variables: [resume]
    template: "Summarize {{.resume}}"
  - name: critique
    output_key: critique
    input_variables: [summary]
    template: "Critique {{.summary}}"
  - name: again
    output_key: summary
    input_variables: [resume]
    template: "Again {{.resume}}"
`))
	require.NoError(t, err)
	summary, _ := registry.Get("summary")
	critique, _ := registry.Get("critique")
	again, _ := registry.Get("again")
	client := &scriptedClient{}

	_, err = services.NewSequentialPipeline(client, []string{"resume"}, critique, summary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `consumes "summary"`)

	_, err = services.NewSequentialPipeline(client, []string{"resume"}, summary, again)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")

	_, err = services.NewSequentialPipeline(client, []string{"resume"})
	require.Error(t, err)

	pipeline, err := services.NewSequentialPipeline(client, []string{"resume"}, summary, critique)
	require.NoError(t, err)
	out, err := pipeline.Run(context.Background(), map[string]string{"resume": "Jane"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(client.calls()[1].Prompt, "Critique reply 1"), "later steps may consume earlier outputs")
	assert.Equal(t, "reply 2", out["critique"])
}
