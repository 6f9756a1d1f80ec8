package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"resumeai/resume-assistant/internal/logger"
)

// SequentialPipeline runs prompt steps in declared order against a shared set
// of named values and collects each completion under the step's output key.
type SequentialPipeline struct {
	client         CompletionClient
	inputVariables []string
	steps          []*PromptTemplate
}

// NewSequentialPipeline checks that every step only consumes values that are
// pipeline inputs or outputs of earlier steps, and that output keys are unique.
func NewSequentialPipeline(client CompletionClient, inputVariables []string, steps ...*PromptTemplate) (*SequentialPipeline, error) {
	if client == nil {
		return nil, errors.New("pipeline requires a completion client")
	}
	if len(steps) == 0 {
		return nil, errors.New("pipeline requires at least one step")
	}

	available := slices.Clone(inputVariables)
	for _, step := range steps {
		for _, name := range step.InputVariables {
			if !slices.Contains(available, name) {
				return nil, fmt.Errorf("step %q consumes %q which no earlier step or input provides", step.Name, name)
			}
		}
		if slices.Contains(available, step.OutputKey) {
			return nil, fmt.Errorf("step %q output key %q is already defined", step.Name, step.OutputKey)
		}
		available = append(available, step.OutputKey)
	}

	return &SequentialPipeline{
		client:         client,
		inputVariables: slices.Clone(inputVariables),
		steps:          steps,
	}, nil
}

// OutputKeys lists the keys the pipeline produces, in step order.
func (p *SequentialPipeline) OutputKeys() []string {
	keys := make([]string, len(p.steps))
	for i, step := range p.steps {
		keys[i] = step.OutputKey
	}
	return keys
}

// Run returns the inputs merged with every step output. If any step fails the
// whole run fails with a *StepError and no partial result.
func (p *SequentialPipeline) Run(ctx context.Context, inputs map[string]string) (map[string]string, error) {
	for _, name := range p.inputVariables {
		if _, ok := inputs[name]; !ok {
			return nil, fmt.Errorf("pipeline input %w: %s", ErrMissingField, name)
		}
	}

	values := make(map[string]string, len(inputs)+len(p.steps))
	for k, v := range inputs {
		values[k] = v
	}

	log := logger.Ctx(ctx)
	for i, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return nil, &StepError{Step: step.Name, Err: err}
		}

		prompt, err := step.Render(values)
		if err != nil {
			return nil, &StepError{Step: step.Name, Err: err}
		}

		started := time.Now()
		log.Debug().Str("step", step.Name).Int("index", i+1).Int("total", len(p.steps)).Msg("running pipeline step")

		text, err := p.client.Complete(ctx, CompletionRequest{
			Prompt:      prompt,
			Temperature: step.Temperature,
		})
		if err != nil {
			log.Error().Err(err).Str("step", step.Name).Msg("pipeline step failed")
			return nil, &StepError{Step: step.Name, Err: err}
		}

		values[step.OutputKey] = text
		log.Debug().Str("step", step.Name).Dur("took", time.Since(started)).Msg("pipeline step completed")
	}

	for _, key := range p.OutputKeys() {
		if _, ok := values[key]; !ok {
			return nil, fmt.Errorf("pipeline finished without output %q", key)
		}
	}
	return values, nil
}
