package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeai/resume-assistant/internal/logger"
	"resumeai/resume-assistant/internal/models"
)

type AnalyzerService interface {
	// Analyze extracts the resume text and runs every analysis step on it.
	// A document over the page limit fails before any completion call.
	Analyze(ctx context.Context, data []byte) (*models.AnalysisResult, error)
	AnalyzeText(ctx context.Context, resumeText string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	pdfParser PDFParserService
	pipeline  *SequentialPipeline
}

func NewAnalyzerService(client CompletionClient, pdfParser PDFParserService, registry *PromptRegistry) (AnalyzerService, error) {
	steps := make([]*PromptTemplate, 0, len(models.AnalysisKeys))
	for _, key := range models.AnalysisKeys {
		step, err := registry.Get(key)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	pipeline, err := NewSequentialPipeline(client, []string{"resume"}, steps...)
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis pipeline: %w", err)
	}

	return &analyzerService{
		pdfParser: pdfParser,
		pipeline:  pipeline,
	}, nil
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(ctx context.Context, data []byte) (*models.AnalysisResult, error) {
	content, err := a.pdfParser.ExtractText(data)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeText(ctx, content.Text)
}

// AnalyzeText implements AnalyzerService.
func (a *analyzerService) AnalyzeText(ctx context.Context, resumeText string) (*models.AnalysisResult, error) {
	ctx = logger.WithFields(ctx, map[string]any{"run_id": uuid.NewString()})
	log := logger.Ctx(ctx)

	started := time.Now()
	log.Info().Msg("🔄 starting resume analysis")

	outputs, err := a.pipeline.Run(ctx, map[string]string{"resume": resumeText})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	result, missing := models.NewAnalysisResult(outputs)
	if len(missing) > 0 {
		return nil, fmt.Errorf("analysis is missing outputs %v", missing)
	}

	log.Info().Dur("took", time.Since(started)).Msg("✅ resume analysis completed")
	return result, nil
}
