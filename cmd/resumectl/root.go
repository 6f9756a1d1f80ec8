package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resumeai/resume-assistant/internal/config"
	"resumeai/resume-assistant/internal/logger"
	"resumeai/resume-assistant/internal/services"
)

var (
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Run resume analysis, job matching and rewriting from the command line",
	Long: `resumectl runs the resume assistant's analysis pipeline, job matcher and
rewriter against a local PDF without going through the HTTP API.

It reads the same environment (.env) as the server: LLM_PROVIDER, the provider
API key, LLM_MODEL, MAX_PAGES, MAX_FILE_SIZE and the retry settings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger.Init(logger.Config{Level: level, Format: "pretty", Output: os.Stderr})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline progress to stderr")
}

// runtime holds what every subcommand needs.
type runtime struct {
	cfg           *config.Config
	client        services.CompletionClient
	registry      *services.PromptRegistry
	promptBuilder *services.PromptBuilder
	pdfParser     services.PDFParserService
}

func newRuntime(ctx context.Context) (*runtime, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	client, err := services.NewCompletionClient(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	registry, err := services.DefaultPromptRegistry()
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:           cfg,
		client:        client,
		registry:      registry,
		promptBuilder: services.NewPromptBuilder(registry),
		pdfParser:     services.NewPDFParserService(cfg.Upload.MaxPages),
	}, nil
}

// readResumeFile applies the same checks as an HTTP upload.
func readResumeFile(path string, maxFileSize int64) ([]byte, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, fmt.Errorf("%w: %q", services.ErrInvalidFileType, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, services.ErrEmptyFile
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("%w: max size is %d bytes", services.ErrFileTooLarge, maxFileSize)
	}

	return os.ReadFile(path)
}
