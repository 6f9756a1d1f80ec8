package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"resumeai/resume-assistant/internal/models"
	"resumeai/resume-assistant/internal/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf>",
	Short: "Run the full analysis pipeline on a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}

	data, err := readResumeFile(args[0], rt.cfg.Upload.MaxFileSize)
	if err != nil {
		return err
	}

	analyzer, err := services.NewAnalyzerService(rt.client, rt.pdfParser, rt.registry)
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(ctx, data)
	if err != nil {
		return err
	}

	return printAnalysis(cmd.OutOrStdout(), result, jsonOutput)
}

var analysisTitles = map[string]string{
	models.KeySummary:      "Summary",
	models.KeyRating:       "Rating",
	models.KeyPersonalInfo: "Personal Information",
	models.KeyJobRoles:     "Suggested Job Roles",
	models.KeyStrengths:    "Strengths",
	models.KeyCareerTips:   "Career Tips",
	models.KeyImprovements: "Improvements",
	models.KeySpelling:     "Spelling",
}

func printAnalysis(w io.Writer, result *models.AnalysisResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	sections := map[string]string{
		models.KeySummary:      result.Summary,
		models.KeyRating:       result.Rating,
		models.KeyPersonalInfo: result.PersonalInfo,
		models.KeyJobRoles:     result.JobRoles,
		models.KeyStrengths:    result.Strengths,
		models.KeyCareerTips:   result.CareerTips,
		models.KeyImprovements: result.Improvements,
		models.KeySpelling:     result.Spelling,
	}
	for _, key := range models.AnalysisKeys {
		if _, err := fmt.Fprintf(w, "# %s\n\n%s\n\n", analysisTitles[key], sections[key]); err != nil {
			return err
		}
	}
	return nil
}
