package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resumeai/resume-assistant/internal/models"
	"resumeai/resume-assistant/internal/services"
)

var jobDescriptionFile string

var matchCmd = &cobra.Command{
	Use:   "match <resume.pdf> --job <job-description.txt>",
	Short: "Score how well a resume fits a job description",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().StringVar(&jobDescriptionFile, "job", "", "File containing the job description (- for stdin)")
	_ = matchCmd.MarkFlagRequired("job")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jobDescription, err := readJobDescription(jobDescriptionFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}

	data, err := readResumeFile(args[0], rt.cfg.Upload.MaxFileSize)
	if err != nil {
		return err
	}
	content, err := rt.pdfParser.ExtractText(data)
	if err != nil {
		return err
	}

	result, err := services.NewJobMatchService(rt.client, rt.promptBuilder).Match(ctx, content.Text, jobDescription)
	if err != nil {
		return err
	}

	return printJobMatch(cmd.OutOrStdout(), result, jsonOutput)
}

func readJobDescription(path string, stdin io.Reader) (string, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", errors.New("job description is empty")
	}
	return text, nil
}

func printJobMatch(w io.Writer, result *models.JobMatchResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Fit: %s\n\n", result.FitCategory)
	sb.WriteString("Matched skills:\n")
	for _, skill := range result.MatchedSkills {
		fmt.Fprintf(&sb, "  + %s\n", skill)
	}
	sb.WriteString("\nMissing skills:\n")
	for _, skill := range result.MissingSkills {
		fmt.Fprintf(&sb, "  - %s\n", skill)
	}
	fmt.Fprintf(&sb, "\n%s\n", result.Recommendation)

	_, err := io.WriteString(w, sb.String())
	return err
}
