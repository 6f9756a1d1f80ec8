package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"resumeai/resume-assistant/internal/models"
	"resumeai/resume-assistant/internal/services"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <resume.pdf>",
	Short: "Rewrite a resume as Markdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	rewritten, err := services.NewRewriteService(rt.client, rt.promptBuilder).Rewrite(ctx, content.Text)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(models.RewriteResponse{RewrittenResume: rewritten})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rewritten)
	return err
}
