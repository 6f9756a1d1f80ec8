package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"resumeai/resume-assistant/internal/services"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the prompt templates compiled into the binary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := services.DefaultPromptRegistry()
		if err != nil {
			return err
		}
		return printPrompts(cmd.OutOrStdout(), registry, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(promptsCmd)
}

type promptInfo struct {
	Name           string   `json:"name"`
	InputVariables []string `json:"input_variables"`
	OutputKey      string   `json:"output_key"`
	Temperature    float32  `json:"temperature"`
}

func printPrompts(w io.Writer, registry *services.PromptRegistry, asJSON bool) error {
	infos := make([]promptInfo, 0, len(registry.Names()))
	for _, name := range registry.Names() {
		t, err := registry.Get(name)
		if err != nil {
			return err
		}
		infos = append(infos, promptInfo{
			Name:           t.Name,
			InputVariables: t.InputVariables,
			OutputKey:      t.OutputKey,
			Temperature:    t.Temperature,
		})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, info := range infos {
		if _, err := fmt.Fprintf(w, "%-16s -> %-18s inputs=%s temperature=%.1f\n",
			info.Name, info.OutputKey, strings.Join(info.InputVariables, ","), info.Temperature); err != nil {
			return err
		}
	}
	return nil
}
