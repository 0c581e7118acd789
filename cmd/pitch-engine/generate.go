// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bramblevc/pitch-engine/internal/pipeline"
	"github.com/bramblevc/pitch-engine/internal/render"
	"github.com/bramblevc/pitch-engine/pkg/types"
)

var (
	generateContext string
	generateNotes   string
	generateOutput  string
	generateFormat  string
	generateJSON    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <lp-name>",
	Short: "Research an LP and generate a personalised pitch",
	Long: `Generate researches the named LP through the Perplexity API, then asks
the Claude API for personalised pitch content: opening hook, thesis
framing, tailwinds, portfolio highlights, team spotlight, value-add
framing, anticipated questions, conversation starters, and concerns to
address.

The result is written to stdout, or to a file with --output.`,
	Example: `  pitch-engine generate "Holland & Barrett"
  pitch-engine generate "Verdane" --context "met at a food-tech conference"
  pitch-engine generate "Pension Fund Y" --output pitch.md
  pitch-engine generate "Family Office X" --format pdf --output pitch.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateContext, "context", "c", "", "additional context about the LP (e.g., how you met)")
	generateCmd.Flags().StringVarP(&generateNotes, "notes", "n", "", "internal notes to steer the pitch content")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write the pitch to this file instead of stdout")
	generateCmd.Flags().StringVar(&generateFormat, "format", "markdown", "output format: markdown, json, or pdf")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "shorthand for --format json")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format := types.OutputFormat(generateFormat)
	if generateJSON {
		format = types.OutputJSON
	}
	switch format {
	case types.OutputMarkdown, types.OutputJSON, types.OutputPDF:
	default:
		return fmt.Errorf("unknown output format %q", generateFormat)
	}
	if format == types.OutputPDF && generateOutput == "" {
		return fmt.Errorf("--format pdf requires --output")
	}

	p, err := buildPipeline(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	result, err := p.Run(cmd.Context(), pipeline.Options{
		LPName:  args[0],
		Context: generateContext,
		Notes:   generateNotes,
	})
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case types.OutputJSON:
		data, err = render.JSON(result)
	case types.OutputPDF:
		data, err = render.PDF(p.Fund.Name, result)
	default:
		data = []byte(render.Markdown(p.Fund.Name, result))
	}
	if err != nil {
		return err
	}

	if generateOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := render.WriteFile(generateOutput, data); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Pitch written to %s\n", generateOutput)
	return nil
}
