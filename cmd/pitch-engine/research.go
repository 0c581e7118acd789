// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bramblevc/pitch-engine/internal/research"
	"github.com/bramblevc/pitch-engine/internal/secrets"
)

var (
	researchContext string
	researchAsJSON  bool
)

var researchCmd = &cobra.Command{
	Use:   "research <lp-name>",
	Short: "Research an LP without generating a pitch",
	Long: `Research runs the focused LP queries against the Perplexity API and
prints the combined research prose with its source citations. Useful for
checking what the pitch generation would be working from.`,
	Args: cobra.ExactArgs(1),
	RunE: runResearch,
}

func init() {
	researchCmd.Flags().StringVarP(&researchContext, "context", "c", "", "additional context about the LP")
	researchCmd.Flags().BoolVar(&researchAsJSON, "json", false, "print the research result as JSON")

	rootCmd.AddCommand(researchCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	key, err := keyResolver.Resolve(secrets.PerplexityKey)
	if err != nil {
		return err
	}

	backend := &research.PerplexityBackend{APIKey: key, Config: stageConfig().Research}
	result, err := research.Research(cmd.Context(), backend, args[0], researchContext, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if researchAsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# Research: %s\n\n%s\n", result.LPName, result.Summary)
	return nil
}
