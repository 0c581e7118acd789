// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bramblevc/pitch-engine/internal/server"
)

var (
	serveAddr       string
	servePitchesDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the browser UI for the team",
	Long: `Serve starts a small web server with a form for generating personalised
pitches. Generated pitches are saved to the pitches directory and can be
downloaded as markdown from the results page.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8080)")
	serveCmd.Flags().StringVar(&servePitchesDir, "pitches-dir", "", "directory for saved pitches (default ./pitches)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	p, err := buildPipeline(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	// Research progress lines would interleave with request logs.
	p.Progress = nil

	cfg := stageConfig().Server
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if servePitchesDir != "" {
		cfg.PitchesDir = servePitchesDir
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return server.New(p, p.Fund.Name, cfg, log).ListenAndServe()
}
