// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pitch-engine version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pitch-engine", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
