package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/rufty"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rufty",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rufty version %s\n", strings.TrimSpace(rufty.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
