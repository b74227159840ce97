// Package cli provides the Cobra command tree for the nodeforge CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodeforge-cli/nodeforge/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "nodeforge",
	Short: "nodeforge: scaffold starter NodeJS/TypeScript projects",
	Long: `nodeforge scaffolds starter NodeJS/TypeScript projects: a plain
TypeScript setup, an ANTLR4-enabled parser project, or a Blessed.js
terminal UI. It can also install itself onto your PATH.

Project creation writes the directory tree and template files, then runs
the external toolchain (npm install, tsc bootstrap, grammar compilation)
best-effort: a missing tool is reported as a warning, never a failure.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("nodeforge %s\n", version.GetVersion()))
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
