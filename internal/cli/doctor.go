package cli

import (
	"github.com/spf13/cobra"

	"github.com/nodeforge-cli/nodeforge/internal/installer"
	"github.com/nodeforge-cli/nodeforge/internal/toolchain"
	"github.com/nodeforge-cli/nodeforge/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the external tools nodeforge relies on",
	Long: `Report which external tools are present on PATH. Everything is
detected by presence, not version: node and npm are required for a
usable project, npx drives the tsc bootstrap, and java plus antlr4
are only needed for ANTLR4 projects.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().Bool("color", false, "Colorize status output")
}

// doctorTools lists the probed executables with their role.
var doctorTools = []struct {
	name string
	role string
}{
	{toolchain.ToolNode, "NodeJS runtime"},
	{toolchain.ToolNpm, "package manager"},
	{toolchain.ToolNpx, "tsc bootstrap"},
	{toolchain.ToolJava, "ANTLR4 runtime (antlr4 projects only)"},
	{toolchain.ToolAntlr4, "grammar compiler (antlr4 projects only)"},
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout(), getBoolFlag(cmd, "color"))

	for _, tool := range doctorTools {
		if toolchain.Available(nil, tool.name) {
			printer.Successf("%s - %s", tool.name, tool.role)
		} else {
			printer.Warnf("%s not found - %s", tool.name, tool.role)
		}
	}

	inst, err := installer.New("", nil)
	if err != nil {
		printer.Warnf("could not resolve install directory: %v", err)
		return nil
	}
	if installer.OnPath(inst.BinDir()) {
		printer.Successf("%s is on PATH", inst.BinDir())
	} else {
		printer.Warnf("%s is not on PATH", inst.BinDir())
	}
	return nil
}
