package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nodeforge-cli/nodeforge/internal/installer"
	"github.com/nodeforge-cli/nodeforge/internal/ui"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Link nodeforge into a user-local bin directory",
	Long: `Install the nodeforge entry points into a user-local executable
directory (default: ~/.local/bin) via symbolic links. Re-running the
command refreshes existing links. A warning is printed when the
directory is not on PATH.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().Bool("color", false, "Colorize status output")
	installCmd.Flags().String("bin-dir", "", "Executable directory (default: ~/.local/bin)")
}

func runInstall(cmd *cobra.Command, _ []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout(), getBoolFlag(cmd, "color"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	inst, err := installer.New(getStringFlag(cmd, "bin-dir"), logger)
	if err != nil {
		return err
	}

	pairs, err := installer.DefaultPairs()
	if err != nil {
		return err
	}

	report, err := inst.Install(pairs)
	if err != nil {
		return err
	}

	for _, alias := range report.Linked {
		printer.Successf("linked %s", alias)
	}
	for _, alias := range report.Skipped {
		printer.Warnf("skipped %s (source missing)", alias)
	}
	for _, w := range report.Warnings {
		printer.Warnf("%s", w)
	}
	printer.Infof("installed into %s", report.BinDir)
	return nil
}
