package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodeforge-cli/nodeforge/internal/config"
	"github.com/nodeforge-cli/nodeforge/internal/scaffold"
	"github.com/nodeforge-cli/nodeforge/internal/template"
	"github.com/nodeforge-cli/nodeforge/internal/toolchain"
	"github.com/nodeforge-cli/nodeforge/internal/ui"
)

// ErrNameDeclined is returned when the user rejects the confirmation
// prompt for a name supplied on the command line.
var ErrNameDeclined = errors.New("project name declined")

// newGenerateCmd builds the generator subcommand for one project type.
func newGenerateCmd(typ scaffold.ProjectType) *cobra.Command {
	return &cobra.Command{
		Use:   typ.String() + " [project-name]",
		Short: "Scaffold a " + typ.Label(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, typ)
		},
	}
}

// runGenerate executes one generator run:
// ParseArgs -> ResolveName -> ValidateName -> CreateDirectory ->
// EmitFiles -> InvokeToolchain -> Done. Only the name and directory
// stages abort; toolchain steps annotate the run with warnings.
func runGenerate(cmd *cobra.Command, args []string, typ scaffold.ProjectType) error {
	nonInteractive := getBoolFlag(cmd, "yes")
	colorFlag := getBoolFlag(cmd, "color")

	cfg, printer := loadConfigAndPrinter(cmd.OutOrStdout(), colorFlag)

	// At most one non-flag token is the project name; extras are
	// ignored with a warning.
	nameArg := ""
	if len(args) > 0 {
		nameArg = args[0]
	}
	if len(args) > 1 {
		printer.Warnf("ignoring extra arguments: %s", strings.Join(args[1:], " "))
	}

	hm := ui.NewHeadlessManager()
	if hm.IsHeadless() {
		nonInteractive = true
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// ANTLR4 projects need a Java runtime for the grammar compiler;
	// probe and best-effort install before touching anything else.
	if typ == scaffold.ProjectTypeAntlr4 {
		if warning := toolchain.EnsureJava(ctx, nil, logger); warning != "" {
			printer.Warnf("%s", warning)
		}
	}

	name, err := resolveName(typ, nameArg, nonInteractive, ui.NewPrompter(printer.Color()))
	if err != nil {
		return err
	}

	if err := scaffold.ValidateName(name); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	gen := scaffold.NewGenerator(typ, nil, toolchain.NewInvoker(nil, logger), logger)
	gen.SetContextFunc(func(n string) *template.Context {
		return &template.Context{Name: n, Author: cfg.Author, License: cfg.License}
	})

	req := scaffold.Request{
		Name:           name,
		TargetDir:      cwd,
		ColorOutput:    printer.Color(),
		NonInteractive: nonInteractive,
	}

	printer.Infof("Creating %s %q...", typ.Label(), name)
	sp := ui.NewSpinner("Running toolchain steps...", printer.Color(), hm, printer.Out())
	report, err := gen.Generate(ctx, req)
	sp.Stop()
	if err != nil {
		return err
	}

	printReport(printer, typ, report)
	return nil
}

// resolveName determines the project name from the optional argument,
// the non-interactive flag, and prompts.
//
//   - name given, non-interactive: use it as-is.
//   - name given, interactive: confirm; declining aborts.
//   - no name, non-interactive: the type-specific default.
//   - no name, interactive: prompt for one.
func resolveName(typ scaffold.ProjectType, nameArg string, nonInteractive bool, prompter ui.Prompter) (string, error) {
	if nameArg != "" {
		if nonInteractive {
			return nameArg, nil
		}
		ok, err := prompter.Confirm(fmt.Sprintf("Use '%s'?", nameArg))
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrNameDeclined
		}
		return nameArg, nil
	}

	if nonInteractive {
		return typ.DefaultName(), nil
	}
	return prompter.Input("Project name", typ.DefaultName())
}

// loadConfigAndPrinter loads the user config and builds the Printer.
// A broken config file is a warning; defaults apply.
func loadConfigAndPrinter(out io.Writer, colorFlag bool) (*config.Config, *ui.Printer) {
	cfg := config.Default()
	path, err := config.DefaultPath()
	if err == nil {
		var loadErr error
		cfg, loadErr = config.Load(path)
		if loadErr != nil {
			p := ui.NewPrinter(out, colorFlag)
			p.Warnf("config file ignored: %v", loadErr)
		}
	}
	return cfg, ui.NewPrinter(out, colorFlag || cfg.Color)
}

// printReport renders one line per toolchain step, the summary card,
// then the aggregated warnings.
func printReport(printer *ui.Printer, typ scaffold.ProjectType, report *scaffold.RunReport) {
	for _, step := range report.Steps {
		switch step.Status {
		case toolchain.StatusOK:
			printer.Successf("%s", step.Name)
		default:
			printer.Warnf("%s: %s", step.Name, step.Message)
		}
	}

	details := []string{
		fmt.Sprintf("Type:  %s", typ.Label()),
		fmt.Sprintf("Path:  %s", report.ProjectDir),
		fmt.Sprintf("Files: %d created", len(report.CreatedFiles)),
	}
	fmt.Fprintln(printer.Out())
	fmt.Fprintln(printer.Out(), printer.SuccessCard("Project created", details...))

	for _, w := range report.AllWarnings() {
		printer.Warnf("%s", w)
	}
}
