package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodeforge-cli/nodeforge/internal/scaffold"
	"github.com/nodeforge-cli/nodeforge/internal/ui"
)

// exitChoice is the Select value that terminates the menu with success.
const exitChoice = "exit"

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a starter project",
	Long: `Scaffold a starter NodeJS/TypeScript project.

Usage patterns:
  nodeforge new                 Pick the project type from a menu
  nodeforge new plain my-app    Scaffold a plain TypeScript project
  nodeforge new antlr4          Scaffold an ANTLR4 parser project
  nodeforge new tui             Scaffold a Blessed.js terminal UI project`,
	RunE: runSelector,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.PersistentFlags().Bool("color", false, "Colorize status output")
	newCmd.PersistentFlags().BoolP("yes", "y", false, "Non-interactive mode: skip prompts, accept defaults")

	for _, typ := range scaffold.AllProjectTypes() {
		newCmd.AddCommand(newGenerateCmd(typ))
	}
}

// runSelector presents the project-type menu and dispatches to the
// chosen generator, forwarding the shared flags verbatim. Choosing
// Exit terminates with success. The menu re-prompts on unrecognized
// input until a valid choice is made.
func runSelector(cmd *cobra.Command, _ []string) error {
	hm := ui.NewHeadlessManager()
	if hm.IsHeadless() {
		return errors.New("no terminal available: specify a project type (plain, antlr4, tui)")
	}

	color := getBoolFlag(cmd, "color")
	prompter := ui.NewPrompter(color)

	options := make([]ui.SelectOption, 0, len(scaffold.AllProjectTypes())+1)
	for _, typ := range scaffold.AllProjectTypes() {
		options = append(options, ui.SelectOption{Label: typ.Label(), Value: typ.String()})
	}
	options = append(options, ui.SelectOption{Label: "Exit", Value: exitChoice})

	choice, err := prompter.Select("What do you want to create?", options)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			return nil
		}
		return fmt.Errorf("selector: %w", err)
	}

	if choice == exitChoice {
		return nil
	}

	typ, ok := scaffold.ParseProjectType(choice)
	if !ok {
		return fmt.Errorf("unknown project type %q", choice)
	}
	return runGenerate(cmd, nil, typ)
}
