package scaffold

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nodeforge-cli/nodeforge/internal/defs"
	"github.com/nodeforge-cli/nodeforge/internal/template"
	"github.com/nodeforge-cli/nodeforge/internal/toolchain"
)

// Deployer writes a rendered template tree into a project directory.
// internal/template provides the production implementation.
type Deployer interface {
	Deploy(ctx context.Context, fsys fs.FS, projectRoot string, data *template.Context) ([]string, error)
}

// Generator scaffolds one project type: validate name, create the
// directory, emit files, then run the best-effort toolchain steps.
type Generator struct {
	typ      ProjectType
	deployer Deployer
	invoker  *toolchain.Invoker
	tmplData func(name string) *template.Context
	logger   *slog.Logger
}

// NewGenerator creates a Generator for the given project type.
// A nil deployer or invoker falls back to the production implementation;
// a nil logger discards output.
func NewGenerator(typ ProjectType, deployer Deployer, invoker *toolchain.Invoker, logger *slog.Logger) *Generator {
	if deployer == nil {
		deployer = template.NewDeployer(template.NewRenderer())
	}
	if invoker == nil {
		invoker = toolchain.NewInvoker(nil, logger)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		typ:      typ,
		deployer: deployer,
		invoker:  invoker,
		logger:   logger,
	}
}

// ValidateName rejects empty names and names containing whitespace.
// Validation happens before any file-system mutation.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.ContainsFunc(name, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidName, name)
	}
	return nil
}

// Steps returns the ordered toolchain step list for this project type.
// The dependency install and tsc bootstrap are shared; grammar
// compilation applies to ANTLR4 projects only.
func (g *Generator) Steps() []toolchain.Step {
	steps := []toolchain.Step{
		{Name: "npm install", Tool: toolchain.ToolNpm, Args: []string{"install"}},
		{Name: "tsc init", Tool: toolchain.ToolNpx, Args: []string{"tsc", "--init"}},
	}
	if g.typ == ProjectTypeAntlr4 {
		steps = append(steps, toolchain.Step{
			Name: "grammar compile",
			Tool: toolchain.ToolAntlr4,
			Args: []string{"-Dlanguage=TypeScript", "-o", "src/generated", defs.GrammarG4},
		})
	}
	return steps
}

// Generate runs the full flow for one Request. The returned error is
// fatal (invalid name or directory-creation failure); everything after
// directory creation only annotates the report with warnings.
func (g *Generator) Generate(ctx context.Context, req Request) (*RunReport, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}

	projectDir := filepath.Join(req.TargetDir, req.Name)
	g.logger.Info("creating project",
		"type", g.typ.String(),
		"name", req.Name,
		"dir", projectDir,
	)

	if err := os.Mkdir(projectDir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrCreateDirectory, projectDir, err)
	}

	report := &RunReport{ProjectDir: projectDir}

	fsys, err := template.Templates(g.typ.String())
	if err != nil {
		return nil, fmt.Errorf("load templates for %s: %w", g.typ, err)
	}

	created, err := g.deployer.Deploy(ctx, fsys, projectDir, g.tmplContext(req.Name))
	report.CreatedFiles = created
	if err != nil {
		return nil, fmt.Errorf("emit project files: %w", err)
	}

	report.Steps = g.invoker.Run(ctx, projectDir, g.Steps())

	g.logger.Info("project created",
		"files", len(report.CreatedFiles),
		"warnings", len(report.AllWarnings()),
	)
	return report, nil
}

// tmplContext builds the render context for the resolved project name.
// The tmplData hook lets tests substitute fixed metadata.
func (g *Generator) tmplContext(name string) *template.Context {
	if g.tmplData != nil {
		return g.tmplData(name)
	}
	return template.NewContext(name)
}

// SetContextFunc overrides how the template context is built,
// e.g. to inject author and license from user configuration.
func (g *Generator) SetContextFunc(fn func(name string) *template.Context) {
	g.tmplData = fn
}
