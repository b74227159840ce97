// Package toolchain runs the best-effort external tool steps that follow
// file emission: dependency installation, compiler bootstrap, grammar
// compilation. Every step is blocking and sequential; a missing or failing
// tool produces a warning result, never an abort.
package toolchain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// Step is one named external command. Tool is resolved on PATH before
// the command runs; a missing tool skips the step with a warning.
type Step struct {
	Name string   // Human-readable step name (e.g., "npm install").
	Tool string   // Executable resolved via the runner's LookPath.
	Args []string // Arguments passed to Tool.
}

// Status classifies a step outcome.
type Status int

const (
	// StatusOK means the command completed successfully.
	StatusOK Status = iota

	// StatusSkipped means the tool was not found on PATH.
	StatusSkipped

	// StatusFailed means the command ran but exited with an error.
	StatusFailed
)

// String returns the lowercase status label.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records the outcome of one step.
type Result struct {
	Name    string // Step name.
	Status  Status
	Message string // Empty for StatusOK; otherwise the warning text.
}

// CommandRunner abstracts subprocess execution so tests can substitute
// a fake. The production implementation shells out via os/exec.
type CommandRunner interface {
	// Run executes name with args in dir, blocking until completion.
	Run(ctx context.Context, dir, name string, args ...string) error

	// LookPath reports where name resolves on PATH.
	LookPath(name string) (string, error)
}

// ExecRunner is the production CommandRunner backed by os/exec.
// Command output is forwarded to Stdout/Stderr when set.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command in dir and waits for it.
func (e *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	return cmd.Run()
}

// LookPath resolves name on PATH.
func (e *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Invoker executes an ordered step list against a project directory.
type Invoker struct {
	runner CommandRunner
	logger *slog.Logger
}

// NewInvoker creates an Invoker. A nil runner defaults to ExecRunner;
// a nil logger discards output.
func NewInvoker(runner CommandRunner, logger *slog.Logger) *Invoker {
	if runner == nil {
		runner = &ExecRunner{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Invoker{runner: runner, logger: logger}
}

// Run executes every step in order and returns one Result per step.
// Steps never abort the sequence: a missing tool yields StatusSkipped,
// a failing command yields StatusFailed, and the next step still runs.
// Only context cancellation stops the walk early.
func (inv *Invoker) Run(ctx context.Context, dir string, steps []Step) []Result {
	results := make([]Result, 0, len(steps))

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{
				Name:    step.Name,
				Status:  StatusSkipped,
				Message: fmt.Sprintf("cancelled: %v", err),
			})
			continue
		}

		if _, err := inv.runner.LookPath(step.Tool); err != nil {
			inv.logger.Warn("tool not found, skipping step", "step", step.Name, "tool", step.Tool)
			results = append(results, Result{
				Name:    step.Name,
				Status:  StatusSkipped,
				Message: fmt.Sprintf("%q not found on PATH, skipping", step.Tool),
			})
			continue
		}

		inv.logger.Info("running step", "step", step.Name, "command", step.Tool+" "+strings.Join(step.Args, " "))
		if err := inv.runner.Run(ctx, dir, step.Tool, step.Args...); err != nil {
			inv.logger.Warn("step failed", "step", step.Name, "error", err)
			results = append(results, Result{
				Name:    step.Name,
				Status:  StatusFailed,
				Message: fmt.Sprintf("%s exited with error: %v", step.Tool, err),
			})
			continue
		}

		results = append(results, Result{Name: step.Name, Status: StatusOK})
	}

	return results
}
