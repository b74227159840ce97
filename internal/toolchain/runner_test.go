package toolchain

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner is a CommandRunner for tests: tools resolve only when listed
// in available, and commands listed in fail return an error.
type fakeRunner struct {
	available map[string]bool
	fail      map[string]bool
	calls     []string
}

func (f *fakeRunner) Run(_ context.Context, _, name string, args ...string) error {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if f.fail[name] {
		return errors.New("exit status 1")
	}
	return nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func TestInvokerRun(t *testing.T) {
	steps := []Step{
		{Name: "npm install", Tool: ToolNpm, Args: []string{"install"}},
		{Name: "tsc init", Tool: ToolNpx, Args: []string{"tsc", "--init"}},
	}

	t.Run("all_steps_succeed", func(t *testing.T) {
		runner := &fakeRunner{available: map[string]bool{ToolNpm: true, ToolNpx: true}}
		inv := NewInvoker(runner, nil)

		results := inv.Run(context.Background(), t.TempDir(), steps)
		if len(results) != 2 {
			t.Fatalf("got %d results, want 2", len(results))
		}
		for i, r := range results {
			if r.Status != StatusOK {
				t.Errorf("results[%d] status = %s, want ok", i, r.Status)
			}
			if r.Message != "" {
				t.Errorf("results[%d] message = %q, want empty", i, r.Message)
			}
		}
		if len(runner.calls) != 2 {
			t.Errorf("got %d command invocations, want 2", len(runner.calls))
		}
	})

	t.Run("missing_tool_skips_but_continues", func(t *testing.T) {
		runner := &fakeRunner{available: map[string]bool{ToolNpx: true}}
		inv := NewInvoker(runner, nil)

		results := inv.Run(context.Background(), t.TempDir(), steps)
		if results[0].Status != StatusSkipped {
			t.Errorf("results[0] status = %s, want skipped", results[0].Status)
		}
		if !strings.Contains(results[0].Message, "not found on PATH") {
			t.Errorf("results[0] message = %q", results[0].Message)
		}
		if results[1].Status != StatusOK {
			t.Errorf("results[1] status = %s, want ok", results[1].Status)
		}
	})

	t.Run("failing_step_does_not_abort", func(t *testing.T) {
		runner := &fakeRunner{
			available: map[string]bool{ToolNpm: true, ToolNpx: true},
			fail:      map[string]bool{ToolNpm: true},
		}
		inv := NewInvoker(runner, nil)

		results := inv.Run(context.Background(), t.TempDir(), steps)
		if results[0].Status != StatusFailed {
			t.Errorf("results[0] status = %s, want failed", results[0].Status)
		}
		if results[1].Status != StatusOK {
			t.Errorf("results[1] status = %s, want ok", results[1].Status)
		}
	})

	t.Run("cancelled_context_skips_remaining", func(t *testing.T) {
		runner := &fakeRunner{available: map[string]bool{ToolNpm: true, ToolNpx: true}}
		inv := NewInvoker(runner, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results := inv.Run(ctx, t.TempDir(), steps)
		for i, r := range results {
			if r.Status != StatusSkipped {
				t.Errorf("results[%d] status = %s, want skipped", i, r.Status)
			}
		}
		if len(runner.calls) != 0 {
			t.Errorf("no commands should run after cancellation, got %v", runner.calls)
		}
	})
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusOK:      "ok",
		StatusSkipped: "skipped",
		StatusFailed:  "failed",
		Status(99):    "unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}

func TestAvailable(t *testing.T) {
	runner := &fakeRunner{available: map[string]bool{ToolNode: true}}

	if !Available(runner, ToolNode) {
		t.Error("node should be available")
	}
	if Available(runner, ToolAntlr4) {
		t.Error("antlr4 should not be available")
	}
}
