package scaffold

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nodeforge-cli/nodeforge/internal/toolchain"
)

// fakeRunner makes every listed tool resolve on PATH and records commands.
type fakeRunner struct {
	available map[string]bool
	calls     []string
}

func (f *fakeRunner) Run(_ context.Context, _, name string, args ...string) error {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	return nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("not found")
}

func newTestGenerator(typ ProjectType, available map[string]bool) (*Generator, *fakeRunner) {
	runner := &fakeRunner{available: available}
	return NewGenerator(typ, nil, toolchain.NewInvoker(runner, nil), nil), runner
}

func TestValidateName(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid_kebab", "my-new-project", false},
		{"valid_scoped_ish", "demo_app.v2", false},
		{"empty", "", true},
		{"inner_space", "my project", true},
		{"tab", "my\tproject", true},
		{"newline", "my\nproject", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateName(tc.input)
			if tc.wantErr && !errors.Is(err, ErrInvalidName) {
				t.Errorf("expected ErrInvalidName, got: %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGeneratorSteps(t *testing.T) {
	plain, _ := newTestGenerator(ProjectTypePlain, nil)
	if got := len(plain.Steps()); got != 2 {
		t.Errorf("plain generator has %d steps, want 2", got)
	}

	antlr, _ := newTestGenerator(ProjectTypeAntlr4, nil)
	steps := antlr.Steps()
	if got := len(steps); got != 3 {
		t.Fatalf("antlr4 generator has %d steps, want 3", got)
	}
	last := steps[len(steps)-1]
	if last.Tool != toolchain.ToolAntlr4 {
		t.Errorf("final step tool = %q, want antlr4", last.Tool)
	}
	if !reflect.DeepEqual(last.Args, []string{"-Dlanguage=TypeScript", "-o", "src/generated", "grammar/Expr.g4"}) {
		t.Errorf("grammar compile args = %v", last.Args)
	}
}

func TestGeneratorGenerate(t *testing.T) {
	allTools := map[string]bool{
		toolchain.ToolNpm:    true,
		toolchain.ToolNpx:    true,
		toolchain.ToolAntlr4: true,
	}

	t.Run("emits_expected_files_per_type", func(t *testing.T) {
		cases := []struct {
			typ  ProjectType
			want []string
		}{
			{ProjectTypePlain, []string{".env", "package.json", "src/index.ts"}},
			{ProjectTypeAntlr4, []string{".env", "grammar/Expr.g4", "package.json", "src/index.ts"}},
			{ProjectTypeBlessedTUI, []string{".env", "package.json", "src/index.ts"}},
		}

		for _, tc := range cases {
			t.Run(tc.typ.String(), func(t *testing.T) {
				target := t.TempDir()
				gen, _ := newTestGenerator(tc.typ, allTools)

				report, err := gen.Generate(context.Background(), Request{
					Name:      "demo-app",
					TargetDir: target,
				})
				if err != nil {
					t.Fatalf("Generate error: %v", err)
				}
				if !reflect.DeepEqual(report.CreatedFiles, tc.want) {
					t.Errorf("CreatedFiles = %v, want %v", report.CreatedFiles, tc.want)
				}
				if report.ProjectDir != filepath.Join(target, "demo-app") {
					t.Errorf("ProjectDir = %q", report.ProjectDir)
				}
			})
		}
	})

	t.Run("manifest_carries_the_project_name", func(t *testing.T) {
		target := t.TempDir()
		gen, _ := newTestGenerator(ProjectTypePlain, allTools)

		report, err := gen.Generate(context.Background(), Request{
			Name:      "demo-app",
			TargetDir: target,
		})
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}

		raw, err := os.ReadFile(filepath.Join(report.ProjectDir, "package.json"))
		if err != nil {
			t.Fatalf("read package.json: %v", err)
		}
		var manifest struct {
			Name    string `json:"name"`
			License string `json:"license"`
		}
		if err := json.Unmarshal(raw, &manifest); err != nil {
			t.Fatalf("package.json is not valid JSON: %v", err)
		}
		if manifest.Name != "demo-app" {
			t.Errorf("manifest name = %q, want %q", manifest.Name, "demo-app")
		}
		if manifest.License != "ISC" {
			t.Errorf("manifest license = %q, want ISC", manifest.License)
		}
	})

	t.Run("invalid_name_creates_nothing", func(t *testing.T) {
		target := t.TempDir()
		gen, _ := newTestGenerator(ProjectTypePlain, allTools)

		_, err := gen.Generate(context.Background(), Request{
			Name:      "bad name",
			TargetDir: target,
		})
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got: %v", err)
		}

		entries, err := os.ReadDir(target)
		if err != nil {
			t.Fatalf("read target dir: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("target dir should stay empty, found %d entries", len(entries))
		}
	})

	t.Run("existing_directory_is_an_error", func(t *testing.T) {
		target := t.TempDir()
		if err := os.Mkdir(filepath.Join(target, "demo-app"), 0o755); err != nil {
			t.Fatal(err)
		}
		gen, _ := newTestGenerator(ProjectTypePlain, allTools)

		_, err := gen.Generate(context.Background(), Request{
			Name:      "demo-app",
			TargetDir: target,
		})
		if !errors.Is(err, ErrCreateDirectory) {
			t.Errorf("expected ErrCreateDirectory, got: %v", err)
		}
	})

	t.Run("missing_tools_warn_but_succeed", func(t *testing.T) {
		target := t.TempDir()
		gen, runner := newTestGenerator(ProjectTypeAntlr4, map[string]bool{
			toolchain.ToolNpm: true,
			toolchain.ToolNpx: true,
		})

		report, err := gen.Generate(context.Background(), Request{
			Name:      "demo-app",
			TargetDir: target,
		})
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}

		warnings := report.AllWarnings()
		if len(warnings) != 1 || !strings.Contains(warnings[0], "antlr4") {
			t.Errorf("warnings = %v, want one antlr4 skip", warnings)
		}
		for _, call := range runner.calls {
			if strings.HasPrefix(call, toolchain.ToolAntlr4) {
				t.Errorf("antlr4 must not run when absent, got %v", runner.calls)
			}
		}
	})
}
