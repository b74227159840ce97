package toolchain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// javaPackages maps an OS package manager to the install command that
// provides a Java runtime. Two Linux package-manager families plus
// Homebrew on macOS are distinguished; everything else is unsupported.
var javaPackages = []struct {
	manager string
	args    []string
}{
	{"apt-get", []string{"install", "-y", "default-jre"}},
	{"dnf", []string{"install", "-y", "java-latest-openjdk"}},
}

// EnsureJava checks for a Java runtime and, when absent, attempts an
// OS-specific installation. It never fails the run: the returned warning
// is empty when Java is present or was installed, and describes the
// problem otherwise. Grammar compilation later in the flow is expected
// to warn-and-skip when the warning is non-empty.
func EnsureJava(ctx context.Context, runner CommandRunner, logger *slog.Logger) (warning string) {
	if runner == nil {
		runner = &ExecRunner{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if _, err := runner.LookPath(ToolJava); err == nil {
		return ""
	}

	logger.Info("java runtime not found, attempting installation", "os", runtime.GOOS)

	switch runtime.GOOS {
	case "linux":
		for _, pkg := range javaPackages {
			if _, err := runner.LookPath(pkg.manager); err != nil {
				continue
			}
			if err := runner.Run(ctx, "", "sudo", append([]string{pkg.manager}, pkg.args...)...); err != nil {
				return fmt.Sprintf("java installation via %s failed: %v", pkg.manager, err)
			}
			return ""
		}
		return "no supported package manager found to install java (tried apt-get, dnf)"
	case "darwin":
		if _, err := runner.LookPath("brew"); err != nil {
			return "homebrew not found, cannot install java automatically"
		}
		if err := runner.Run(ctx, "", "brew", "install", "openjdk"); err != nil {
			return fmt.Sprintf("java installation via brew failed: %v", err)
		}
		return ""
	default:
		return fmt.Sprintf("automatic java installation is not supported on %s", runtime.GOOS)
	}
}
