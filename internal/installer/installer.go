// Package installer links the nodeforge entry points into a user-local
// executable directory and checks that the directory is discoverable
// on PATH. Link creation uses force semantics: reruns are idempotent.
package installer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nodeforge-cli/nodeforge/internal/defs"
)

// Pair maps a source file to the alias name created inside the bin directory.
type Pair struct {
	Source string // Absolute path of the file to link to.
	Alias  string // Link name created inside the bin directory.
}

// Report summarizes one installer run.
type Report struct {
	BinDir   string   // The executable directory that was ensured.
	Linked   []string // Aliases that were created or refreshed.
	Skipped  []string // Aliases skipped because their source was missing.
	Warnings []string // Non-fatal problems (chmod, single-link failures, PATH).
	OnPath   bool     // Whether BinDir is on the current search path.
}

// Installer creates symbolic references for a fixed list of pairs.
type Installer struct {
	binDir string
	logger *slog.Logger
}

// New creates an Installer targeting binDir. An empty binDir defaults
// to ~/.local/bin.
func New(binDir string, logger *slog.Logger) (*Installer, error) {
	if binDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		binDir = filepath.Join(home, filepath.FromSlash(defs.InstallBinSubdir))
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Installer{binDir: binDir, logger: logger}, nil
}

// BinDir returns the target executable directory.
func (i *Installer) BinDir() string {
	return i.binDir
}

// DefaultPairs links the currently running binary under its canonical
// name plus a short alias.
func DefaultPairs() ([]Pair, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable path: %w", err)
	}
	exe, err = filepath.Abs(exe)
	if err != nil {
		return nil, fmt.Errorf("resolve executable path: %w", err)
	}
	return []Pair{
		{Source: exe, Alias: "nodeforge"},
		{Source: exe, Alias: "tsnew"},
	}, nil
}

// Install processes every pair. Failure to create the bin directory is
// fatal; a missing source or a failed link/chmod only produces a warning
// and the remaining pairs are still processed.
func (i *Installer) Install(pairs []Pair) (*Report, error) {
	report := &Report{BinDir: i.binDir}

	if err := os.MkdirAll(i.binDir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create bin directory %q: %w", i.binDir, err)
	}

	for _, p := range pairs {
		if _, err := os.Stat(p.Source); err != nil {
			i.logger.Warn("source missing, skipping", "source", p.Source, "alias", p.Alias)
			report.Skipped = append(report.Skipped, p.Alias)
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("source %q not found, skipping %q", p.Source, p.Alias))
			continue
		}

		if err := os.Chmod(p.Source, defs.ExecPerm); err != nil {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("could not mark %q executable: %v", p.Source, err))
		}

		linkPath := filepath.Join(i.binDir, p.Alias)
		if err := forceSymlink(p.Source, linkPath); err != nil {
			i.logger.Warn("link failed", "alias", p.Alias, "error", err)
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("could not link %q: %v", p.Alias, err))
			continue
		}
		report.Linked = append(report.Linked, p.Alias)
	}

	report.OnPath = OnPath(i.binDir)
	if !report.OnPath {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%s is not on your PATH; add it to your shell profile", i.binDir))
	}

	return report, nil
}

// forceSymlink replaces any existing file at linkPath with a symlink to target.
func forceSymlink(target, linkPath string) error {
	if _, err := os.Lstat(linkPath); err == nil {
		if err := os.Remove(linkPath); err != nil {
			return fmt.Errorf("remove existing link: %w", err)
		}
	}
	return os.Symlink(target, linkPath)
}
