package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nodeforge-cli/nodeforge/internal/defs"
)

// Deployer extracts a template tree from an fs.FS and writes it under a
// project root. Files ending in .tmpl are rendered with the Context and
// saved without the suffix; everything else is copied verbatim.
type Deployer interface {
	// Deploy writes every file in fsys to projectRoot and returns the
	// created files relative to the root, sorted.
	Deploy(ctx context.Context, fsys fs.FS, projectRoot string, data *Context) ([]string, error)

	// List returns the deployment target paths of all files in fsys.
	List(fsys fs.FS) []string
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	renderer Renderer
}

// NewDeployer creates a Deployer that renders .tmpl files with renderer.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewDeployer(renderer Renderer) Deployer {
	return &deployer{renderer: renderer}
}

// Deploy walks fsys and writes every file to projectRoot.
func (d *deployer) Deploy(ctx context.Context, fsys fs.FS, projectRoot string, data *Context) ([]string, error) {
	projectRoot = filepath.Clean(projectRoot)

	var created []string
	walkErr := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation before each file
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == "." || entry.IsDir() {
			return nil
		}

		if err := validateDeployPath(projectRoot, path); err != nil {
			return err
		}

		var content []byte
		destRelPath := path

		if strings.HasSuffix(path, ".tmpl") && d.renderer != nil {
			rendered, renderErr := d.renderer.Render(fsys, path, data)
			if renderErr != nil {
				return fmt.Errorf("template render %q: %w", path, renderErr)
			}
			content = rendered
			destRelPath = strings.TrimSuffix(path, ".tmpl")
		} else {
			raw, readErr := fs.ReadFile(fsys, path)
			if readErr != nil {
				return fmt.Errorf("template read %q: %w", path, readErr)
			}
			content = raw
		}

		destPath := filepath.Join(projectRoot, filepath.FromSlash(destRelPath))
		if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
			return fmt.Errorf("template deploy mkdir %q: %w", filepath.Dir(destPath), err)
		}

		if err := os.WriteFile(destPath, content, defs.FilePerm); err != nil {
			return fmt.Errorf("template deploy write %q: %w", destPath, err)
		}

		created = append(created, destRelPath)
		return nil
	})

	sort.Strings(created)
	if walkErr != nil {
		return created, walkErr
	}
	return created, nil
}

// List returns sorted deployment target paths of all files in fsys.
func (d *deployer) List(fsys fs.FS) []string {
	var list []string

	_ = fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors during listing
		}
		if path == "." || entry.IsDir() {
			return nil
		}
		list = append(list, strings.TrimSuffix(path, ".tmpl"))
		return nil
	})

	sort.Strings(list)
	return list
}

// validateDeployPath ensures a template path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q", ErrPathTraversal, relPath)
	}

	return nil
}
