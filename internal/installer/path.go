package installer

import (
	"os"
	"path/filepath"
	"strings"
)

// OnPath reports whether dir appears in the current PATH environment
// variable. Entries are compared after Clean so trailing separators
// do not cause false negatives.
func OnPath(dir string) bool {
	cleaned := filepath.Clean(dir)
	for _, entry := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == cleaned {
			return true
		}
	}
	return false
}
