package template

import (
	"embed"
	"fmt"
	"io/fs"
)

// embeddedFS holds one template tree per project type under templates/.
// The all: prefix keeps dotfiles (.env) in the embedding.
//
//go:embed all:templates
var embeddedFS embed.FS

// Templates returns the embedded template tree for the given project
// type identifier ("plain", "antlr4", "tui").
func Templates(typ string) (fs.FS, error) {
	sub, err := fs.Sub(embeddedFS, "templates/"+typ)
	if err != nil {
		return nil, fmt.Errorf("%w: no template tree for type %q", ErrTemplateNotFound, typ)
	}
	return sub, nil
}
