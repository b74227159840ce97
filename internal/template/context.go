// Package template renders the embedded per-type project templates and
// deploys them into a freshly created project directory.
package template

// Context carries the values interpolated into template files.
// Name lands in the manifest `name` field verbatim and in the
// descriptive labels; the rest is fixed project metadata.
type Context struct {
	Name    string
	Author  string
	License string
}

// NewContext builds a Context with default metadata for the given name.
func NewContext(name string) *Context {
	return &Context{
		Name:    name,
		Author:  "",
		License: "ISC",
	}
}
