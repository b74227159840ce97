package template

import "errors"

var (
	// ErrTemplateNotFound indicates a template file is missing from the embedded FS.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates a template referenced a key absent from the Context.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates rendered output still contains a dynamic token.
	ErrUnexpandedToken = errors.New("unexpanded token in rendered template")

	// ErrPathTraversal indicates a template path would escape the project root.
	ErrPathTraversal = errors.New("template path escapes project root")
)
