// Package scaffold creates starter NodeJS/TypeScript project trees.
// Each ProjectType pairs an embedded template tree with a post-creation
// toolchain step list; the Generator drives the whole flow.
package scaffold

// ProjectType identifies one of the supported project flavors.
// It is a closed enumeration: code that switches over it handles
// every constant explicitly.
type ProjectType int

const (
	// ProjectTypePlain is a bare TypeScript starter.
	ProjectTypePlain ProjectType = iota

	// ProjectTypeAntlr4 adds an ANTLR4 grammar placeholder and the
	// antlr4 runtime dependency.
	ProjectTypeAntlr4

	// ProjectTypeBlessedTUI adds a two-pane blessed terminal UI stub.
	ProjectTypeBlessedTUI
)

// AllProjectTypes returns the selectable project types in menu order.
func AllProjectTypes() []ProjectType {
	return []ProjectType{ProjectTypePlain, ProjectTypeAntlr4, ProjectTypeBlessedTUI}
}

// String returns the short identifier used on the command line.
func (t ProjectType) String() string {
	switch t {
	case ProjectTypePlain:
		return "plain"
	case ProjectTypeAntlr4:
		return "antlr4"
	case ProjectTypeBlessedTUI:
		return "tui"
	default:
		return "unknown"
	}
}

// Label returns the human-readable menu label.
func (t ProjectType) Label() string {
	switch t {
	case ProjectTypePlain:
		return "NodeJS/TypeScript project"
	case ProjectTypeAntlr4:
		return "NodeJS/TypeScript project with ANTLR4"
	case ProjectTypeBlessedTUI:
		return "NodeJS/TypeScript project with Blessed TUI"
	default:
		return "unknown"
	}
}

// DefaultName returns the project name used in non-interactive mode
// when no name argument was supplied.
func (t ProjectType) DefaultName() string {
	switch t {
	case ProjectTypePlain:
		return "my-new-project"
	case ProjectTypeAntlr4:
		return "my-antlr4-project"
	case ProjectTypeBlessedTUI:
		return "my-blessed-tui"
	default:
		return "my-new-project"
	}
}

// ParseProjectType maps a command-line identifier to a ProjectType.
func ParseProjectType(s string) (ProjectType, bool) {
	for _, t := range AllProjectTypes() {
		if t.String() == s {
			return t, true
		}
	}
	return ProjectTypePlain, false
}

// Request carries one project-creation order from CLI input to the
// Generator. It is constructed once, consumed immediately, and discarded.
type Request struct {
	Name           string // Resolved project name; validated before any FS mutation.
	TargetDir      string // Parent directory; the project is created at TargetDir/Name.
	ColorOutput    bool   // Render status messages with color.
	NonInteractive bool   // Confirmation prompts were skipped in favor of defaults.
}
