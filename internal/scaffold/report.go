package scaffold

import "github.com/nodeforge-cli/nodeforge/internal/toolchain"

// RunReport summarizes the outcome of one Generator run.
// Toolchain steps never fail the run; their warnings are aggregated here.
type RunReport struct {
	ProjectDir   string             // Absolute path of the created project.
	CreatedFiles []string           // Files written, relative to the project root.
	Steps        []toolchain.Result // Toolchain step outcomes, in execution order.
	Warnings     []string           // Non-fatal warnings collected during the run.
}

// Warn records a non-fatal warning.
func (r *RunReport) Warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AllWarnings returns run warnings followed by the messages of every
// non-OK toolchain step.
func (r *RunReport) AllWarnings() []string {
	out := make([]string, 0, len(r.Warnings)+len(r.Steps))
	out = append(out, r.Warnings...)
	for _, s := range r.Steps {
		if s.Status != toolchain.StatusOK {
			out = append(out, s.Name+": "+s.Message)
		}
	}
	return out
}
