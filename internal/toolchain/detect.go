package toolchain

// Tool names detected by presence on PATH rather than version-negotiated.
const (
	ToolNode   = "node"
	ToolNpm    = "npm"
	ToolNpx    = "npx"
	ToolJava   = "java"
	ToolAntlr4 = "antlr4"
)

// Available reports whether the named tool resolves on PATH.
func Available(runner CommandRunner, name string) bool {
	if runner == nil {
		runner = &ExecRunner{}
	}
	_, err := runner.LookPath(name)
	return err == nil
}
