package defs

import "io/fs"

// Common file names emitted into scaffolded projects.
const (
	// PackageJSON is the npm project manifest.
	PackageJSON = "package.json"

	// EnvFile is the environment configuration file.
	EnvFile = ".env"

	// IndexTS is the TypeScript source stub, relative to the project root.
	IndexTS = "src/index.ts"

	// GrammarG4 is the ANTLR4 grammar placeholder, relative to the project root.
	GrammarG4 = "grammar/Expr.g4"

	// TSConfigJSON is written by the tsc bootstrap toolchain step.
	TSConfigJSON = "tsconfig.json"
)

// ConfigYAML is the optional user configuration file under ~/.config/nodeforge/.
const ConfigYAML = "config.yaml"

// File system permissions used across the project.
const (
	// DirPerm is the permission for created directories.
	DirPerm fs.FileMode = 0o755

	// FilePerm is the permission for regular generated files.
	FilePerm fs.FileMode = 0o644

	// ExecPerm is the permission for executable files.
	ExecPerm fs.FileMode = 0o755
)

// InstallBinSubdir is the user-local executable directory, relative to $HOME.
const InstallBinSubdir = ".local/bin"
