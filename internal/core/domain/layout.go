package domain

import "path/filepath"

const (
	// RelockDirName is the name of the directory holding relock state inside a project.
	RelockDirName = ".relock"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "relock.yaml"

	// EnvFileName is the dotenv file consulted for credential variables.
	EnvFileName = ".env"

	// RuntimePinFileName is the runtime pin written before every resolver invocation.
	RuntimePinFileName = ".python-version"

	// InputExt is the extension of editable input manifests.
	InputExt = ".in"

	// CompiledExt is the extension of compiled manifests.
	CompiledExt = ".txt"

	// GemfileName is the default gem manifest name.
	GemfileName = "Gemfile"

	// GemLockfileName is the default gem lockfile name.
	GemLockfileName = "Gemfile.lock"

	// WorkspacePattern is the os.MkdirTemp pattern for attempt workspaces.
	WorkspacePattern = "relock-*"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultConfigPath returns the default configuration path inside dir.
func DefaultConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}
