package domain

import "go.trai.ch/zerr"

var (
	// ErrCircularManifestReference is returned when manifests in the working set reference each other in a cycle.
	ErrCircularManifestReference = zerr.New("circular manifest reference")

	// ErrDependencyNotFound is returned when the target dependency is not present in the parsed manifests.
	ErrDependencyNotFound = zerr.New("dependency not found in manifests")

	// ErrNoManifests is returned when a directory contains no manifests of a supported ecosystem.
	ErrNoManifests = zerr.New("no supported manifests found")

	// ErrRuntimeVersionMismatch marks a failure that looks caused by the pinned runtime version.
	// It drives the fallback retry and never leaves the orchestrator.
	ErrRuntimeVersionMismatch = zerr.New("resolver failed under the pinned runtime version")

	// ErrRuntimeInstallFailed is returned when the pinned runtime cannot be installed.
	ErrRuntimeInstallFailed = zerr.New("failed to install runtime")

	// ErrCommandStartFailed is returned when an external process cannot be started at all.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrWorkspaceCreateFailed is returned when the temporary workspace cannot be created.
	ErrWorkspaceCreateFailed = zerr.New("failed to create workspace")

	// ErrWorkspaceWriteFailed is returned when a manifest cannot be written into the workspace.
	ErrWorkspaceWriteFailed = zerr.New("failed to write workspace file")

	// ErrWorkspaceReadFailed is returned when a compiled manifest cannot be read back from the workspace.
	ErrWorkspaceReadFailed = zerr.New("failed to read workspace file")

	// ErrManifestReadFailed is returned when a project manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config is syntactically valid but unusable.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidRequirement is returned when a requirement string cannot be interpreted.
	ErrInvalidRequirement = zerr.New("invalid requirement")

	// ErrHelperProtocol is returned when a resolver helper answers with malformed output.
	ErrHelperProtocol = zerr.New("malformed resolver helper response")

	// ErrLockfileParseFailed is returned when a gem lockfile cannot be parsed.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrGitConfigFailed is returned when the credential-scoped git configuration cannot be written.
	ErrGitConfigFailed = zerr.New("failed to configure git credentials")

	// ErrUnlockExhausted is returned when a version conflict remains and nothing else can be unlocked.
	ErrUnlockExhausted = zerr.New("version conflict cannot be resolved by unlocking")
)

// ErrorKind classifies a user-facing resolution failure.
type ErrorKind int

const (
	// KindUnsupportedConstraint means a requirement uses a constraint format the resolver cannot handle.
	KindUnsupportedConstraint ErrorKind = iota + 1
	// KindGitSourceUnreachable means a git dependency source could not be cloned.
	KindGitSourceUnreachable
	// KindGitReferenceNotFound means a git dependency names a branch or tag that does not exist.
	KindGitReferenceNotFound
	// KindManifestNotResolvable means the original, unmodified manifests do not resolve.
	KindManifestNotResolvable
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedConstraint:
		return "unsupported constraint format"
	case KindGitSourceUnreachable:
		return "git source unreachable"
	case KindGitReferenceNotFound:
		return "git reference not found"
	case KindManifestNotResolvable:
		return "manifest not resolvable"
	default:
		return "unknown"
	}
}

// ResolutionError is a classified failure that may be shown to users.
// Message, URL and Ref never contain credentials.
type ResolutionError struct {
	Kind    ErrorKind
	Message string
	URL     string
	Ref     string
	Cause   error
}

// Error implements error.
func (e *ResolutionError) Error() string {
	switch e.Kind {
	case KindGitSourceUnreachable:
		return e.Kind.String() + ": " + e.URL
	case KindGitReferenceNotFound:
		return e.Kind.String() + ": " + e.Ref
	}
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

// Unwrap returns the underlying failure.
func (e *ResolutionError) Unwrap() error {
	return e.Cause
}
