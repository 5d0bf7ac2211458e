package domain

import "regexp"

var urlUserinfo = regexp.MustCompile(`://[^/\s]*@`)

// CredentialType discriminates credential entries.
type CredentialType string

const (
	// CredentialGitSource authenticates git clones for a host.
	CredentialGitSource CredentialType = "git_source"

	// CredentialPythonIndex authenticates a package index.
	CredentialPythonIndex CredentialType = "python_index"
)

// Credential is a single registry or git host credential.
type Credential struct {
	Type     CredentialType
	Host     string
	IndexURL string
	Username string
	Password string
	Token    string

	// ReplacesBase marks an index that replaces the default index instead of extending it.
	ReplacesBase bool
}

// StripUserinfo removes the user and password of every URL in s.
func StripUserinfo(s string) string {
	return urlUserinfo.ReplaceAllString(s, "://")
}
