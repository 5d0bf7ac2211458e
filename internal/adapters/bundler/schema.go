package bundler

// request is the JSON document written to the helper's stdin.
type request struct {
	Function string      `json:"function"`
	Args     requestArgs `json:"args"`
}

type requestArgs struct {
	GemfileName     string            `json:"gemfile_name"`
	GemfileContent  string            `json:"gemfile_content"`
	LockfileName    string            `json:"lockfile_name,omitempty"`
	LockfileContent string            `json:"lockfile_content,omitempty"`
	Unlock          []string          `json:"unlock_gems"`
	Requirements    map[string]string `json:"requirements,omitempty"`
}

// response is the helper's answer. Exactly one of Result or Error is set.
type response struct {
	Result     *[]resultEntry           `json:"result"`
	Error      string                   `json:"error"`
	ErrorClass string                   `json:"error_class"`
	Conflicts  map[string]conflictEntry `json:"conflicts"`
}

type resultEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Requirement string `json:"requirement,omitempty"`
}

type conflictEntry struct {
	Trees [][]treeNode `json:"trees"`
}

type treeNode struct {
	Name        string `json:"name"`
	Requirement string `json:"requirement"`
}

const versionConflictClass = "Bundler::VersionConflict"
