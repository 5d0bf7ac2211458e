package pipcompile

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
)

var _ ports.RuntimeRequirementParser = (*RuntimeRequirements)(nil)

var (
	pythonRequires   = regexp.MustCompile(`python_requires\s*=\s*['"]([^'"]+)['"]`)
	runtimeTxt       = regexp.MustCompile(`^python-(\d[\w.]*)`)
	pythonVersionReq = regexp.MustCompile(`python_version(?P<req>.*?["'].*?['"])`)
)

// RuntimeRequirements extracts python version constraints from manifests.
type RuntimeRequirements struct{}

// NewRuntimeRequirements creates a new RuntimeRequirements.
func NewRuntimeRequirements() *RuntimeRequirements {
	return &RuntimeRequirements{}
}

// UserSpecified returns constraints declared by the project: pin files, runtime.txt,
// setup.py python_requires, pyproject.toml and Pipfile declarations.
func (r *RuntimeRequirements) UserSpecified(files []domain.ManifestFile) []string {
	var reqs []string
	add := func(req string) {
		if req = strings.TrimSpace(req); req != "" && !slices.Contains(reqs, req) {
			reqs = append(reqs, req)
		}
	}

	for _, f := range files {
		switch base := baseName(f.Name); {
		case f.Role == domain.RoleRuntimePin:
			add(pinRequirement(firstLine(f.Content)))
		case base == "runtime.txt":
			if m := runtimeTxt.FindStringSubmatch(firstLine(f.Content)); m != nil {
				add("==" + m[1])
			}
		case base == "setup.py":
			if m := pythonRequires.FindStringSubmatch(f.Content); m != nil {
				add(m[1])
			}
		case base == "pyproject.toml":
			add(pyprojectRequirement(f.Content))
		case base == "Pipfile":
			add(pipfileRequirement(f.Content))
		}
	}
	return reqs
}

// Imputed returns constraints implied by python_version markers in compiled manifests.
func (r *RuntimeRequirements) Imputed(files []domain.ManifestFile) []string {
	var reqs []string
	for _, f := range domain.FilesWithRole(files, domain.RoleCompiled) {
		for _, line := range lines(f.Content) {
			if !strings.Contains(line, ";") || !strings.Contains(line, "python") {
				continue
			}
			m := pythonVersionReq.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			req := strings.NewReplacer(`"`, "", `'`, "", " ", "").Replace(m[1])
			if req != "" && !slices.Contains(reqs, req) {
				reqs = append(reqs, req)
			}
		}
	}
	return reqs
}

type pyproject struct {
	Project struct {
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

type pipfile struct {
	Requires struct {
		PythonVersion     string `toml:"python_version"`
		PythonFullVersion string `toml:"python_full_version"`
	} `toml:"requires"`
}

// pyprojectRequirement reads PEP 621 requires-python, falling back to the poetry python
// dependency (a string or a table with a version key). Undecodable files yield nothing.
func pyprojectRequirement(content string) string {
	var doc pyproject
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		return ""
	}
	if doc.Project.RequiresPython != "" {
		return doc.Project.RequiresPython
	}
	switch v := doc.Tool.Poetry.Dependencies["python"].(type) {
	case string:
		return v
	case map[string]any:
		if version, ok := v["version"].(string); ok {
			return version
		}
	}
	return ""
}

func pipfileRequirement(content string) string {
	var doc pipfile
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		return ""
	}
	if v := strings.TrimSpace(doc.Requires.PythonFullVersion); v != "" {
		return "==" + v
	}
	return pinRequirement(doc.Requires.PythonVersion)
}

// pinRequirement turns a pin like "3.11" or "3.11.9" into an equality constraint.
// Non-numeric pins (e.g. "system", "pypy3.9") yield nothing.
func pinRequirement(pin string) string {
	pin = strings.TrimSpace(pin)
	if pin == "" || pin[0] < '0' || pin[0] > '9' {
		return ""
	}
	if strings.Count(pin, ".") < 2 {
		return "==" + pin + ".*"
	}
	return "==" + pin
}

func firstLine(s string) string {
	for _, line := range lines(s) {
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			return line
		}
	}
	return ""
}

func baseName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
