package pipcompile

import (
	"path"
	"regexp"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
)

var _ ports.ReferenceParser = (*References)(nil)

// childReference matches "-r other.txt", "-c constraints.in" and their long forms.
var childReference = regexp.MustCompile(`^(?:-r|-c|--requirement|--constraint)(?:=|\s)?\s*(?P<path>\S*\.(?:txt|in))\s*$`)

// References discovers -r/-c links between input manifests and maps inputs to compiled outputs.
type References struct{}

// NewReferences creates a new References.
func NewReferences() *References {
	return &References{}
}

// References maps each input manifest to the input manifests it references.
// Paths are resolved against the referencing file's directory and compiled names are mapped
// to their inputs. Self references are dropped.
func (r *References) References(files []domain.ManifestFile) map[string][]string {
	refs := make(map[string][]string)
	for _, f := range domain.FilesWithRole(files, domain.RoleInput) {
		var children []string
		seen := make(map[string]bool)
		for _, line := range lines(f.Content) {
			m := childReference.FindStringSubmatch(strings.TrimSpace(line))
			if m == nil {
				continue
			}
			child := path.Clean(path.Join(path.Dir(f.Name), m[1]))
			if strings.HasSuffix(child, domain.CompiledExt) {
				child = domain.InputName(child)
			}
			if child == f.Name || seen[child] {
				continue
			}
			seen[child] = true
			children = append(children, child)
		}
		refs[f.Name] = children
	}
	return refs
}

// CompiledFileFor returns the compiled manifest produced from input. A compiled file whose
// pip-compile header names input wins over the conventional ".in" -> ".txt" sibling.
func (r *References) CompiledFileFor(files []domain.ManifestFile, input string) (domain.ManifestFile, bool) {
	header := regexp.MustCompile(`(?m)--output-file[=\s]+.*\s` +
		`(?:` + regexp.QuoteMeta(input) + `|` + regexp.QuoteMeta(path.Base(input)) + `)\s*$`)

	compiled := domain.FilesWithRole(files, domain.RoleCompiled)
	for _, f := range compiled {
		if header.MatchString(f.Content) {
			return f, true
		}
	}

	want := domain.CompiledName(input)
	for _, f := range compiled {
		if f.Name == want {
			return f, true
		}
	}
	return domain.ManifestFile{}, false
}
