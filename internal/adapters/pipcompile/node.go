package pipcompile

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the pip-compile manifest toolkit Graft node.
const NodeID graft.ID = "adapter.pipcompile"

// Toolkit bundles the manifest collaborators of the pip-compile ecosystem.
type Toolkit struct {
	Parser     *Parser
	Replacer   *Replacer
	References *References
	Runtime    *RuntimeRequirements
	Sanitizer  *Sanitizer
}

// NewToolkit creates a Toolkit.
func NewToolkit() *Toolkit {
	return &Toolkit{
		Parser:     NewParser(),
		Replacer:   NewReplacer(),
		References: NewReferences(),
		Runtime:    NewRuntimeRequirements(),
		Sanitizer:  NewSanitizer(),
	}
}

func init() {
	graft.Register(graft.Node[*Toolkit]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Toolkit, error) {
			return NewToolkit(), nil
		},
	})
}
